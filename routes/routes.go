package routes

import (
	"net/http"
	"time"

	"viaduct/handlers"
	"viaduct/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the route handlers for registration.
type HandlerBundle struct {
	Schedule    *handlers.ScheduleHandler
	Clients     *handlers.ClientHandler
	Reminders   *handlers.ReminderHandler
	WaitingList *handlers.WaitingListHandler
	Orders      *handlers.OrderHandler
	Storage     *handlers.StorageHandler
}

// RegisterCORS applies the CORS policy for the dashboard frontend.
func RegisterCORS(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}

// RegisterScheduleRoutes registers the occupancy table endpoint.
func RegisterScheduleRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/schedule", hb.Schedule.GetScheduleHandler)
	}
}

// RegisterClientRoutes registers booking CRUD, reminder and attachment
// endpoints. Mutations sit behind the admin key.
func RegisterClientRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.GET("", hb.Clients.ListClientsHandler)
		api.GET("/:id", hb.Clients.GetClientHandler)

		protected := api.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		protected.POST("", hb.Clients.AddClientHandler)
		protected.PATCH("/:id", hb.Clients.UpdateClientHandler)
		protected.DELETE("/:id", hb.Clients.DeleteClientHandler)
		protected.PUT("/:id/reminder", hb.Reminders.SaveReminderHandler)
		protected.POST("/:id/files", hb.Storage.UploadClientFilesHandler)
	}
}

// RegisterReminderRoutes registers the reminder feed endpoints.
func RegisterReminderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.GET("", hb.Reminders.ListRemindersHandler)
		api.GET("/due", hb.Reminders.DueRemindersHandler)
		api.POST("/:id/shown", hb.Reminders.MarkReminderShownHandler)
	}
}

// RegisterWaitingListRoutes registers the waiting-list endpoints.
func RegisterWaitingListRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/waiting-list")
	{
		api.GET("", hb.WaitingList.ListWaitingListHandler)

		protected := api.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		protected.POST("", hb.WaitingList.AddWaitingListHandler)
		protected.DELETE("/:id", hb.WaitingList.DeleteWaitingListHandler)
	}
}

// RegisterOrderRoutes registers the agency order feed endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.GET("", hb.Orders.ListOrdersHandler)

		protected := api.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		protected.POST("", hb.Orders.CreateOrderHandler)
		protected.PUT("/:id", hb.Orders.UpdateOrderHandler)
		protected.DELETE("/:id", hb.Orders.DeleteOrderHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "viaduct occupancy board"})
	})
}

// RegisterAll wires every route group.
func RegisterAll(r *gin.Engine, hb *HandlerBundle) {
	RegisterCORS(r)
	RegisterHealthRoute(r)
	RegisterScheduleRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterWaitingListRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
}
