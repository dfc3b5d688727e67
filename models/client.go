package models

// Booking status values. The table colours green/yellow/red on these.
const (
	StatusConfirmed = "Confirmed"
	StatusReserved  = "Reserved"
	StatusCancelled = "Cancelled"
)

// Recognized intensity categories and their per-week load.
const (
	IntensityEvery1 = "every-1 (100%)"
	IntensityEvery2 = "every-2 (50%)"
	IntensityEvery4 = "every-4 (25%)"
)

// FileDescriptor is an uploaded attachment reference. The core only
// stores the descriptor; bytes live with the storage collaborator.
type FileDescriptor struct {
	Name string `bson:"name" json:"name"`
	URL  string `bson:"url,omitempty" json:"url,omitempty"`
	Size int64  `bson:"size,omitempty" json:"size,omitempty"`
}

// Client is a booking record occupying weekly slots.
//
// The bson tags carry the backing store's lowercase column names; the
// json tags stay camelCase for the dashboard. Weeks and HasWarning are
// derived per snapshot and never treated as authoritative when loaded.
type Client struct {
	ID          string           `bson:"id" json:"id"`
	Name        string           `bson:"name" json:"name"`
	Status      string           `bson:"status" json:"status"`
	OrderNumber string           `bson:"ordernumber" json:"orderNumber"`
	StartDate   string           `bson:"startdate" json:"startDate"` // YYYY-MM-DD
	EndDate     string           `bson:"enddate" json:"endDate"`     // YYYY-MM-DD
	Intensity   string           `bson:"intensity" json:"intensity"`
	Comment     string           `bson:"comment,omitempty" json:"comment"`
	Files       []FileDescriptor `bson:"files,omitempty" json:"files,omitempty"`

	Weeks      map[string]int `bson:"-" json:"weeks"`
	HasWarning bool           `bson:"-" json:"hasWarning"`
}

// ClientForm is the add-client payload. All four of name, orderNumber,
// startDate and endDate are required.
type ClientForm struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	OrderNumber string `json:"orderNumber"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Intensity   string `json:"intensity"`
	Comment     string `json:"comment"`
}

// ClientUpdate is a partial update: nil fields are left unchanged.
type ClientUpdate struct {
	Name        *string           `json:"name"`
	Status      *string           `json:"status"`
	OrderNumber *string           `json:"orderNumber"`
	StartDate   *string           `json:"startDate"`
	EndDate     *string           `json:"endDate"`
	Intensity   *string           `json:"intensity"`
	Comment     *string           `json:"comment"`
	Files       *[]FileDescriptor `json:"files"`
}
