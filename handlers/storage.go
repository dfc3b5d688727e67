package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"viaduct/models"
	"viaduct/services/registry"
	"viaduct/services/storage"
	"viaduct/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler handles client attachment uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
	Registry   registry.ClientRegistry
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService, reg registry.ClientRegistry) *StorageHandler {
	return &StorageHandler{StorageSvc: svc, Registry: reg}
}

// UploadClientFilesHandler handles POST /api/clients/:id/files. Every
// file in the multipart "files" field is uploaded and the resulting
// descriptors are appended to the client record.
func (h *StorageHandler) UploadClientFilesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	clientID := c.Param("id")

	if h.StorageSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "attachment storage is not configured"})
		return
	}

	client, ok := h.Registry.Get(clientID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "files not provided", "detail": err.Error()})
		return
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "files not provided"})
		return
	}

	var uploaded []models.FileDescriptor
	for _, fh := range fileHeaders {
		tempFilePath := filepath.Join(os.TempDir(), fh.Filename)
		if err := c.SaveUploadedFile(fh, tempFilePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
			return
		}

		desc, err := h.StorageSvc.UploadClientFile(c, clientID, fh.Filename, tempFilePath)
		os.Remove(tempFilePath)
		if err != nil {
			logger.Error("Attachment upload failed", zap.String("clientId", clientID),
				zap.String("file", fh.Filename), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
			return
		}
		uploaded = append(uploaded, desc)
	}

	files := append(client.Files, uploaded...)
	updated, err := h.Registry.Update(clientID, models.ClientUpdate{Files: &files})
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": updated.Files})
}
