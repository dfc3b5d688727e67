package storage

import (
	"context"

	"viaduct/models"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService stores client attachments and hands back retrievable
// descriptors. The core never sees the bytes again.
type StorageService interface {
	UploadClientFile(ctx context.Context, clientID, filename, localPath string) (models.FileDescriptor, error)
	DeleteFile(ctx context.Context, publicID string) error
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
