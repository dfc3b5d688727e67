package storage

import (
	"context"
	"fmt"
	"os"

	"viaduct/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// NewStorageService creates a StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
	}
}

// UploadClientFile uploads one attachment into the client's folder and
// returns its descriptor (original name, public URL, size).
func (s *StorageServiceImpl) UploadClientFile(ctx context.Context, clientID, filename, localPath string) (models.FileDescriptor, error) {
	info, err := os.Stat(localPath)
	if err != nil {
		return models.FileDescriptor{}, fmt.Errorf("StorageServiceImpl: failed to stat file: %w", err)
	}

	result, err := s.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		Folder: "attachments/" + clientID,
	})
	if err != nil {
		return models.FileDescriptor{}, fmt.Errorf("StorageServiceImpl: failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return models.FileDescriptor{}, fmt.Errorf("StorageServiceImpl: no URL returned for %s", filename)
	}

	return models.FileDescriptor{
		Name: filename,
		URL:  result.SecureURL,
		Size: info.Size(),
	}, nil
}

// DeleteFile deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}
