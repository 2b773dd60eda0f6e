package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore stores objects in Cloudinary, keyed by folder/public-id
// derived from the storage key.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary environment variables are not set")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("error initializing cloudinary: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := cld.Admin.Ping(ctx); err != nil {
		return nil, fmt.Errorf("error verifying the cloudinary connection: %v", err)
	}

	return &CloudinaryStore{cld: cld}, nil
}

func boolPointer(b bool) *bool {
	return &b
}

func (c *CloudinaryStore) Put(ctx context.Context, key string, data []byte, mimeType string) (string, error) {
	folder := path.Dir(key)
	publicID := strings.TrimSuffix(path.Base(key), path.Ext(key))

	uploadResult, err := c.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:         folder,
		PublicID:       publicID,
		UniqueFilename: boolPointer(false),
		Overwrite:      boolPointer(true),
		ResourceType:   "auto",
	})
	if err != nil {
		return "", fmt.Errorf("error uploading to cloudinary: %v", err)
	}

	if uploadResult.SecureURL == "" {
		return "", fmt.Errorf("empty secure URL in the cloudinary response")
	}
	return uploadResult.SecureURL, nil
}
