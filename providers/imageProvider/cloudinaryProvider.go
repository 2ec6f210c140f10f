package imageProvider

import (
	"assettracker/models"
	"assettracker/providers"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
)

type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (providers.ImageStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to init cloudinary client")
	}
	cld.Config.URL.Secure = true
	return &CloudinaryStore{cld: cld}, nil
}

// Upload stores a base64 data URI under folder and returns its secure URL.
func (c *CloudinaryStore) Upload(ctx context.Context, data string, folder string) (string, error) {
	res, err := c.cld.Upload.Upload(ctx, data, uploader.UploadParams{
		Folder:       folder,
		Overwrite:    api.Bool(true),
		Invalidate:   api.Bool(true),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrImageUploadFailed, err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", models.ErrImageUploadFailed, res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", fmt.Errorf("%w: no url returned", models.ErrImageUploadFailed)
	}
	return res.SecureURL, nil
}

func (c *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:   publicID,
		Invalidate: api.Bool(true),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to delete image %s", publicID)
	}
	if res.Error.Message != "" {
		return errors.Errorf("failed to delete image %s: %s", publicID, res.Error.Message)
	}
	return nil
}
