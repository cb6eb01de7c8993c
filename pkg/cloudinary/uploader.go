package cloudinary

import (
	"context"

	"github.com/BrickByte/lms_service/internal/interfaces"
	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// avatarTransformation crops uploads to a 250x250 face-centered square.
const avatarTransformation = "c_fill,g_face,h_250,w_250"

type CloudinaryUploader struct {
	cld *cld.Cloudinary
}

func NewCloudinaryUploader(cloud *cld.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cloud}
}

func (u *CloudinaryUploader) UploadFile(
	ctx context.Context,
	folder string,
	path string,
) (*interfaces.UploadResult, error) {
	res, err := u.cld.Upload.Upload(
		ctx,
		path,
		uploader.UploadParams{
			Folder:         folder,
			ResourceType:   "image",
			Transformation: avatarTransformation,
		},
	)
	if err != nil {
		return nil, err
	}

	return &interfaces.UploadResult{
		PublicID:  res.PublicID,
		SecureURL: res.SecureURL,
	}, nil
}

func (u *CloudinaryUploader) Destroy(ctx context.Context, publicID string) error {
	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}
