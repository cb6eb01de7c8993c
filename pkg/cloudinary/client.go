package cloudinary

import (
	"errors"

	"github.com/cloudinary/cloudinary-go/v2"
)

func New(cloudinaryURL string) (*cloudinary.Cloudinary, error) {
	if cloudinaryURL == "" {
		return nil, errors.New("cloudinary url is not configured")
	}
	return cloudinary.NewFromURL(cloudinaryURL)
}
