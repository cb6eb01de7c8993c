package interfaces

import "context"

type UploadResult struct {
	PublicID  string
	SecureURL string
}

// Uploader abstracts the external image host. UploadFile takes a local path
// because avatars are staged on disk before the remote upload.
type Uploader interface {
	UploadFile(ctx context.Context, folder string, path string) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}
