package port

import (
	"context"
	"io"
)

// UploadInput describes an object to upload.
type UploadInput struct {
	Bucket      string
	Key         string
	ContentType string
	Body        io.Reader
}

// ObjectStorage defines the contract for archiving exported documents.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) error
}
