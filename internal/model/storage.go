package model

import (
	"context"
	"io"
)

// ObjectStorage stores product images and other static assets.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// EmailSender delivers transactional mail (sign-in passcodes).
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
