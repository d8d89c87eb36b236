package service

import (
	"context"
)

// ImageStore keeps uploaded images in a blob bucket.
type ImageStore interface {
	// Save stores data under a fresh unique name keeping the extension of
	// originalName and returns that name.
	Save(ctx context.Context, originalName, contentType string, data []byte) (string, error)

	// Delete removes the image and reports whether it existed.
	Delete(ctx context.Context, name string) (bool, error)

	// Exists reports whether an image with this name is stored.
	Exists(ctx context.Context, name string) (bool, error)

	// URL returns the public address of a stored image.
	URL(name string) string
}
