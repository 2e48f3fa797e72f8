package service

import (
	"context"
	"io"
)

// StagedUpload is a binary file already received from the client and ready
// to be written into the asset store under a server-generated name.
type StagedUpload struct {
	// Filename is the client-supplied original name; only its extension is
	// kept when deriving the stored name.
	Filename string
	Size     int64
	Content  io.Reader
}

// AssetStore manages the lifecycle of uploaded shop photos.
type AssetStore interface {
	// Finalize writes the staged upload into the public store and returns
	// its public-facing reference path. A nil upload is a no-op and yields
	// an empty reference.
	Finalize(ctx context.Context, upload *StagedUpload) (string, error)

	// Remove deletes the file behind the given reference. A missing file is
	// not an error (idempotent delete); any other I/O failure is returned.
	// An empty reference is a no-op.
	Remove(ctx context.Context, ref string) error
}
