// Package asset manages the lifecycle of uploaded shop photos in a
// publicly servable blob bucket.
package asset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shopdir/config"
	"shopdir/internal/domain/service"
	"shopdir/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// BucketParams defines the required parameters for the photo bucket.
type BucketParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewBucket opens the fileblob bucket behind the public uploads directory,
// creating the directory on first start. The same directory is served
// statically by the HTTP server.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	dir := params.Config.Uploads.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create uploads directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploads bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

type photoStore struct {
	bucket     *blob.Bucket
	publicPath string
	logger     *slog.Logger
}

// NewPhotoStore creates the photo store. publicPath is the URL prefix under
// which the bucket contents are served (e.g. "/uploads").
func NewPhotoStore(bucket *blob.Bucket, cfg *config.Config, logger *slog.Logger) service.AssetStore {
	return &photoStore{
		bucket:     bucket,
		publicPath: strings.TrimSuffix(cfg.Uploads.PublicPath, "/"),
		logger:     logger,
	}
}

// Finalize writes the staged upload under a unique name derived from the
// upload time and the original extension, and returns its public reference.
func (s *photoStore) Finalize(ctx context.Context, upload *service.StagedUpload) (string, error) {
	if upload == nil {
		return "", nil
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), sanitizeExt(upload.Filename))

	writer, err := s.bucket.NewWriter(ctx, name, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to open photo writer")
	}
	if _, err := writer.ReadFrom(upload.Content); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write photo")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize photo")
	}

	ref := s.publicPath + "/" + name
	s.logger.Debug("stored shop photo",
		slog.String("ref", ref),
		slog.Int64("size", upload.Size),
	)

	return ref, nil
}

// Remove deletes the file behind the given reference. A missing file is
// success; anything else is surfaced to the caller.
func (s *photoStore) Remove(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}

	key, err := s.keyFromRef(ref)
	if err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete photo")
	}

	return nil
}

// keyFromRef maps a public reference back to a bucket key, rejecting refs
// that point outside the public path.
func (s *photoStore) keyFromRef(ref string) (string, error) {
	key, ok := strings.CutPrefix(ref, s.publicPath+"/")
	if !ok || key == "" || strings.Contains(key, "/") || strings.Contains(key, "..") {
		return "", errors.Errorf("invalid photo reference: %s", ref)
	}

	return key, nil
}

// sanitizeExt keeps only a plain extension from the client-supplied
// filename; anything suspicious is dropped.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "." || strings.ContainsAny(ext, `/\`) {
		return ""
	}

	return ext
}
