// Package archive copies completed storage files to a blob backend for
// backup and sharing: the local filesystem, an in-memory store for tests,
// or S3-compatible object storage.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ErrNotFound is returned when an archived object does not exist.
var ErrNotFound = errors.New("archive object not found")

// Store is an object store holding archived storage files.
type Store interface {
	// Put writes an object, replacing any previous content.
	Put(ctx context.Context, name string, r io.Reader, size int64) error
	// Open opens an object for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// List returns the object names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, name string) error
}

// Uploader pushes local files into a Store with bounded concurrency and a
// put-rate limit, so bulk exports do not hammer remote endpoints.
type Uploader struct {
	store       Store
	limiter     *rate.Limiter
	concurrency int
}

// UploaderOption configures an Uploader.
type UploaderOption func(*Uploader)

// WithPutRate limits uploads to n object puts per second.
func WithPutRate(n float64) UploaderOption {
	return func(u *Uploader) {
		u.limiter = rate.NewLimiter(rate.Limit(n), 1)
	}
}

// WithConcurrency bounds the number of parallel uploads (default 4).
func WithConcurrency(n int) UploaderOption {
	return func(u *Uploader) {
		if n > 0 {
			u.concurrency = n
		}
	}
}

// NewUploader creates an Uploader on top of the given store.
func NewUploader(store Store, opts ...UploaderOption) *Uploader {
	u := &Uploader{
		store:       store,
		limiter:     rate.NewLimiter(rate.Inf, 1),
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// UploadFile archives a single local file under the given object name.
func (u *Uploader) UploadFile(ctx context.Context, name, path string) error {
	if err := u.limiter.Wait(ctx); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if err := u.store.Put(ctx, name, f, info.Size()); err != nil {
		return fmt.Errorf("archive: upload %s: %w", name, err)
	}
	return nil
}

// UploadFiles archives several local files concurrently. files maps the
// object name to the local source path. The first failure cancels the
// remaining uploads.
func (u *Uploader) UploadFiles(ctx context.Context, files map[string]string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for name, path := range files {
		g.Go(func() error {
			return u.UploadFile(ctx, name, path)
		})
	}
	return g.Wait()
}

// Fetch downloads an archived object into a local file, written atomically
// via a temp file in the destination directory.
func Fetch(ctx context.Context, store Store, name, path string) error {
	rc, err := store.Open(ctx, name)
	if err != nil {
		return err
	}
	defer rc.Close()

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := io.Copy(tmp, rc); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	tmpName = ""
	return nil
}
