package archive

import (
	"context"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Minio implements Store for MinIO and other S3-compatible storage.
type Minio struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinio creates a MinIO archive store.
// rootPrefix is prepended to all object names (e.g. "stark/").
func NewMinio(client *minio.Client, bucket, rootPrefix string) *Minio {
	return &Minio{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (m *Minio) key(name string) string {
	return path.Join(m.prefix, name)
}

// Put uploads an object. Pass size -1 for streams of unknown length.
func (m *Minio) Put(ctx context.Context, name string, r io.Reader, size int64) error {
	_, err := m.client.PutObject(ctx, m.bucket, m.key(name), r, size, minio.PutObjectOptions{})
	return err
}

// Open opens an object for reading.
func (m *Minio) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := m.key(name)

	// StatObject first: GetObject defers the existence check to the first
	// read, which would surface NotFound at an awkward point.
	_, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, ErrNotFound
		}
		return nil, err
	}

	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// List returns the object names with the given prefix, sorted.
func (m *Minio) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := m.key(prefix)

	var names []string
	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    fullPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		name := strings.TrimPrefix(obj.Key, m.prefix)
		name = strings.TrimPrefix(name, "/")
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes an object. Deleting a missing object is not an error.
func (m *Minio) Delete(ctx context.Context, name string) error {
	err := m.client.RemoveObject(ctx, m.bucket, m.key(name), minio.RemoveObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil
		}
		return err
	}
	return nil
}
