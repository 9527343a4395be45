package storage

import "io"

// ObjectStorage is the object-store surface the services depend on. Two
// buckets are used by convention: one for guest photos, one for cover images.
type ObjectStorage interface {
	Upload(bucket, key string, reader io.Reader) error
	Download(bucket, key string) (io.ReadCloser, error)
	Delete(bucket, key string) error
	GetPublicURL(bucket, key string) string
}
