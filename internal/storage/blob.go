package storage

import "io"

// BlobStore holds proof images. Keys are opaque slash-separated paths;
// the sheet record only ever stores the reference returned by Put.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	Delete(key string) error
	SignedURL(key string) (string, error) // fs returns "file://..." for dev
}
