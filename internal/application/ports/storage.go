package ports

import "mime/multipart"

// PhotoStorage is the blob store behind customer photos. Remove and Exists
// operate on the public URLs Save returns; callers treat Remove failures as
// best-effort.
type PhotoStorage interface {
	Save(fh *multipart.FileHeader, filename string) (string, error)
	Remove(photoURL string) error
	Exists(photoURL string) bool
}
