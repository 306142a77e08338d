// Package storage persists customer photos on local disk and maps them to
// the public URLs the API hands out.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/benjamincondori/Api-Asistencia-Tecnica/config"
)

const customersSubdir = "img/customers"

type Store struct {
	logger  *zap.Logger
	dir     string
	baseURL string
}

func New(logger *zap.Logger, cfg config.Storage) (*Store, error) {
	dir := filepath.Join(cfg.Dir, customersSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}

	return &Store{
		logger:  logger,
		dir:     cfg.Dir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// Save writes the uploaded file under the customer-photo area and returns
// its externally servable URL.
func (s *Store) Save(fh *multipart.FileHeader, filename string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, customersSubdir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.publicURL(filename), nil
}

// Remove deletes the file behind a previously issued URL. A missing file is
// not an error.
func (s *Store) Remove(photoURL string) error {
	p, err := s.filePath(photoURL)
	if err != nil {
		return err
	}
	if err = os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return nil
}

func (s *Store) Exists(photoURL string) bool {
	p, err := s.filePath(photoURL)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)

	return err == nil
}

func (s *Store) publicURL(filename string) string {
	return s.baseURL + "/storage/" + customersSubdir + "/" + filename
}

func (s *Store) filePath(photoURL string) (string, error) {
	u, err := url.Parse(photoURL)
	if err != nil {
		return "", fmt.Errorf("invalid photo url %q: %w", photoURL, err)
	}

	return filepath.Join(s.dir, customersSubdir, path.Base(u.Path)), nil
}
