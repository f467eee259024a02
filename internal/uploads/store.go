// Package uploads stores admin-uploaded media on disk under the
// public directory and hands back the URL the site serves it from.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Store writes uploaded files into dir and serves them under urlBase.
type Store struct {
	dir     string
	urlBase string
	maxSize int64
}

// New returns a store rooted at dir. urlBase is the public URL prefix
// for the directory, e.g. "/public/uploads".
func New(dir, urlBase string, maxSize int64) *Store {
	return &Store{
		dir:     dir,
		urlBase: strings.TrimSuffix(urlBase, "/"),
		maxSize: maxSize,
	}
}

// Save writes one uploaded file to disk under a fresh ulid name,
// keeping the original extension, and returns its public URL.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", fmt.Errorf("file %q exceeds the %d byte upload limit", file.Filename, s.maxSize)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := ulid.Make().String() + ext
	path := filepath.Join(s.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return s.urlBase + "/" + filename, nil
}

// Path resolves a URL previously returned by Save to its on-disk
// path.
func (s *Store) Path(url string) (string, bool) {
	name, ok := strings.CutPrefix(url, s.urlBase+"/")
	if !ok || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return "", false
	}
	return filepath.Join(s.dir, name), true
}

// Remove deletes the file behind a URL previously returned by Save.
// URLs outside the store are ignored.
func (s *Store) Remove(url string) error {
	name, ok := strings.CutPrefix(url, s.urlBase+"/")
	if !ok || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
