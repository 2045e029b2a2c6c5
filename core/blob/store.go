// Package blob is the upload file store: save-by-generated-name with a random
// prefix, serve-by-name. Names never escape the store's root.
package blob

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gazeta-portal/core/utils"
	"github.com/gofrs/uuid/v5"
)

var (
	ErrNotFound = errors.New("blob not found")

	// ErrBadExtension and ErrTooLarge are validation rejections: checked before
	// any record is created.
	ErrBadExtension = errors.New("file extension not allowed")
	ErrTooLarge     = errors.New("file exceeds the maximum size")
)

var (
	JournalExtensions = map[string]struct{}{"pdf": {}}
	AssetExtensions   = map[string]struct{}{
		"pdf": {}, "png": {}, "jpg": {}, "jpeg": {}, "gif": {},
		"doc": {}, "docx": {}, "txt": {}, "zip": {}, "csv": {},
		"ppt": {}, "pptx": {},
	}
)

type Store struct {
	root     string
	allowed  map[string]struct{}
	maxBytes int64
}

// NewStore creates (if needed) and wraps one upload directory.
func NewStore(root string, allowed map[string]struct{}, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: root, allowed: allowed, maxBytes: maxBytes}, nil
}

// Store validates and writes data under a collision-avoided name:
// "<uuid>_<sanitized original name>". Returns the generated name.
func (s *Store) Store(data []byte, suggestedName string) (string, error) {
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return "", ErrTooLarge
	}
	clean := utils.SanitizeFilename(suggestedName)
	ext := utils.FileExtension(clean)
	if _, ok := s.allowed[ext]; !ok {
		return "", ErrBadExtension
	}
	name := uuid.Must(uuid.NewV4()).String() + "_" + clean
	if err := os.WriteFile(filepath.Join(s.root, name), data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

// Open returns the stored bytes for a generated name.
func (s *Store) Open(storedName string) ([]byte, error) {
	name := filepath.Base(strings.TrimSpace(storedName))
	if name == "" || name == "." || name == ".." {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(s.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}
