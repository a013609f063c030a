package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// DefaultDir is the root folder for all file based persistence.
	// TODO : leaving this as a var to be able to adjust for the tests
	DefaultDir = "file-storage"
)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key for a general implementation.
type Key struct {
	Hash  int64  `json:"hash"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

func (k Key) Path() string {
	return fmt.Sprintf("%s_%v_%s", k.Name, k.Hash, k.Label)
}

// Persistence is a general blob storage interface.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

// MakePath makes sure the parent path exists and returns the full file path.
func MakePath(parentPath string, fileName string) (string, error) {
	err := os.MkdirAll(parentPath, os.ModePerm)
	if err != nil {
		return "", fmt.Errorf("could not make dir %s: %w", parentPath, err)
	}
	return filepath.Join(parentPath, fileName), nil
}
