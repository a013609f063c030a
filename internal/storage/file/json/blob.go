package json

import (
	"path/filepath"

	"github.com/drakos74/free-learn/internal/storage"
	"github.com/rs/zerolog/log"
)

// BlobStorage is a json file based storage.
// table has the same schema, shard is a logical split.
type BlobStorage struct {
	path  string
	table string
	shard string
	debug bool
}

// NewJsonBlob creates a new json blob storage.
func NewJsonBlob(table, shard string, debug bool) *BlobStorage {
	return &BlobStorage{
		table: table,
		shard: shard,
		path:  storage.DefaultDir,
		debug: debug,
	}
}

// BlobShard creates a blob storage for the given table.
func BlobShard(table string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewJsonBlob(table, shard, false), nil
	}
}

func (s BlobStorage) Store(k storage.Key, value interface{}) error {
	p := filepath.Join(s.path, s.table, s.shard)
	err := Save(p, k.Path(), value)
	if err == nil && s.debug {
		log.Info().Str("path", p).Str("file", k.Path()).Msg("stored json file")
	}
	return err
}

func (s BlobStorage) Load(k storage.Key, value interface{}) error {
	return Load(filepath.Join(s.path, s.table, s.shard), k.Path(), value)
}
