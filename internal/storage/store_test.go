package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_Path(t *testing.T) {
	k := Key{
		Hash:  42,
		Name:  "paravec",
		Label: "centroids",
	}
	assert.Equal(t, "paravec_42_centroids", k.Path())
}

func TestMakePath(t *testing.T) {

	parent := filepath.Join(t.TempDir(), "a", "b")
	p, err := MakePath(parent, "data.csv")
	assert.NoError(t, err)

	info, err := os.Stat(parent)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(parent, "data.csv"), p)
}

func TestVoidStorage(t *testing.T) {

	void := NewVoidStorage()

	assert.NoError(t, void.Store(Key{Name: "any"}, "value"))

	var out string
	err := void.Load(Key{Name: "any"}, &out)
	assert.Error(t, err)
}

func TestVoidShard(t *testing.T) {

	store, err := VoidShard("models")("centroids")
	assert.NoError(t, err)

	assert.NoError(t, store.Store(Key{Name: "any"}, "value"))

	var out string
	err = store.Load(Key{Name: "any"}, &out)
	assert.True(t, errors.Is(err, NotFoundErr))
}
