package dataset

import (
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadLabeled(t *testing.T) {

	docs, err := LoadLabeled("testdata/labeled")
	assert.NoError(t, err)
	assert.Equal(t, 4, len(docs))
	assert.Equal(t, []string{"sport", "tech"}, docs.Labels())

	byLabel := make(map[string]int)
	for _, d := range docs {
		byLabel[d.Label]++
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Text)
	}
	assert.Equal(t, 2, byLabel["sport"])
	assert.Equal(t, 2, byLabel["tech"])
}

func TestLoadLabeled_MissingDir(t *testing.T) {
	_, err := LoadLabeled("testdata/does-not-exist")
	assert.Error(t, err)
}

func TestLoadUnlabeled(t *testing.T) {

	docs, err := LoadUnlabeled("testdata/unlabeled")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(docs))
	assert.Equal(t, "", docs[0].Label)
	assert.Equal(t, "note.txt", docs[0].Name)
}

func TestDocument_Tokens(t *testing.T) {

	doc := Document{Text: "The team WON, the match - 2 goals!"}

	assert.Equal(t, []string{"the", "team", "won", "the", "match", "2", "goals"}, doc.Tokens())
}

func TestDocuments_Corpus(t *testing.T) {

	docs := Documents{
		{Text: "Alpha beta."},
		{Text: "Gamma, delta"},
	}

	b, err := ioutil.ReadAll(docs.Corpus())
	assert.NoError(t, err)
	assert.Equal(t, "alpha beta\ngamma delta\n", string(b))
}
