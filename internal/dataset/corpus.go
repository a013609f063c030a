package dataset

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Document is a single text document with an optional label.
type Document struct {
	Label string
	Name  string
	Text  string
}

// Tokens returns the lower-cased word tokens of the document.
func (d Document) Tokens() []string {
	fields := strings.FieldsFunc(strings.ToLower(d.Text), func(r rune) bool {
		return !isWordRune(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '\'' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// Documents is a collection of documents.
type Documents []Document

// Labels returns the sorted distinct labels of the collection.
func (dd Documents) Labels() []string {
	set := make(map[string]struct{})
	for _, d := range dd {
		if d.Label != "" {
			set[d.Label] = struct{}{}
		}
	}
	labels := make([]string, 0, len(set))
	for l := range set {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Corpus returns the whitespace separated token stream of all documents,
// ready to be fed to an embedding trainer.
func (dd Documents) Corpus() *strings.Reader {
	var sb strings.Builder
	for _, d := range dd {
		sb.WriteString(strings.Join(d.Tokens(), " "))
		sb.WriteString("\n")
	}
	return strings.NewReader(sb.String())
}

// LoadLabeled loads a labeled document collection from the given directory.
// Each subfolder is a label, each file inside it is one document.
func LoadLabeled(dir string) (Documents, error) {

	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read labeled dir '%s': %w", dir, err)
	}

	docs := make(Documents, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		label := entry.Name()
		labelDocs, err := loadDir(filepath.Join(dir, label), label)
		if err != nil {
			return nil, err
		}
		docs = append(docs, labelDocs...)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no labeled documents found in '%s'", dir)
	}

	log.Info().
		Int("documents", len(docs)).
		Int("labels", len(docs.Labels())).
		Str("dir", dir).
		Msg("loaded labeled corpus")

	return docs, nil
}

// LoadUnlabeled loads a flat folder of text files, with no label assigned.
func LoadUnlabeled(dir string) (Documents, error) {

	docs, err := loadDir(dir, "")
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no unlabeled documents found in '%s'", dir)
	}

	log.Info().
		Int("documents", len(docs)).
		Str("dir", dir).
		Msg("loaded unlabeled documents")

	return docs, nil
}

func loadDir(dir string, label string) (Documents, error) {

	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read dir '%s': %w", dir, err)
	}

	docs := make(Documents, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		b, err := ioutil.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not read document '%s': %w", entry.Name(), err)
		}
		docs = append(docs, Document{
			Label: label,
			Name:  entry.Name(),
			Text:  string(b),
		})
	}
	return docs, nil
}
