package dataset

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Table is a tabular dataset of numeric feature rows with a trailing categorical label.
type Table struct {
	Features int
	Rows     [][]float64
	Labels   []string
	Classes  []string
}

// LoadTable parses the given comma separated file into a Table.
// Every row must carry exactly `features` numeric columns and the label as last column.
func LoadTable(path string, features int) (*Table, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open table '%s': %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse table '%s': %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("empty table '%s'", path)
	}

	rows := make([][]float64, 0, len(records))
	labels := make([]string, 0, len(records))
	classes := make(map[string]struct{})

	for i, record := range records {
		if len(record) != features+1 {
			return nil, fmt.Errorf("row %d of '%s' has %d columns, expected %d", i+1, path, len(record), features+1)
		}
		row := make([]float64, features)
		for j := 0; j < features; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d of '%s' has non numeric column %d: %w", i+1, path, j+1, err)
			}
			row[j] = v
		}
		label := record[features]
		rows = append(rows, row)
		labels = append(labels, label)
		classes[label] = struct{}{}
	}

	cc := make([]string, 0, len(classes))
	for c := range classes {
		cc = append(cc, c)
	}
	sort.Strings(cc)

	log.Info().
		Int("rows", len(rows)).
		Int("features", features).
		Int("classes", len(cc)).
		Str("file", path).
		Msg("loaded table")

	return &Table{
		Features: features,
		Rows:     rows,
		Labels:   labels,
		Classes:  cc,
	}, nil
}

// Split splits the table into a shuffled train and test part.
// ratio is the fraction of rows that ends up in the train part.
func (t *Table) Split(ratio float64, seed int64) (train *Table, test *Table) {

	idx := make([]int, len(t.Rows))
	for i := range idx {
		idx[i] = i
	}
	rnd := rand.New(rand.NewSource(seed))
	rnd.Shuffle(len(idx), func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})

	pivot := int(ratio * float64(len(idx)))

	train = t.subset(idx[:pivot])
	test = t.subset(idx[pivot:])
	return train, test
}

func (t *Table) subset(idx []int) *Table {
	rows := make([][]float64, len(idx))
	labels := make([]string, len(idx))
	for i, j := range idx {
		rows[i] = t.Rows[j]
		labels[i] = t.Labels[j]
	}
	return &Table{
		Features: t.Features,
		Rows:     rows,
		Labels:   labels,
		Classes:  t.Classes,
	}
}

// Class returns the index of the given label within the sorted classes, -1 if unknown.
func (t *Table) Class(label string) int {
	for i, c := range t.Classes {
		if c == label {
			return i
		}
	}
	return -1
}

// OneHot encodes the row labels as one-hot vectors over the sorted classes.
func (t *Table) OneHot() [][]float64 {
	yy := make([][]float64, len(t.Labels))
	for i, label := range t.Labels {
		y := make([]float64, len(t.Classes))
		c := t.Class(label)
		if c >= 0 {
			y[c] = 1
		}
		yy[i] = y
	}
	return yy
}

// ClassIndexes returns the class index for each row.
func (t *Table) ClassIndexes() []int {
	ii := make([]int, len(t.Labels))
	for i, label := range t.Labels {
		ii[i] = t.Class(label)
	}
	return ii
}
