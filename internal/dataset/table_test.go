package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadTable(t *testing.T) {

	table, err := LoadTable("testdata/rows.csv", 4)
	assert.NoError(t, err)

	assert.Equal(t, 6, len(table.Rows))
	assert.Equal(t, 6, len(table.Labels))
	assert.Equal(t, []string{"Iris-setosa", "Iris-versicolor", "Iris-virginica"}, table.Classes)
	assert.Equal(t, []float64{5.1, 3.5, 1.4, 0.2}, table.Rows[0])
	assert.Equal(t, "Iris-virginica", table.Labels[5])
}

func TestLoadTable_Malformed(t *testing.T) {

	_, err := LoadTable("testdata/malformed.csv", 4)
	assert.Error(t, err)

	_, err = LoadTable("testdata/badvalue.csv", 4)
	assert.Error(t, err)

	_, err = LoadTable("testdata/rows.csv", 7)
	assert.Error(t, err)

	_, err = LoadTable("testdata/does-not-exist.csv", 4)
	assert.Error(t, err)
}

func TestTable_Split(t *testing.T) {

	table, err := LoadTable("testdata/rows.csv", 4)
	assert.NoError(t, err)

	train, test := table.Split(0.5, 42)

	assert.Equal(t, 3, len(train.Rows))
	assert.Equal(t, 3, len(test.Rows))
	assert.Equal(t, len(table.Rows), len(train.Rows)+len(test.Rows))
	assert.Equal(t, table.Classes, train.Classes)
	assert.Equal(t, table.Classes, test.Classes)

	// rows keep their labels attached
	for i, row := range train.Rows {
		found := false
		for j, original := range table.Rows {
			if equal(row, original) && table.Labels[j] == train.Labels[i] {
				found = true
				break
			}
		}
		assert.True(t, found)
	}
}

func TestTable_OneHot(t *testing.T) {

	table := &Table{
		Features: 1,
		Rows:     [][]float64{{1}, {2}, {3}},
		Labels:   []string{"b", "a", "b"},
		Classes:  []string{"a", "b"},
	}

	yy := table.OneHot()
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}, {0, 1}}, yy)
	assert.Equal(t, []int{1, 0, 1}, table.ClassIndexes())
	assert.Equal(t, -1, table.Class("c"))
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
