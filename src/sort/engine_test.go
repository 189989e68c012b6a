package sort

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	algosort "github.com/twmb/algoimpl/go/sort"
)

func newEngine(t *testing.T, alg Algorithm, values ...float64) Engine {
	t.Helper()
	e, err := New(alg, FromValues(values), nil)
	require.NoError(t, err)
	return e
}

// isSorted reports whether seq is non-decreasing by value.
func isSorted(seq Sequence) bool {
	for i := 1; i < len(seq); i++ {
		if Compare(seq[i], seq[i-1]) < 0 {
			return false
		}
	}
	return true
}

func expected(values []float64) []float64 {
	seq := FromValues(values)
	algosort.HeapSort(seq)
	return seq.Values()
}

func baseOf(e Engine) *base {
	switch v := e.(type) {
	case *insertion:
		return v.base
	case *quick:
		return v.base
	case *heap:
		return v.base
	}
	return nil
}

func randomValues(rng *rand.Rand, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(rng.Intn(50) - 10)
	}
	return values
}

var inputs = map[string][]float64{
	"empty":      {},
	"single":     {1},
	"pair":       {2, 1},
	"pairSorted": {1, 2},
	"allSame":    {4, 4, 4, 4, 4},
	"sorted":     {1, 2, 3, 4, 5},
	"reverse":    {5, 4, 3, 2, 1},
	"example":    {5, 3, 4, 1, 2},
	"duplicates": {3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5},
	"fractions":  {0.5, -1.25, 3, 0, -0.5, 2.75},
	"three":      {2, 3, 1},
}

func TestSortProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cases := make(map[string][]float64, len(inputs))
	for name, values := range inputs {
		cases[name] = values
	}
	for _, n := range []int{3, 4, 7, 8, 16, 31, 100} {
		cases[fmt.Sprintf("random%d", n)] = randomValues(rng, n)
	}

	for _, alg := range Algorithms {
		for name, values := range cases {
			t.Run(string(alg)+"/"+name, func(t *testing.T) {
				e := newEngine(t, alg, values...)
				result := e.Sort()
				rec := e.Recorder()

				assert.True(t, isSorted(result), "unsorted result %v", result.Values())
				assert.Equal(t, expected(values), result.Values())

				require.GreaterOrEqual(t, rec.Len(), 1)
				assert.Equal(t, FromValues(values), rec.Snapshots()[0])
				assert.Equal(t, result.Values(), rec.Last().Values())
				assert.Equal(t, result, e.Values())

				for i, s := range rec.Snapshots() {
					assert.Len(t, s, len(values), "snapshot %d", i)
					assert.ElementsMatch(t, values, s.Values(), "snapshot %d", i)
				}
			})
		}
	}
}

func TestSortDoesNotAliasInput(t *testing.T) {
	for _, alg := range Algorithms {
		input := FromValues([]float64{3, 1, 2})
		e, err := New(alg, input, nil)
		require.NoError(t, err)
		e.Sort()
		assert.Equal(t, Sequence{{Value: 3}, {Value: 1}, {Value: 2}}, input, alg)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	for _, alg := range Algorithms {
		e := newEngine(t, alg, 5, 3, 4, 1, 2)
		e.Sort()
		before := make([]Snapshot, 0, e.Recorder().Len())
		for _, s := range e.Recorder().Snapshots() {
			before = append(before, s.Clone())
		}

		live := baseOf(e).values
		for i := range live {
			live[i].Value = -1
			live[i].Selected = true
		}
		assert.Equal(t, before, e.Recorder().Snapshots(), alg)
	}
}

func TestReseed(t *testing.T) {
	for _, alg := range Algorithms {
		e := newEngine(t, alg, 9, 8, 7, 6)
		e.Sort()
		require.Greater(t, e.Recorder().Len(), 1)

		e.Reseed(Sequence{{Value: 3, Selected: true}, {Value: 1}, {Value: 2}})
		require.Equal(t, 1, e.Recorder().Len(), alg)
		assert.Equal(t, Sequence{{Value: 3}, {Value: 1}, {Value: 2}}, e.Recorder().Snapshots()[0])
		assert.Equal(t, []float64{3, 1, 2}, e.Values().Values())

		assert.Equal(t, []float64{1, 2, 3}, e.Sort().Values())
	}
}

func TestInsertSortTrace(t *testing.T) {
	e := newEngine(t, InsertSort, 5, 3, 4, 1, 2)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, e.Sort().Values())

	trace := e.Recorder().Snapshots()
	// initial, one per pass, final
	require.Len(t, trace, 6)
	assert.Equal(t, Sequence{{Value: 5}, {Value: 3}, {Value: 4}, {Value: 1}, {Value: 2}}, trace[0])
	assert.Equal(t, Sequence{{Value: 5, Selected: true}, {Value: 3}, {Value: 4}, {Value: 1}, {Value: 2}}, trace[1])
	assert.Equal(t, Sequence{{Value: 1}, {Value: 3, Selected: true}, {Value: 4}, {Value: 5}, {Value: 2}}, trace[2])
	assert.Equal(t, Sequence{{Value: 1}, {Value: 2}, {Value: 4, Selected: true}, {Value: 5}, {Value: 3}}, trace[3])
	assert.Equal(t, Sequence{{Value: 1}, {Value: 2}, {Value: 3}, {Value: 5, Selected: true}, {Value: 4}}, trace[4])
	assert.Equal(t, FromValues([]float64{1, 2, 3, 4, 5}), trace[5])
}

func TestInsertSortEmpty(t *testing.T) {
	e := newEngine(t, InsertSort)
	assert.Empty(t, e.Sort())
	assert.Equal(t, 2, e.Recorder().Len())
}

func TestQuickSortSingle(t *testing.T) {
	e := newEngine(t, QuickSort, 1)
	assert.Equal(t, []float64{1}, e.Sort().Values())
	assert.Equal(t, 1, e.Recorder().Len())
}

func TestQuickSortEmpty(t *testing.T) {
	e := newEngine(t, QuickSort)
	assert.Empty(t, e.Sort())
	assert.Equal(t, 1, e.Recorder().Len())
}

func TestQuickSortAlreadySorted(t *testing.T) {
	e := newEngine(t, QuickSort, 1, 2, 3, 4, 5)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, e.Sort().Values())
}

func TestQuickSortTrace(t *testing.T) {
	e := newEngine(t, QuickSort, 2, 3, 1)
	e.Sort()
	// pivot 2 swaps with 1, then the [1,2] window swaps 3 and 2.
	assert.Equal(t, []Sequence{
		{{Value: 2}, {Value: 3}, {Value: 1}},
		{{Value: 1}, {Value: 3}, {Value: 2}},
		{{Value: 1}, {Value: 2}, {Value: 3}},
	}, e.Recorder().Snapshots())
}

func TestQuickSortHighlightsAdvance(t *testing.T) {
	e := newEngine(t, QuickSort, 3, 1, 2, 5)
	e.Sort()
	var highlighted int
	for _, s := range e.Recorder().Snapshots() {
		n := 0
		for _, el := range s {
			if el.Selected {
				n++
			}
		}
		assert.LessOrEqual(t, n, 1)
		highlighted += n
	}
	assert.Greater(t, highlighted, 0)
	for _, el := range e.Values() {
		assert.False(t, el.Selected)
	}
}

func TestHeapSortEmpty(t *testing.T) {
	e := newEngine(t, HeapSort)
	assert.NotPanics(t, func() { e.Sort() })
	assert.Empty(t, e.Values())
	assert.Equal(t, 1, e.Recorder().Len())
}

func TestHeapSortSmall(t *testing.T) {
	e := newEngine(t, HeapSort, 1)
	assert.Equal(t, []float64{1}, e.Sort().Values())
	assert.Equal(t, 3, e.Recorder().Len())

	e = newEngine(t, HeapSort, 1, 2)
	assert.Equal(t, []float64{1, 2}, e.Sort().Values())
	assert.Equal(t, []Sequence{
		{{Value: 1}, {Value: 2}},
		{{Value: 1}, {Value: 2, Selected: true}},
		{{Value: 2, Selected: true}, {Value: 1}},
		{{Value: 2}, {Value: 1, Selected: true}},
		{{Value: 1, Selected: true}, {Value: 2}},
		{{Value: 1, Selected: true}, {Value: 2}},
	}, e.Recorder().Snapshots())
}

func TestHeapSortEveryFrameHighlights(t *testing.T) {
	e := newEngine(t, HeapSort, 4, 9, 2, 7, 7, 1)
	e.Sort()
	for i, s := range e.Recorder().Snapshots()[1:] {
		n := 0
		for _, el := range s {
			if el.Selected {
				n++
			}
		}
		assert.Equal(t, 1, n, "snapshot %d", i+1)
	}
}

func TestNewAbstractEngine(t *testing.T) {
	e, err := New("", FromValues([]float64{1}), nil)
	assert.Nil(t, e)
	assert.True(t, errors.Is(err, ErrInvalidOperation))
}

func TestNewUnknownAlgorithm(t *testing.T) {
	rec := NewRecorder()
	e, err := New("bogus_sort", FromValues([]float64{1}), rec)
	assert.Nil(t, e)
	assert.Equal(t, ErrUnknownAlgorithm, errors.Cause(err))
	assert.Equal(t, 0, rec.Len())
}

func TestBaseSortPanics(t *testing.T) {
	b := &base{alg: InsertSort, rec: NewRecorder()}
	assert.PanicsWithError(t, ErrInvalidOperation.Error(), func() { b.sortInPlace() })
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range Algorithms {
		got, err := ParseAlgorithm(string(a))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := ParseAlgorithm("bubble_sort")
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}
