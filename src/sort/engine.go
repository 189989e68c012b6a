package sort

import (
	"sync"

	"github.com/pkg/errors"

	"sorttrace/src/utils"
)

var logger = utils.GetLogger("sorttrace")

var (
	// ErrInvalidOperation is returned when an engine is requested without a
	// concrete algorithm.
	ErrInvalidOperation = errors.New("invalid operation: sort engine needs a concrete algorithm")
	// ErrUnknownAlgorithm is returned for names outside Algorithms.
	ErrUnknownAlgorithm = errors.New("unknown sort algorithm")
)

// Algorithm names one of the supported sort variants.
type Algorithm string

const (
	InsertSort Algorithm = "insert_sort"
	QuickSort  Algorithm = "quick_sort"
	HeapSort   Algorithm = "heap_sort"
)

// Algorithms lists every supported variant.
var Algorithms = []Algorithm{InsertSort, QuickSort, HeapSort}

// ParseAlgorithm validates name against Algorithms.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if string(a) == name {
			return a, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Engine sorts a private Sequence in place and records every step worth
// animating. Only this package implements it; use New or Create.
type Engine interface {
	Algorithm() Algorithm
	// Sort orders the working Sequence ascending by value and returns it.
	Sort() Sequence
	// Reseed clears the trace and restarts from a copy of values.
	Reseed(values Sequence)
	// Values returns a copy of the live Sequence.
	Values() Sequence
	Recorder() *Recorder

	sortInPlace()
}

// New builds the engine for alg over a copy of values, recording the
// starting snapshot into rec. A nil rec gets a fresh Recorder.
func New(alg Algorithm, values Sequence, rec *Recorder) (Engine, error) {
	if alg == "" {
		return nil, errors.WithStack(ErrInvalidOperation)
	}
	if rec == nil {
		rec = NewRecorder()
	}
	b := &base{alg: alg, rec: rec}
	var e Engine
	switch alg {
	case InsertSort:
		e = &insertion{b}
	case QuickSort:
		e = &quick{b}
	case HeapSort:
		e = &heap{b}
	default:
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", alg)
	}
	b.seed(values)
	logger.Debugf("%s engine created with %d elements", alg, len(values))
	return e, nil
}

// base holds the state shared by every variant: the working Sequence and
// its Recorder. mu keeps Sort and Reseed from interleaving.
type base struct {
	mu     sync.Mutex
	alg    Algorithm
	values Sequence
	rec    *Recorder
}

func (b *base) Algorithm() Algorithm { return b.alg }

func (b *base) Recorder() *Recorder { return b.rec }

func (b *base) Values() Sequence {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.values.Clone()
}

func (b *base) Reseed(values Sequence) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rec.Reset()
	b.seed(values)
	logger.Debugf("%s engine reseeded with %d elements", b.alg, len(values))
}

func (b *base) seed(values Sequence) {
	b.values = values.Clone()
	for i := range b.values {
		b.values[i].Selected = false
	}
	b.rec.Record(b.values)
}

func (b *base) sortInPlace() {
	panic(errors.WithStack(ErrInvalidOperation))
}

func (b *base) run(sortInPlace func()) Sequence {
	b.mu.Lock()
	defer b.mu.Unlock()
	sortInPlace()
	logger.Debugf("%s sorted %d elements in %d snapshots", b.alg, len(b.values), b.rec.Len())
	return b.values.Clone()
}

// highlight records the Sequence with element i selected for one frame.
func (b *base) highlight(i int) {
	b.values[i].Selected = true
	b.rec.Record(b.values)
	b.values[i].Selected = false
}
