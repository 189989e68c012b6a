package sort

// Element is a value with a transient highlight flag. Elements are ordered
// by Value only.
type Element struct {
	Value    float64 `json:"value"`
	Selected bool    `json:"selected"`
}

// Compare returns a.Value - b.Value.
func Compare(a, b Element) float64 { return a.Value - b.Value }

// Sequence is the working list an engine reorders in place.
type Sequence []Element

// FromValues wraps plain numbers into an unselected Sequence.
func FromValues(values []float64) Sequence {
	seq := make(Sequence, len(values))
	for i, v := range values {
		seq[i] = Element{Value: v}
	}
	return seq
}

// Values returns the element values in order.
func (s Sequence) Values() []float64 {
	values := make([]float64, len(s))
	for i, e := range s {
		values[i] = e.Value
	}
	return values
}

// Clone returns a copy that shares no storage with s.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return Sequence{}
	}
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

func (s Sequence) Len() int { return len(s) }

func (s Sequence) Less(i, j int) bool { return Compare(s[i], s[j]) < 0 }

func (s Sequence) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
