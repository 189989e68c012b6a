package sort

// insertion places the minimum of the unsorted tail at each position in
// turn. One frame highlights the position before each pass, plus a final
// frame once every pass is done.
type insertion struct {
	*base
}

func (e *insertion) Sort() Sequence { return e.run(e.sortInPlace) }

func (e *insertion) sortInPlace() {
	v := e.values
	for i := 0; i < len(v)-1; i++ {
		place := i
		e.highlight(i)
		for j := i + 1; j < len(v); j++ {
			if Compare(v[j], v[place]) < 0 {
				place = j
			}
		}
		v.Swap(i, place)
	}
	e.rec.Record(v)
}
