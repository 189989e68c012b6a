package sort

// quick is Hoare partitioning around the leftmost element of each window.
type quick struct {
	*base
}

func (e *quick) Sort() Sequence { return e.run(e.sortInPlace) }

func (e *quick) sortInPlace() {
	if len(e.values) > 1 {
		e.partition(0, len(e.values)-1)
	}
}

// partition requires left <= right.
func (e *quick) partition(left, right int) {
	v := e.values
	x := v[left]
	i, j := left, right
	for i <= j {
		for Compare(v[i], x) < 0 {
			i++
			e.highlight(i)
		}
		for Compare(v[j], x) > 0 {
			j--
		}
		if i <= j {
			v.Swap(i, j)
			i++
			j--
			e.rec.Record(v)
		}
	}
	if left < j {
		e.partition(left, j)
	}
	if i < right {
		e.partition(i, right)
	}
}
