package sort

// heap is a max-heap sort. The heap is rooted at 0 with 1 as its only
// child; any other node k has children 2k and 2k+1.
type heap struct {
	*base
}

func (e *heap) Sort() Sequence { return e.run(e.sortInPlace) }

func (e *heap) sortInPlace() {
	n := len(e.values)
	for left := (n + 1) / 2; left >= 0; left-- {
		e.siftDown(left, n-1)
	}
	for right := n - 1; right >= 0; {
		e.values.Swap(0, right)
		right--
		e.siftDown(0, right)
	}
}

// siftDown moves the element at left down the window [left, right]. Every
// move records a frame with the promoted child highlighted, and the final
// placement records one more.
func (e *heap) siftDown(left, right int) {
	v := e.values
	if left >= len(v) {
		return
	}
	x := v[left]
	i := left
	for {
		j := 2 * i
		if j > right {
			break
		}
		if j < right && Compare(v[j+1], v[j]) >= 0 {
			j++
		}
		if Compare(x, v[j]) >= 0 {
			break
		}
		v.Swap(i, j)
		e.highlight(i)
		i = j
	}
	v[i] = x
	e.highlight(i)
}
