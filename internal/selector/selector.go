// Package selector keeps a highlighted row inside a fixed-height window over
// an ordered list.
package selector

// Selector tracks which item is highlighted and which slice of the list is
// visible. The highlighted item is Index() = Offset() + Row().
//
// Movement first uses up the room between the highlighted row and the edge of
// the window it is moving towards; only then does the window itself scroll.
type Selector[T any] struct {
	items  []T
	height int
	offset int
	row    int
}

// New binds a selector to items with a window of height rows.
// A height below one is treated as one.
func New[T any](items []T, height int) *Selector[T] {
	if height < 1 {
		height = 1
	}
	return &Selector[T]{items: items, height: height}
}

// Len returns the number of items.
func (s *Selector[T]) Len() int { return len(s.items) }

// Height returns the window height.
func (s *Selector[T]) Height() int { return s.height }

// Offset returns the index of the first visible item.
func (s *Selector[T]) Offset() int { return s.offset }

// Row returns the highlighted row within the window.
func (s *Selector[T]) Row() int { return s.row }

// Index returns the absolute index of the highlighted item.
func (s *Selector[T]) Index() int { return s.offset + s.row }

// Selected returns the highlighted item, or false when there are no items.
func (s *Selector[T]) Selected() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[s.Index()], true
}

// Visible returns the items inside the window. It is shorter than Height()
// when the list ends before the window does.
func (s *Selector[T]) Visible() []T {
	end := s.offset + s.height
	if end > len(s.items) {
		end = len(s.items)
	}
	return s.items[s.offset:end]
}

// MoveBy moves the highlight by delta items, clamped to the list.
func (s *Selector[T]) MoveBy(delta int) (T, bool) {
	n := len(s.items)
	if n == 0 {
		return s.Selected()
	}

	current := s.Index()
	target := clamp(current+delta, 0, n-1)

	switch {
	case target < current:
		s.row -= min(current-target, s.row)
	case target > current:
		s.row += min(target-current, s.height-1-s.row)
	}
	s.offset = target - s.row

	return s.Selected()
}

// MoveUp moves the highlight one item up.
func (s *Selector[T]) MoveUp() (T, bool) { return s.MoveBy(-1) }

// MoveDown moves the highlight one item down.
func (s *Selector[T]) MoveDown() (T, bool) { return s.MoveBy(1) }

// PageUp pins the highlight to the top row, then moves a window height up.
func (s *Selector[T]) PageUp() (T, bool) {
	if len(s.items) == 0 {
		return s.Selected()
	}
	s.row = 0
	return s.MoveBy(-s.height)
}

// PageDown pins the highlight to the bottom row, then moves a window height
// down.
func (s *Selector[T]) PageDown() (T, bool) {
	if len(s.items) == 0 {
		return s.Selected()
	}
	s.row = s.height - 1
	return s.MoveBy(s.height)
}

// GoToStart highlights the first item.
func (s *Selector[T]) GoToStart() (T, bool) { return s.MoveBy(-len(s.items)) }

// GoToEnd highlights the last item.
func (s *Selector[T]) GoToEnd() (T, bool) { return s.MoveBy(len(s.items)) }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
