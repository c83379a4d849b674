package overlay

// MirroredInfo holds the column extents of one row on each side of its
// middle column. Empty halves are -1.
type MirroredInfo struct {
	LeftStart, LeftEnd   int
	RightStart, RightEnd int
}

func newMirroredInfo() MirroredInfo {
	return MirroredInfo{-1, -1, -1, -1}
}

func (m MirroredInfo) hasLeft() bool  { return m.LeftStart != -1 }
func (m MirroredInfo) hasRight() bool { return m.RightStart != -1 }

func extend(start, end *int, column int) {
	if *start == -1 || column < *start {
		*start = column
	}
	if *end == -1 || column > *end {
		*end = column
	}
}

// mirrorInfo collects the extents of every row that holds a control. It
// must run over the whole layer before any column is reflected.
func mirrorInfo(controls []LayerControl, grid GridConfiguration) map[int]MirroredInfo {
	info := make(map[int]MirroredInfo)
	for _, c := range controls {
		b := c.Base()
		columns := grid.Columns(b.Row)
		if b.Column < 0 || b.Column >= columns {
			continue
		}
		m, ok := info[b.Row]
		if !ok {
			m = newMirroredInfo()
		}
		if b.Column < columns/2 {
			extend(&m.LeftStart, &m.LeftEnd, b.Column)
		} else {
			extend(&m.RightStart, &m.RightEnd, b.Column)
		}
		info[b.Row] = m
	}
	return info
}

// mirrorColumn reflects column within a row of columns cells. With both
// halves in use the row's extents swap ends; otherwise the column is
// reflected about the row center. Results outside the row are clamped.
func mirrorColumn(column, columns int, m MirroredInfo) (int, bool) {
	var mirrored int
	if m.hasLeft() && m.hasRight() {
		mirrored = m.LeftStart + m.RightEnd - column
	} else {
		mirrored = columns - 1 - column
	}
	switch {
	case mirrored < 0:
		return 0, false
	case mirrored >= columns:
		return columns - 1, false
	}
	return mirrored, true
}

// placeControls returns the layer's controls at their final cells: mirrored
// when requested, then shifted right of a suppressed options slot.
func placeControls(controls []LayerControl, grid GridConfiguration, mirrored bool, options int) []LayerControl {
	placed := make([]LayerControl, len(controls))
	copy(placed, controls)

	if mirrored {
		info := mirrorInfo(controls, grid)
		for i, c := range placed {
			b := c.Base()
			columns := grid.Columns(b.Row)
			if columns == 0 {
				continue
			}
			m, ok := info[b.Row]
			if !ok {
				m = newMirroredInfo()
			}
			column, ok := mirrorColumn(b.Column, columns, m)
			if !ok {
				Logger().Error("mirrored column out of range",
					"type", b.Type, "row", b.Row, "column", b.Column, "clamped", column)
			}
			placed[i] = c.withPosition(b.Row, column)
		}
	}

	if options > 0 {
		return placed
	}
	for _, c := range placed {
		b := c.Base()
		if _, ok := c.(OptionsControl); !ok {
			continue
		}
		middle := grid.Columns(b.Row) / 2
		if b.Column != middle {
			continue
		}
		last := grid.Columns(b.Row) - 1
		for i, o := range placed {
			ob := o.Base()
			if ob.Row != b.Row || ob.Column < middle {
				continue
			}
			placed[i] = o.withPosition(ob.Row, min(ob.Column+1, last))
		}
		break
	}
	return placed
}
