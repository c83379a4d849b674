package overlay

import (
	"errors"
	"fmt"
	"math"
)

// GridType selects the cell arrangement of a layer.
type GridType string

const (
	GridSquare    GridType = "square"
	GridHoneycomb GridType = "honeycomb"
)

// ErrUnknownGridType is returned by GetGrid for a grid type it does not know.
var ErrUnknownGridType = errors.New("unknown grid type")

const (
	gridColumns = 11
	gridAspect  = 200.0 / 320.0
	// gridPadding is the share of the width kept free around the grid.
	gridPadding = 5.0 / 100.0
)

// Cell is the center point of one grid slot in overlay coordinates.
type Cell struct {
	CenterX, CenterY float64
}

// GridConfiguration is the cell geometry for one overlay size. It is
// recomputed on every resize and never mutated afterwards.
type GridConfiguration struct {
	GridType       GridType
	Cells          [][]Cell
	ColumnWidth    float64
	RowHeight      float64
	ColumnsPadding float64
	RowsPadding    float64
	Width, Height  float64
}

// Rows returns the number of rows.
func (c GridConfiguration) Rows() int { return len(c.Cells) }

// Columns returns the number of cells in row, or 0 for an invalid row.
func (c GridConfiguration) Columns(row int) int {
	if row < 0 || row >= len(c.Cells) {
		return 0
	}
	return len(c.Cells[row])
}

// Cell returns the cell at (row, column).
func (c GridConfiguration) Cell(row, column int) (Cell, error) {
	if column < 0 || column >= c.Columns(row) {
		return Cell{}, fmt.Errorf("overlay: cell %d,%d: %w", row, column, ErrCellOutOfRange)
	}
	return c.Cells[row][column], nil
}

// Grid computes cell geometry for an overlay size.
type Grid interface {
	Configuration(width, height, scale float64) GridConfiguration
}

// GetGrid returns the grid for t. Unknown types fail immediately.
func GetGrid(t GridType) (Grid, error) {
	switch t {
	case GridSquare:
		return squareGrid{}, nil
	case GridHoneycomb:
		return honeycombGrid{}, nil
	}
	return nil, fmt.Errorf("overlay: grid %q: %w", t, ErrUnknownGridType)
}

// gridRows is the fixed row count derived from the column count.
func gridRows() int {
	return int(math.Floor(gridColumns * gridAspect))
}

type gridMetrics struct {
	cols, rows             int
	padding                float64
	columnWidth, rowHeight float64
}

// metrics splits the padding evenly on both sides and fills the rest with
// equally sized cells. The padding never exceeds a quarter of the smaller
// side, so cells keep a positive size for any scale.
func metrics(width, height, scale float64) gridMetrics {
	if scale <= 0 {
		scale = 1
	}
	pad := width * gridPadding / 2 * scale
	if limit := math.Min(width, height) / 4; pad > limit {
		pad = limit
	}
	m := gridMetrics{cols: gridColumns, rows: gridRows(), padding: pad}
	m.columnWidth = (width - pad*2) / float64(m.cols)
	m.rowHeight = (height - pad*2) / float64(m.rows)
	return m
}

type squareGrid struct{}

func (squareGrid) Configuration(width, height, scale float64) GridConfiguration {
	m := metrics(width, height, scale)
	cells := make([][]Cell, m.rows)
	for row := range cells {
		cells[row] = make([]Cell, m.cols)
		for col := range cells[row] {
			cells[row][col] = Cell{
				CenterX: m.padding + m.columnWidth*(float64(col)+0.5),
				CenterY: m.padding + m.rowHeight*(float64(row)+0.5),
			}
		}
	}
	return GridConfiguration{
		GridType:       GridSquare,
		Cells:          cells,
		ColumnWidth:    m.columnWidth,
		RowHeight:      m.rowHeight,
		ColumnsPadding: m.padding,
		RowsPadding:    m.padding,
		Width:          width,
		Height:         height,
	}
}

// honeycombGrid staggers odd rows by half a column; they hold one cell less.
type honeycombGrid struct{}

func (honeycombGrid) Configuration(width, height, scale float64) GridConfiguration {
	m := metrics(width, height, scale)
	cells := make([][]Cell, m.rows)
	for row := range cells {
		n, offset := m.cols, 0.0
		if row%2 == 1 {
			n, offset = m.cols-1, m.columnWidth/2
		}
		cells[row] = make([]Cell, n)
		for col := range cells[row] {
			cells[row][col] = Cell{
				CenterX: offset + m.padding + m.columnWidth*(float64(col)+0.5),
				CenterY: m.padding + m.rowHeight*(float64(row)+0.5),
			}
		}
	}
	return GridConfiguration{
		GridType:       GridHoneycomb,
		Cells:          cells,
		ColumnWidth:    m.columnWidth,
		RowHeight:      m.rowHeight,
		ColumnsPadding: m.padding,
		RowsPadding:    m.padding,
		Width:          width,
		Height:         height,
	}
}
