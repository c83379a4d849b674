package overlay

import "math"

// Direction is a compass direction. The zero value is the centered state.
type Direction string

const (
	DirectionNone      Direction = ""
	DirectionUp        Direction = "up"
	DirectionDown      Direction = "down"
	DirectionLeft      Direction = "left"
	DirectionRight     Direction = "right"
	DirectionUpLeft    Direction = "up-left"
	DirectionUpRight   Direction = "up-right"
	DirectionDownLeft  Direction = "down-left"
	DirectionDownRight Direction = "down-right"
)

// octants lists the directions by 45 degree bin, counter-clockwise from
// the positive x axis.
var octants = [8]Direction{
	DirectionRight,
	DirectionUpRight,
	DirectionUp,
	DirectionUpLeft,
	DirectionLeft,
	DirectionDownLeft,
	DirectionDown,
	DirectionDownRight,
}

// Offset returns the (column, row) step of the direction. Rows grow
// downward.
func (d Direction) Offset() (dc, dr int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	case DirectionUpLeft:
		return -1, -1
	case DirectionUpRight:
		return 1, -1
	case DirectionDownLeft:
		return -1, 1
	case DirectionDownRight:
		return 1, 1
	}
	return 0, 0
}

// Valid reports whether d is one of the eight compass directions.
func (d Direction) Valid() bool {
	dc, dr := d.Offset()
	return dc != 0 || dr != 0
}

// ResolveDirection quantizes a polar reading. Angles are in degrees,
// counter-clockwise with 0 pointing right. Distances below threshold are
// centered. Bin boundaries sit at 22.5 + k*45 degrees and belong to the bin
// that starts there.
func ResolveDirection(angle, distance, threshold float64) Direction {
	if distance < threshold || math.IsNaN(angle) {
		return DirectionNone
	}
	a := math.Mod(angle+22.5, 360)
	if a < 0 {
		a += 360
	}
	return octants[int(a/45)%8]
}

// polar converts a screen offset (y down) to a nipple angle in [0, 360)
// and a distance.
func polar(dx, dy float64) (angle, distance float64) {
	angle = math.Atan2(-dy, dx) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	return angle, math.Hypot(dx, dy)
}

// Joystick turns polar readings around an anchor cell into sensor
// activations of the neighboring cells.
type Joystick struct {
	sensors     *ControlSensors
	row, column int
	threshold   float64

	activeRow, activeColumn int
	direction               Direction
	destroyed               bool
}

// NewJoystick returns a joystick anchored at (row, column). Readings closer
// than threshold to the anchor are centered.
func NewJoystick(sensors *ControlSensors, row, column int, threshold float64) *Joystick {
	return &Joystick{
		sensors:      sensors,
		row:          row,
		column:       column,
		threshold:    threshold,
		activeRow:    -1,
		activeColumn: -1,
	}
}

// Move feeds one reading. Sensors only change when the target cell does.
func (j *Joystick) Move(angle, distance float64) {
	if j.destroyed {
		return
	}
	d := ResolveDirection(angle, distance, j.threshold)
	row, column := -1, -1
	if d != DirectionNone {
		dc, dr := d.Offset()
		row, column = j.row+dr, j.column+dc
	}
	j.direction = d
	if row == j.activeRow && column == j.activeColumn {
		return
	}
	j.sensors.Deactivate(j.activeRow, j.activeColumn)
	j.activeRow, j.activeColumn = row, column
	j.sensors.Activate(row, column)
}

// End finishes a gesture, deactivating the active cell.
func (j *Joystick) End() {
	j.sensors.Deactivate(j.activeRow, j.activeColumn)
	j.activeRow, j.activeColumn = -1, -1
	j.direction = DirectionNone
}

// Destroy ends any gesture in flight and ignores later readings. It is
// safe to call more than once.
func (j *Joystick) Destroy() {
	if j.destroyed {
		return
	}
	j.End()
	j.destroyed = true
}

// Active returns the active cell, or (-1, -1).
func (j *Joystick) Active() (row, column int) {
	return j.activeRow, j.activeColumn
}

// Direction returns the last resolved direction.
func (j *Joystick) Direction() Direction { return j.direction }
