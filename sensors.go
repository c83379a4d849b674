package overlay

import "strconv"

// Sensor is an activate/deactivate pair registered at a grid cell. It lets a
// joystick trigger the same down/up behavior as a direct press.
type Sensor struct {
	Activate   func()
	Deactivate func()
}

// ControlSensors maps grid cells to sensors. A fresh registry is built on
// every rebind.
type ControlSensors struct {
	sensors map[string]Sensor
}

// NewControlSensors returns an empty registry.
func NewControlSensors() *ControlSensors {
	return &ControlSensors{sensors: make(map[string]Sensor)}
}

func sensorKey(row, column int) string {
	return strconv.Itoa(column) + "_" + strconv.Itoa(row)
}

// Register stores s at (row, column), replacing any sensor already there.
func (cs *ControlSensors) Register(row, column int, s Sensor) {
	cs.sensors[sensorKey(row, column)] = s
}

// Activate runs the activate half of the sensor at (row, column). Cells
// without a sensor are ignored.
func (cs *ControlSensors) Activate(row, column int) {
	if s, ok := cs.sensors[sensorKey(row, column)]; ok && s.Activate != nil {
		s.Activate()
	}
}

// Deactivate runs the deactivate half of the sensor at (row, column). Cells
// without a sensor are ignored.
func (cs *ControlSensors) Deactivate(row, column int) {
	if s, ok := cs.sensors[sensorKey(row, column)]; ok && s.Deactivate != nil {
		s.Deactivate()
	}
}

// Len returns the number of registered sensors.
func (cs *ControlSensors) Len() int { return len(cs.sensors) }
