package overlay

import "testing"

func TestControlSensors(t *testing.T) {
	cs := NewControlSensors()
	var log []string
	cs.Register(1, 2, Sensor{
		Activate:   func() { log = append(log, "a1") },
		Deactivate: func() { log = append(log, "d1") },
	})
	cs.Register(1, 2, Sensor{
		Activate:   func() { log = append(log, "a2") },
		Deactivate: func() { log = append(log, "d2") },
	})
	cs.Register(2, 1, Sensor{})

	cs.Activate(1, 2)
	cs.Deactivate(1, 2)
	cs.Activate(2, 1) // nil halves
	cs.Activate(9, 9) // missing
	cs.Deactivate(-1, -1)

	if !equalStrings(log, []string{"a2", "d2"}) {
		t.Errorf("log = %v, want [a2 d2]", log)
	}
	if cs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cs.Len())
	}
}

func TestSensorKeyIsColumnFirst(t *testing.T) {
	if got := sensorKey(3, 7); got != "7_3" {
		t.Errorf("sensorKey(3, 7) = %q, want %q", got, "7_3")
	}
}
