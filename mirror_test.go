package overlay

import "testing"

func keyAt(row, col int) LayerControl {
	return KeyControl{ControlBase: ControlBase{Type: ControlKey, Row: row, Column: col}}
}

func columnsOf(controls []LayerControl) []int {
	cols := make([]int, len(controls))
	for i, c := range controls {
		cols[i] = c.Base().Column
	}
	return cols
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func squareConfig(t *testing.T) GridConfiguration {
	t.Helper()
	g, err := GetGrid(GridSquare)
	if err != nil {
		t.Fatal(err)
	}
	return g.Configuration(1100, 655, 1)
}

func TestMirrorColumn(t *testing.T) {
	both := MirroredInfo{LeftStart: 0, LeftEnd: 2, RightStart: 8, RightEnd: 10}
	left := MirroredInfo{LeftStart: 1, LeftEnd: 3, RightStart: -1, RightEnd: -1}
	tests := []struct {
		column int
		info   MirroredInfo
		want   int
		ok     bool
	}{
		{0, both, 10, true},
		{2, both, 8, true},
		{10, both, 0, true},
		{1, left, 9, true},
		{3, left, 7, true},
		{5, newMirroredInfo(), 5, true},
		{12, newMirroredInfo(), 0, false},
		{1, MirroredInfo{LeftStart: 0, LeftEnd: 0, RightStart: 6, RightEnd: 14}, 10, false},
	}
	for _, tt := range tests {
		got, ok := mirrorColumn(tt.column, 11, tt.info)
		if got != tt.want || ok != tt.ok {
			t.Errorf("mirrorColumn(%d, 11, %+v) = %d, %v; want %d, %v", tt.column, tt.info, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMirrorInfo(t *testing.T) {
	grid := squareConfig(t)
	controls := []LayerControl{keyAt(0, 1), keyAt(0, 3), keyAt(0, 5), keyAt(0, 9), keyAt(1, 0), keyAt(0, 40)}
	info := mirrorInfo(controls, grid)

	if got, want := info[0], (MirroredInfo{1, 3, 5, 9}); got != want {
		t.Errorf("row 0 = %+v, want %+v", got, want)
	}
	if got, want := info[1], (MirroredInfo{0, 0, -1, -1}); got != want {
		t.Errorf("row 1 = %+v, want %+v", got, want)
	}
}

func TestPlaceControlsMirroredRoundTrip(t *testing.T) {
	grid := squareConfig(t)
	controls := []LayerControl{keyAt(0, 0), keyAt(0, 1), keyAt(0, 9), keyAt(2, 2), keyAt(3, 7)}

	once := placeControls(controls, grid, true, 1)
	twice := placeControls(once, grid, true, 1)

	if got, want := columnsOf(once), []int{9, 8, 0, 8, 3}; !equalInts(got, want) {
		t.Errorf("mirrored columns = %v, want %v", got, want)
	}
	if got, want := columnsOf(twice), columnsOf(controls); !equalInts(got, want) {
		t.Errorf("mirrored twice = %v, want %v", got, want)
	}
	if controls[0].Base().Column != 0 {
		t.Error("placeControls must not modify its input")
	}
}

func TestPlaceControlsMirroredClampsOutOfRow(t *testing.T) {
	grid := squareConfig(t)
	controls := []LayerControl{keyAt(0, 13), keyAt(1, 2), keyAt(1, -4)}
	got := columnsOf(placeControls(controls, grid, true, 1))
	if want := []int{0, 8, 10}; !equalInts(got, want) {
		t.Errorf("columns = %v, want %v", got, want)
	}
}

func TestPlaceControlsKeepsVariant(t *testing.T) {
	grid := squareConfig(t)
	in := []LayerControl{SwitchControl{ControlBase{ControlSwitch, 1, 1, "s"}, "menu"}}
	out := placeControls(in, grid, true, 1)
	sw, ok := out[0].(SwitchControl)
	if !ok || sw.LayerName != "menu" || sw.Column != 9 {
		t.Errorf("placed = %#v, want SwitchControl at column 9", out[0])
	}
}

func TestPlaceControlsOptionsShift(t *testing.T) {
	grid := squareConfig(t)
	options := OptionsControl{ControlBase{ControlOptions, 0, 5, ""}}
	controls := []LayerControl{keyAt(0, 4), options, keyAt(0, 6), keyAt(0, 10), keyAt(1, 5)}

	shifted := placeControls(controls, grid, false, 0)
	if got, want := columnsOf(shifted), []int{4, 6, 7, 10, 5}; !equalInts(got, want) {
		t.Errorf("columns with no options = %v, want %v", got, want)
	}

	kept := placeControls(controls, grid, false, 3)
	if got, want := columnsOf(kept), columnsOf(controls); !equalInts(got, want) {
		t.Errorf("columns with options = %v, want %v", got, want)
	}

	offCenter := []LayerControl{OptionsControl{ControlBase{ControlOptions, 0, 2, ""}}, keyAt(0, 6)}
	if got := columnsOf(placeControls(offCenter, grid, false, 0)); !equalInts(got, []int{2, 6}) {
		t.Errorf("off-center options columns = %v, want [2 6]", got)
	}
}
