package overlay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrUnknownControl is reported for a control type no factory handles.
	ErrUnknownControl = errors.New("unknown control type")
	// ErrCellOutOfRange is reported for a control placed outside its grid.
	ErrCellOutOfRange = errors.New("cell out of range")
	// ErrInvalidConfig is returned for malformed controls configuration.
	ErrInvalidConfig = errors.New("invalid controls config")
)

// ControlType is the discriminator of a layer control.
type ControlType string

const (
	ControlKey             ControlType = "Key"
	ControlOptions         ControlType = "Options"
	ControlKeyboard        ControlType = "Keyboard"
	ControlSwitch          ControlType = "Switch"
	ControlScreenMove      ControlType = "ScreenMove"
	ControlPointerButton   ControlType = "PointerButton"
	ControlPointerMove     ControlType = "PointerMove"
	ControlPointerReset    ControlType = "PointerReset"
	ControlPointerToggle   ControlType = "PointerToggle"
	ControlNippleActivator ControlType = "NippleActivator"
)

// ControlBase holds the fields every control carries.
type ControlBase struct {
	Type   ControlType
	Row    int
	Column int
	Symbol string
}

// Base returns the common fields.
func (b ControlBase) Base() ControlBase { return b }

// LayerControl is one control of a layer. The set of implementations is
// closed; createControl switches over all of them.
type LayerControl interface {
	Base() ControlBase
	// withPosition returns a copy placed at (row, column).
	withPosition(row, column int) LayerControl
}

// KeyControl sends an emulator key while pressed.
type KeyControl struct {
	ControlBase
	MapTo int
}

// OptionsControl opens the options panel.
type OptionsControl struct{ ControlBase }

// KeyboardControl toggles the software keyboard.
type KeyboardControl struct{ ControlBase }

// SwitchControl loads another layer by title.
type SwitchControl struct {
	ControlBase
	LayerName string
}

// ScreenMoveControl moves the emulated mouse to a screen edge or corner.
type ScreenMoveControl struct {
	ControlBase
	Direction Direction
}

// PointerButtonControl selects or clicks an emulated mouse button.
type PointerButtonControl struct {
	ControlBase
	Button int
	Click  bool
}

// PointerMoveControl jumps the emulated mouse to a normalized position.
type PointerMoveControl struct {
	ControlBase
	X, Y float64
}

// PointerResetControl resynchronizes the emulated mouse.
type PointerResetControl struct{ ControlBase }

// PointerToggleControl enables or disables the base mouse binding.
type PointerToggleControl struct{ ControlBase }

// NippleActivatorControl anchors a virtual joystick on its cell.
type NippleActivatorControl struct{ ControlBase }

// UnknownControl is a control whose type is not recognized. It is kept so
// dispatch can report it.
type UnknownControl struct{ ControlBase }

func (c KeyControl) withPosition(r, col int) LayerControl {
	c.Row, c.Column = r, col
	return c
}

func (c OptionsControl) withPosition(r, col int) LayerControl {
	c.Row, c.Column = r, col
	return c
}

func (c KeyboardControl) withPosition(r, col int) LayerControl {
	c.Row, c.Column = r, col
	return c
}

func (c SwitchControl) withPosition(r, col int) LayerControl {
	c.Row, c.Column = r, col
	return c
}

func (c ScreenMoveControl) withPosition(r, col int) LayerControl {
	c.Row, c.Column = r, col
	return c
}

func (c PointerButtonControl) withPosition(r, col int) LayerControl {
	c.Row, c.Column = r, col
	return c
}

func (c PointerMoveControl) withPosition(r, col int) LayerControl {
	c.Row, c.Column = r, col
	return c
}

func (c PointerResetControl) withPosition(r, col int) LayerControl {
	c.Row, c.Column = r, col
	return c
}

func (c PointerToggleControl) withPosition(r, col int) LayerControl {
	c.Row, c.Column = r, col
	return c
}

func (c NippleActivatorControl) withPosition(r, col int) LayerControl {
	c.Row, c.Column = r, col
	return c
}

func (c UnknownControl) withPosition(r, col int) LayerControl {
	c.Row, c.Column = r, col
	return c
}

// LayerConfig is one selectable set of controls.
type LayerConfig struct {
	Grid     GridType
	Title    string
	Controls []LayerControl
}

// ControlsConfig is a classified controls configuration: either
// *LayersConfig or LegacyLayersConfig.
type ControlsConfig interface {
	controlsConfig()
}

// LayersConfig is the versioned, grid based configuration.
type LayersConfig struct {
	Version int
	Layers  []LayerConfig
}

func (*LayersConfig) controlsConfig() {}

// Layer returns the layer titled name, or the first layer when there is no
// such title.
func (c *LayersConfig) Layer(name string) (LayerConfig, bool) {
	if len(c.Layers) == 0 {
		return LayerConfig{}, false
	}
	for _, l := range c.Layers {
		if l.Title == name {
			return l, true
		}
	}
	return c.Layers[0], true
}

// Titles returns the layer titles in order.
func (c *LayersConfig) Titles() []string {
	titles := make([]string, len(c.Layers))
	for i, l := range c.Layers {
		titles[i] = l.Title
	}
	return titles
}

// --- Wire format ---

type rawControl struct {
	Type      ControlType `json:"type"`
	Row       int         `json:"row"`
	Column    int         `json:"column"`
	Symbol    string      `json:"symbol"`
	MapTo     int         `json:"mapTo"`
	LayerName string      `json:"layerName"`
	Direction Direction   `json:"direction"`
	Button    int         `json:"button"`
	Click     bool        `json:"click"`
	X         float64     `json:"x"`
	Y         float64     `json:"y"`
}

type rawLayer struct {
	Grid     GridType     `json:"grid"`
	Title    string       `json:"title"`
	Controls []rawControl `json:"controls"`
}

type rawLayers struct {
	Version *int       `json:"version"`
	Layers  []rawLayer `json:"layers"`
}

func (r rawControl) control() LayerControl {
	b := ControlBase{Type: r.Type, Row: r.Row, Column: r.Column, Symbol: r.Symbol}
	switch r.Type {
	case ControlKey:
		return KeyControl{ControlBase: b, MapTo: r.MapTo}
	case ControlOptions:
		return OptionsControl{b}
	case ControlKeyboard:
		return KeyboardControl{b}
	case ControlSwitch:
		return SwitchControl{ControlBase: b, LayerName: r.LayerName}
	case ControlScreenMove:
		return ScreenMoveControl{ControlBase: b, Direction: r.Direction}
	case ControlPointerButton:
		return PointerButtonControl{ControlBase: b, Button: r.Button, Click: r.Click}
	case ControlPointerMove:
		return PointerMoveControl{ControlBase: b, X: r.X, Y: r.Y}
	case ControlPointerReset:
		return PointerResetControl{b}
	case ControlPointerToggle:
		return PointerToggleControl{b}
	case ControlNippleActivator:
		return NippleActivatorControl{b}
	}
	return UnknownControl{b}
}

// ParseControlsConfig classifies and decodes a JSON controls configuration.
// A document with a version field is a *LayersConfig, one without is a
// LegacyLayersConfig. Empty input and null yield a nil config.
func ParseControlsConfig(data []byte) (ControlsConfig, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("overlay: parse controls: %w: %v", ErrInvalidConfig, err)
	}
	if _, ok := probe["version"]; ok {
		cfg, err := parseLayers(data)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	legacy, err := parseLegacy(data)
	if err != nil {
		return nil, err
	}
	return legacy, nil
}

// ExtractControlsConfig reads the controls configuration from the "layers"
// field of an emulator configuration document. A document without one
// yields a nil config.
func ExtractControlsConfig(data []byte) (ControlsConfig, error) {
	var doc struct {
		Layers json.RawMessage `json:"layers"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("overlay: parse emulator config: %w: %v", ErrInvalidConfig, err)
	}
	return ParseControlsConfig(doc.Layers)
}

func parseLayers(data []byte) (*LayersConfig, error) {
	var raw rawLayers
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("overlay: parse layers: %w: %v", ErrInvalidConfig, err)
	}
	if raw.Version == nil {
		return nil, fmt.Errorf("overlay: parse layers: %w: version is null", ErrInvalidConfig)
	}
	if len(raw.Layers) == 0 {
		return nil, fmt.Errorf("overlay: parse layers: %w: no layers", ErrInvalidConfig)
	}
	cfg := &LayersConfig{Version: *raw.Version, Layers: make([]LayerConfig, len(raw.Layers))}
	for i, rl := range raw.Layers {
		grid := rl.Grid
		if grid == "" {
			grid = GridSquare
		}
		l := LayerConfig{Grid: grid, Title: rl.Title, Controls: make([]LayerControl, len(rl.Controls))}
		for j, rc := range rl.Controls {
			l.Controls[j] = rc.control()
		}
		cfg.Layers[i] = l
	}
	return cfg, nil
}

// ParseControlsConfigTOML decodes a TOML controls configuration. The
// document is normalized to JSON so both formats share one decoder.
func ParseControlsConfigTOML(data []byte) (ControlsConfig, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("overlay: parse toml controls: %w: %v", ErrInvalidConfig, err)
	}
	if len(doc) == 0 {
		return nil, nil
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("overlay: normalize toml controls: %w", err)
	}
	return ParseControlsConfig(js)
}

// LoadControlsConfig reads a controls configuration file. Files ending in
// .toml are decoded as TOML, everything else as JSON.
func LoadControlsConfig(path string) (ControlsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("overlay: load controls: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseControlsConfigTOML(data)
	}
	return ParseControlsConfig(data)
}
