package overlay

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// legacyUnit is the size of one position unit and of a legacy button.
const legacyUnit = 54

// LegacyPosition places a legacy button in legacyUnit steps from the
// overlay edges. Unset edges are nil.
type LegacyPosition struct {
	Left   *float64 `json:"left,omitempty"`
	Top    *float64 `json:"top,omitempty"`
	Right  *float64 `json:"right,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
}

// LegacyButton is a freely positioned key button.
type LegacyButton struct {
	// Action is "hold" (the default) to hold the key while pressed, or
	// "click" to tap it on release.
	Action   string         `json:"action,omitempty"`
	MapTo    int            `json:"mapTo"`
	Symbol   string         `json:"symbol,omitempty"`
	Position LegacyPosition `json:"position"`
}

// EventMapping maps a gesture event such as "dir:up" or "tap" to a key.
type EventMapping struct {
	JoystickID int    `json:"joystickId"`
	Event      string `json:"event"`
	MapTo      int    `json:"mapTo"`
}

// LegacyLayerConfig is one layer of the version-less configuration.
type LegacyLayerConfig struct {
	Name     string         `json:"name"`
	Buttons  []LegacyButton `json:"buttons"`
	Gestures []EventMapping `json:"gestures"`
	Mapper   Mapper         `json:"mapper"`
}

// LegacyLayersConfig is the version-less configuration, keyed by layer
// name.
type LegacyLayersConfig map[string]LegacyLayerConfig

func (LegacyLayersConfig) controlsConfig() {}

// Names returns the layer names, "default" first and the rest sorted.
func (c LegacyLayersConfig) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if (names[i] == "default") != (names[j] == "default") {
			return names[i] == "default"
		}
		return names[i] < names[j]
	})
	return names
}

func parseLegacy(data []byte) (LegacyLayersConfig, error) {
	var cfg LegacyLayersConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("overlay: parse legacy layers: %w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// LegacyLayersControl binds a version-less configuration: per layer a
// keymap, optional gestures and freely positioned buttons.
type LegacyLayersControl struct {
	host    Host
	ci      CommandInterface
	config  LegacyLayersConfig
	opts    BindOptions
	current string
	layer   []func()
	options func()
	bound   bool
}

// NewLegacyLayersControl returns an unbound legacy control.
func NewLegacyLayersControl(host Host, ci CommandInterface, config LegacyLayersConfig, opts BindOptions) *LegacyLayersControl {
	return &LegacyLayersControl{host: host, ci: ci, config: config, opts: opts}
}

// Bind adds the options panel and starts with the "default" layer.
func (lc *LegacyLayersControl) Bind() {
	if lc.bound {
		return
	}
	lc.bound = true
	ctx := &layerContext{
		host:        lc.host,
		mouse:       &MouseProps{},
		options:     lc.opts.options(),
		layers:      lc.config.Names(),
		layer:       "default",
		switchLayer: lc.ChangeLayer,
		localizer:   newLocalizer(lc.opts.Language),
	}
	lc.options = bindCornerOptions(ctx)
	lc.ChangeLayer("default")
}

// ChangeLayer unbinds the current layer and binds the layer called name.
// An unknown name leaves only the options panel bound.
func (lc *LegacyLayersControl) ChangeLayer(name string) {
	lc.unbindLayer()
	lc.current = name
	layer, ok := lc.config[name]
	if !ok || !lc.bound {
		return
	}
	mouse := &MouseProps{}
	lc.layer = append(lc.layer, bindKeyboard(lc.host, lc.ci, layer.Mapper))
	if len(layer.Gestures) > 0 {
		lc.layer = append(lc.layer, bindGestures(lc.host, lc.ci, layer.Gestures))
	} else {
		lc.layer = append(lc.layer, bindMouse(lc.host, lc.ci, mouse))
	}
	if len(layer.Buttons) > 0 {
		lc.layer = append(lc.layer, bindLegacyButtons(lc.host, lc.ci, layer.Buttons))
	}
}

// Layer returns the current layer name.
func (lc *LegacyLayersControl) Layer() string { return lc.current }

func (lc *LegacyLayersControl) unbindLayer() {
	fns := lc.layer
	lc.layer = nil
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

// Unbind removes the layer bindings and the options panel. Calling it
// again is a no-op.
func (lc *LegacyLayersControl) Unbind() {
	if !lc.bound {
		return
	}
	lc.unbindLayer()
	lc.options()
	lc.bound = false
}

// legacyButtonCenter resolves a position against an overlay of the given
// size. Missing horizontal or vertical edges default to left and top.
func legacyButtonCenter(p LegacyPosition, width, height float64) Vec2 {
	x, y := 0.0, 0.0
	switch {
	case p.Left != nil:
		x = *p.Left * legacyUnit
	case p.Right != nil:
		x = width - *p.Right*legacyUnit - legacyUnit
	}
	switch {
	case p.Top != nil:
		y = *p.Top * legacyUnit
	case p.Bottom != nil:
		y = height - *p.Bottom*legacyUnit - legacyUnit
	}
	return Vec2{x + legacyUnit/2, y + legacyUnit/2}
}

// bindLegacyButtons adds one button per entry and keeps them anchored to
// their edges across resizes.
func bindLegacyButtons(host Host, ci CommandInterface, buttons []LegacyButton) func() {
	btns := make([]*button, len(buttons))
	for i, lb := range buttons {
		code := lb.MapTo
		var h buttonHandlers
		if lb.Action == "click" {
			h.onClick = func() {
				ci.SendKeyEvent(code, true)
				ci.SendKeyEvent(code, false)
			}
		} else {
			h.onDown = func() { ci.SendKeyEvent(code, true) }
			h.onUp = func() { ci.SendKeyEvent(code, false) }
		}
		symbol := lb.Symbol
		if symbol == "" {
			symbol = fmt.Sprint(code)
		}
		btns[i] = createButton(host, symbol, h, legacyUnit)
		host.Overlay().AddChild(btns[i].node)
	}
	layout := func(width, height float64) {
		for i, b := range btns {
			c := legacyButtonCenter(buttons[i].Position, width, height)
			b.place(c.X, c.Y)
		}
	}
	layout(host.Width(), host.Height())
	sub := host.AddOnResize(layout)
	return once(func() {
		sub.Remove()
		for _, b := range btns {
			b.dispose()
		}
	})
}

// gestureKeys resolves the keys held for a direction. Diagonals without
// their own mapping hold both axis keys.
func gestureKeys(mapping map[string]int, d Direction) []int {
	if d == DirectionNone {
		return nil
	}
	if code, ok := mapping["dir:"+string(d)]; ok {
		return []int{code}
	}
	var keys []int
	for _, axis := range strings.Split(string(d), "-") {
		if code, ok := mapping["dir:"+axis]; ok {
			keys = append(keys, code)
		}
	}
	return keys
}

// bindGestures turns drags on the overlay into held direction keys and
// short presses into the "tap" key.
func bindGestures(host Host, ci CommandInterface, events []EventMapping) func() {
	mapping := make(map[string]int, len(events))
	for _, e := range events {
		mapping[e.Event] = e.MapTo
	}
	el := host.Overlay()
	threshold := float64(legacyUnit) / 4

	pointer := -1
	var origin Vec2
	var held []int
	direction := DirectionNone
	moved := false

	setDirection := func(d Direction) {
		if d == direction {
			return
		}
		for _, code := range held {
			ci.SendKeyEvent(code, false)
		}
		direction = d
		held = gestureKeys(mapping, d)
		for _, code := range held {
			ci.SendKeyEvent(code, true)
		}
	}
	onStart := func(ctx PointerContext) {
		if ctx.Node != el || pointer >= 0 {
			return
		}
		pointer = ctx.PointerID
		origin = Vec2{ctx.GlobalX, ctx.GlobalY}
		moved = false
	}
	onChange := func(ctx PointerContext) {
		if ctx.PointerID != pointer {
			return
		}
		angle, dist := polar(ctx.GlobalX-origin.X, ctx.GlobalY-origin.Y)
		d := ResolveDirection(angle, dist, threshold)
		if d != DirectionNone {
			moved = true
		}
		setDirection(d)
	}
	finish := func() {
		if pointer < 0 {
			return
		}
		pointer = -1
		setDirection(DirectionNone)
	}
	onEnd := func(ctx PointerContext) {
		if ctx.PointerID != pointer {
			return
		}
		finish()
		if code, ok := mapping["tap"]; ok && !moved {
			ci.SendKeyEvent(code, true)
			ci.SendKeyEvent(code, false)
		}
	}

	groups := host.Groups()
	var handles []CallbackHandle
	for _, evt := range groups.Starters {
		handles = append(handles, host.On(evt, onStart))
	}
	for _, evt := range groups.Changers {
		handles = append(handles, host.On(evt, onChange))
	}
	for _, evt := range groups.Enders {
		handles = append(handles, host.On(evt, onEnd))
	}
	return once(func() {
		for _, h := range handles {
			h.Remove()
		}
		finish()
	})
}
