package overlay

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// BindOptions tunes how a controls configuration is bound.
type BindOptions struct {
	// Layer is the title of the layer to start with. Empty selects the
	// first layer.
	Layer string
	// Mirrored reflects every row for left-handed play.
	Mirrored bool
	// Scale multiplies the grid padding. Zero means 1.
	Scale float64
	// Options lists the options panel entries. Nil selects DefaultOptions;
	// an empty, non-nil slice disables the panel.
	Options []string
	// Language is a BCP 47 tag for panel labels.
	Language string
}

func (o BindOptions) options() []string {
	if o.Options == nil {
		return DefaultOptions
	}
	return o.Options
}

// LayersControl binds one layer of a versioned configuration to a host and
// keeps it laid out across resizes.
type LayersControl struct {
	host   Host
	ci     CommandInterface
	config *LayersConfig
	opts   BindOptions
	mouse  *MouseProps
	loc    *i18n.Localizer

	layer   LayerConfig
	bound   bool
	base    []func()
	resize  CallbackHandle
	handles []controlHandle
	sensors *ControlSensors
	grid    GridConfiguration
}

// NewLayersControl returns an unbound control for config.
func NewLayersControl(host Host, ci CommandInterface, config *LayersConfig, opts BindOptions) *LayersControl {
	return &LayersControl{
		host:    host,
		ci:      ci,
		config:  config,
		opts:    opts,
		mouse:   &MouseProps{},
		loc:     newLocalizer(opts.Language),
		sensors: NewControlSensors(),
	}
}

// Bind attaches the base keyboard and mouse bindings, subscribes to resizes
// and builds the layer titled name. Binding a bound control only switches
// the layer.
func (lc *LayersControl) Bind(name string) {
	if lc.bound {
		lc.SwitchLayer(name)
		return
	}
	lc.bound = true
	lc.layer, _ = lc.config.Layer(name)
	lc.base = []func(){
		bindKeyboard(lc.host, lc.ci, nil),
		bindMouse(lc.host, lc.ci, lc.mouse),
	}
	lc.resize = lc.host.AddOnResize(lc.onResize)
	Logger().Debug("layers bound", "layer", lc.layer.Title)
	lc.onResize(lc.host.Width(), lc.host.Height())
}

// SwitchLayer rebuilds the controls with the layer titled name, or the
// first layer when there is none.
func (lc *LayersControl) SwitchLayer(name string) {
	lc.layer, _ = lc.config.Layer(name)
	Logger().Debug("layer switched", "requested", name, "layer", lc.layer.Title)
	if lc.bound {
		lc.onResize(lc.host.Width(), lc.host.Height())
	}
}

// Unbind removes the resize subscription, the base bindings and every
// control. Calling it again is a no-op.
func (lc *LayersControl) Unbind() {
	if !lc.bound {
		return
	}
	lc.bound = false
	lc.resize.Remove()
	lc.teardownControls()
	for _, fn := range lc.base {
		fn()
	}
	lc.base = nil
	Logger().Debug("layers unbound")
}

func (lc *LayersControl) teardownControls() {
	handles := lc.handles
	lc.handles = nil
	for _, h := range handles {
		h.Teardown()
	}
}

// onResize replaces every control with ones built for the new size.
func (lc *LayersControl) onResize(width, height float64) {
	lc.teardownControls()
	lc.sensors = NewControlSensors()

	grid, err := GetGrid(lc.layer.Grid)
	if err != nil {
		Logger().Error("layer not built", "layer", lc.layer.Title, "err", err)
		return
	}
	lc.grid = grid.Configuration(width, height, lc.opts.Scale)

	ctx := &layerContext{
		host:        lc.host,
		mouse:       lc.mouse,
		options:     lc.opts.options(),
		layers:      lc.config.Titles(),
		layer:       lc.layer.Title,
		switchLayer: lc.SwitchLayer,
		localizer:   lc.loc,
	}
	placed := placeControls(lc.layer.Controls, lc.grid, lc.opts.Mirrored, len(ctx.options))
	for _, c := range placed {
		h, err := createControl(c, ctx, lc.grid, lc.sensors, lc.ci)
		if err != nil {
			logControlError(c, err)
			continue
		}
		lc.handles = append(lc.handles, h)
	}
}

// Layer returns the title of the active layer.
func (lc *LayersControl) Layer() string { return lc.layer.Title }

// Bound reports whether the control is bound.
func (lc *LayersControl) Bound() bool { return lc.bound }

// Mouse returns the pointer state shared with the base mouse binding.
func (lc *LayersControl) Mouse() *MouseProps { return lc.mouse }

// Sensors returns the sensor registry of the current build.
func (lc *LayersControl) Sensors() *ControlSensors { return lc.sensors }

// Grid returns the grid of the current build.
func (lc *LayersControl) Grid() GridConfiguration { return lc.grid }

// BindControls binds config to host and returns the unbind function.
// Versioned configs get a grid layer, legacy configs the legacy control and
// a nil config the keyboard, mouse and options panel only.
func BindControls(host Host, ci CommandInterface, config ControlsConfig, opts BindOptions) (func(), error) {
	switch cfg := config.(type) {
	case nil:
		return bindNullControls(host, ci, opts), nil
	case *LayersConfig:
		if cfg == nil || len(cfg.Layers) == 0 {
			return nil, fmt.Errorf("overlay: bind controls: %w: no layers", ErrInvalidConfig)
		}
		lc := NewLayersControl(host, ci, cfg, opts)
		lc.Bind(opts.Layer)
		return lc.Unbind, nil
	case LegacyLayersConfig:
		lc := NewLegacyLayersControl(host, ci, cfg, opts)
		lc.Bind()
		return lc.Unbind, nil
	}
	return nil, fmt.Errorf("overlay: bind controls %T: %w", config, ErrInvalidConfig)
}

// bindNullControls is used when there is no controls configuration.
func bindNullControls(host Host, ci CommandInterface, opts BindOptions) func() {
	mouse := &MouseProps{}
	unbindKeyboard := bindKeyboard(host, ci, nil)
	unbindMouse := bindMouse(host, ci, mouse)
	ctx := &layerContext{
		host:        host,
		mouse:       mouse,
		options:     opts.options(),
		layers:      []string{"default"},
		layer:       "default",
		switchLayer: func(string) {},
		localizer:   newLocalizer(opts.Language),
	}
	unbindOptions := bindCornerOptions(ctx)
	return once(func() {
		unbindKeyboard()
		unbindMouse()
		unbindOptions()
	})
}

// cornerSize is the button size of the panel pinned to the top-right
// corner.
const cornerSize = 54

// bindCornerOptions pins an options panel to the top-right corner of the
// overlay and keeps it there across resizes.
func bindCornerOptions(ctx *layerContext) func() {
	if len(ctx.options) == 0 && len(ctx.layers) <= 1 {
		return func() {}
	}
	host := ctx.host
	anchor := func(width float64) Vec2 {
		gap := float64(cornerSize) / 4
		return Vec2{width - gap - cornerSize/2, gap + cornerSize/2}
	}
	p := newOptionsPanel(ctx, anchor(host.Width()), cornerSize)
	sub := host.AddOnResize(func(width, _ float64) {
		p.layout(anchor(width))
	})
	return once(func() {
		sub.Remove()
		p.dispose()
	})
}
