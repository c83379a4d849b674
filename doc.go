// Package overlay is an on-screen controls layer for DOS emulators built on
// [Ebitengine].
//
// The overlay turns taps, clicks and drags on a window into the key, mouse
// and joystick commands an emulator understands. Controls are described by a
// configuration document, laid out on a grid that follows the window size,
// and sent to the emulator through a [CommandInterface].
//
// # Quick start
//
// Load a configuration, bind it to a [Scene] and run the window:
//
//	cfg, err := overlay.LoadControlsConfig("controls.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene := overlay.NewScene()
//	unbind, err := overlay.BindControls(scene, emu, cfg, overlay.BindOptions{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer unbind()
//	overlay.Run(scene, overlay.RunConfig{Title: "dospad"})
//
// A nil configuration binds the keyboard, the mouse and the options panel
// only.
//
// # Configurations
//
// Two document shapes are understood. A versioned document holds a list of
// titled layers, each naming a [GridType] and a list of controls placed by
// row and column. A version-less document is a map of layer names to
// freely positioned buttons, gesture mappings and a keyboard [Mapper].
// [ParseControlsConfig] tells them apart; [ParseControlsConfigTOML] accepts
// the same shapes written as TOML.
//
// # Grids
//
// [GetGrid] returns the square or honeycomb grid. A grid computes its cell
// centers for a given overlay size, so every resize rebuilds the controls
// of the active layer. Layers may be mirrored for left-handed play.
//
// # Controls
//
// Key, ScreenMove, PointerButton, PointerMove, PointerReset and
// PointerToggle controls register a sensor on their cell. A NippleActivator
// is a joystick: dragging it towards a neighboring cell activates that
// cell's sensor, so a single finger can hold several keys.
//
// # Input
//
// The [Scene] dispatches mouse and touch input to the element tree. A press
// keeps its target until the pointer is released, and an element may
// capture a pointer with [Scene.CapturePointer]. Synthetic input can be
// queued with [Scene.InjectClick] and friends, or replayed from a JSON
// script with [LoadTestScript].
//
// # Logging
//
// Diagnostics go to a [log/slog] logger. Use [SetLogger] to replace it and
// [SetLogLevel] to change its level.
//
// [Ebitengine]: https://ebitengine.org
package overlay
