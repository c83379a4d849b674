package overlay

// bindKeyboard forwards host key events to the emulator through mapper.
// Software keyboard taps are sent as a press followed by a release.
func bindKeyboard(host Host, ci CommandInterface, mapper Mapper) func() {
	handles := []CallbackHandle{
		host.OnKey(KeyDown, func(code int) {
			ci.SendKeyEvent(mapper.Map(code), true)
		}),
		host.OnKey(KeyUp, func(code int) {
			ci.SendKeyEvent(mapper.Map(code), false)
		}),
		host.OnKey(KeyPress, func(code int) {
			code = mapper.Map(code)
			ci.SendKeyEvent(code, true)
			ci.SendKeyEvent(code, false)
		}),
	}
	return func() {
		for _, h := range handles {
			h.Remove()
		}
	}
}
