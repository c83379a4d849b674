package overlay

import "github.com/hajimehoshi/ebiten/v2"

// Emulator key codes. The numbering follows the GLFW key table the emulator
// command interface expects.
const (
	KBDNone = 0

	KBDSpace        = 32
	KBDQuote        = 39
	KBDComma        = 44
	KBDMinus        = 45
	KBDPeriod       = 46
	KBDSlash        = 47
	KBD0            = 48
	KBD9            = 57
	KBDSemicolon    = 59
	KBDEqual        = 61
	KBDA            = 65
	KBDZ            = 90
	KBDLeftBracket  = 91
	KBDBackslash    = 92
	KBDRightBracket = 93
	KBDBackquote    = 96

	KBDEsc         = 256
	KBDEnter       = 257
	KBDTab         = 258
	KBDBackspace   = 259
	KBDInsert      = 260
	KBDDelete      = 261
	KBDRight       = 262
	KBDLeft        = 263
	KBDDown        = 264
	KBDUp          = 265
	KBDPageUp      = 266
	KBDPageDown    = 267
	KBDHome        = 268
	KBDEnd         = 269
	KBDCapsLock    = 280
	KBDScrollLock  = 281
	KBDNumLock     = 282
	KBDPrintScreen = 283
	KBDPause       = 284
	KBDF1          = 290
	KBDF12         = 301

	KBDKP0        = 320
	KBDKPPeriod   = 330
	KBDKPDivide   = 331
	KBDKPMultiply = 332
	KBDKPMinus    = 333
	KBDKPPlus     = 334
	KBDKPEnter    = 335
	KBDKPEqual    = 336

	KBDLeftShift  = 340
	KBDLeftCtrl   = 341
	KBDLeftAlt    = 342
	KBDLeftSuper  = 343
	KBDRightShift = 344
	KBDRightCtrl  = 345
	KBDRightAlt   = 346
	KBDRightSuper = 347
)

var keyTable = map[ebiten.Key]int{
	ebiten.KeySpace:        KBDSpace,
	ebiten.KeyQuote:        KBDQuote,
	ebiten.KeyComma:        KBDComma,
	ebiten.KeyMinus:        KBDMinus,
	ebiten.KeyPeriod:       KBDPeriod,
	ebiten.KeySlash:        KBDSlash,
	ebiten.KeySemicolon:    KBDSemicolon,
	ebiten.KeyEqual:        KBDEqual,
	ebiten.KeyBracketLeft:  KBDLeftBracket,
	ebiten.KeyBackslash:    KBDBackslash,
	ebiten.KeyBracketRight: KBDRightBracket,
	ebiten.KeyBackquote:    KBDBackquote,

	ebiten.KeyEscape:      KBDEsc,
	ebiten.KeyEnter:       KBDEnter,
	ebiten.KeyTab:         KBDTab,
	ebiten.KeyBackspace:   KBDBackspace,
	ebiten.KeyInsert:      KBDInsert,
	ebiten.KeyDelete:      KBDDelete,
	ebiten.KeyArrowRight:  KBDRight,
	ebiten.KeyArrowLeft:   KBDLeft,
	ebiten.KeyArrowDown:   KBDDown,
	ebiten.KeyArrowUp:     KBDUp,
	ebiten.KeyPageUp:      KBDPageUp,
	ebiten.KeyPageDown:    KBDPageDown,
	ebiten.KeyHome:        KBDHome,
	ebiten.KeyEnd:         KBDEnd,
	ebiten.KeyCapsLock:    KBDCapsLock,
	ebiten.KeyScrollLock:  KBDScrollLock,
	ebiten.KeyNumLock:     KBDNumLock,
	ebiten.KeyPrintScreen: KBDPrintScreen,
	ebiten.KeyPause:       KBDPause,

	ebiten.KeyNumpadDecimal:  KBDKPPeriod,
	ebiten.KeyNumpadDivide:   KBDKPDivide,
	ebiten.KeyNumpadMultiply: KBDKPMultiply,
	ebiten.KeyNumpadSubtract: KBDKPMinus,
	ebiten.KeyNumpadAdd:      KBDKPPlus,
	ebiten.KeyNumpadEnter:    KBDKPEnter,
	ebiten.KeyNumpadEqual:    KBDKPEqual,

	ebiten.KeyShiftLeft:    KBDLeftShift,
	ebiten.KeyControlLeft:  KBDLeftCtrl,
	ebiten.KeyAltLeft:      KBDLeftAlt,
	ebiten.KeyMetaLeft:     KBDLeftSuper,
	ebiten.KeyShiftRight:   KBDRightShift,
	ebiten.KeyControlRight: KBDRightCtrl,
	ebiten.KeyAltRight:     KBDRightAlt,
	ebiten.KeyMetaRight:    KBDRightSuper,
}

var (
	letterKeys = []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	digitKeys = []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	numpadKeys = []ebiten.Key{
		ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3,
		ebiten.KeyNumpad4, ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7,
		ebiten.KeyNumpad8, ebiten.KeyNumpad9,
	}
	functionKeys = []ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
		ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	}
)

func init() {
	for i, k := range letterKeys {
		keyTable[k] = KBDA + i
	}
	for i, k := range digitKeys {
		keyTable[k] = KBD0 + i
	}
	for i, k := range numpadKeys {
		keyTable[k] = KBDKP0 + i
	}
	for i, k := range functionKeys {
		keyTable[k] = KBDF1 + i
	}
}

// KeyCode translates an Ebitengine key to an emulator key code. Unmapped
// keys translate to KBDNone.
func KeyCode(k ebiten.Key) int {
	return keyTable[k]
}

// Mapper remaps emulator key codes before they reach the emulator.
type Mapper map[int]int

// Map returns the remapped code, or code itself when no mapping exists.
func (m Mapper) Map(code int) int {
	if to, ok := m[code]; ok {
		return to
	}
	return code
}
