// Package keycodes translates OpenHarmony multimodal-input key codes into
// the portable physical key, logical key and location types. The tables are
// static and total: unmapped codes fall back to the unidentified key and the
// standard location, never an error.
package keycodes

import (
	"github.com/richerfu/winit/ability"
	"github.com/richerfu/winit/event"
)

// ToPhysicalKey maps a native key code to its physical key.
func ToPhysicalKey(code ability.KeyCode) event.PhysicalKey {
	if k, ok := physical[code]; ok {
		return k
	}
	return event.PhysicalUnidentified
}

// ToLogical maps a native key code to its logical key.
func ToLogical(code ability.KeyCode) event.Key {
	if k, ok := logical[code]; ok {
		return k
	}
	return event.NamedOf(event.NamedUnidentified)
}

// ToLocation maps a native key code to its keyboard location.
func ToLocation(code ability.KeyCode) event.KeyLocation {
	switch code {
	case ability.KeyCodeShiftLeft, ability.KeyCodeCtrlLeft, ability.KeyCodeAltLeft, ability.KeyCodeMetaLeft:
		return event.LocationLeft
	case ability.KeyCodeShiftRight, ability.KeyCodeCtrlRight, ability.KeyCodeAltRight, ability.KeyCodeMetaRight:
		return event.LocationRight
	case ability.KeyCodeNumLock,
		ability.KeyCodeNumpad0, ability.KeyCodeNumpad1, ability.KeyCodeNumpad2,
		ability.KeyCodeNumpad3, ability.KeyCodeNumpad4, ability.KeyCodeNumpad5,
		ability.KeyCodeNumpad6, ability.KeyCodeNumpad7, ability.KeyCodeNumpad8,
		ability.KeyCodeNumpad9, ability.KeyCodeNumpadDivide, ability.KeyCodeNumpadMultiply,
		ability.KeyCodeNumpadSubtract, ability.KeyCodeNumpadAdd, ability.KeyCodeNumpadDot,
		ability.KeyCodeNumpadComma, ability.KeyCodeNumpadEnter, ability.KeyCodeNumpadEquals:
		return event.LocationNumpad
	default:
		return event.LocationStandard
	}
}

var physical = map[ability.KeyCode]event.PhysicalKey{
	ability.KeyCodeA: event.PhysKeyA,
	ability.KeyCodeB: event.PhysKeyB,
	ability.KeyCodeC: event.PhysKeyC,
	ability.KeyCodeD: event.PhysKeyD,
	ability.KeyCodeE: event.PhysKeyE,
	ability.KeyCodeF: event.PhysKeyF,
	ability.KeyCodeG: event.PhysKeyG,
	ability.KeyCodeH: event.PhysKeyH,
	ability.KeyCodeI: event.PhysKeyI,
	ability.KeyCodeJ: event.PhysKeyJ,
	ability.KeyCodeK: event.PhysKeyK,
	ability.KeyCodeL: event.PhysKeyL,
	ability.KeyCodeM: event.PhysKeyM,
	ability.KeyCodeN: event.PhysKeyN,
	ability.KeyCodeO: event.PhysKeyO,
	ability.KeyCodeP: event.PhysKeyP,
	ability.KeyCodeQ: event.PhysKeyQ,
	ability.KeyCodeR: event.PhysKeyR,
	ability.KeyCodeS: event.PhysKeyS,
	ability.KeyCodeT: event.PhysKeyT,
	ability.KeyCodeU: event.PhysKeyU,
	ability.KeyCodeV: event.PhysKeyV,
	ability.KeyCodeW: event.PhysKeyW,
	ability.KeyCodeX: event.PhysKeyX,
	ability.KeyCodeY: event.PhysKeyY,
	ability.KeyCodeZ: event.PhysKeyZ,

	ability.KeyCode0: event.PhysDigit0,
	ability.KeyCode1: event.PhysDigit1,
	ability.KeyCode2: event.PhysDigit2,
	ability.KeyCode3: event.PhysDigit3,
	ability.KeyCode4: event.PhysDigit4,
	ability.KeyCode5: event.PhysDigit5,
	ability.KeyCode6: event.PhysDigit6,
	ability.KeyCode7: event.PhysDigit7,
	ability.KeyCode8: event.PhysDigit8,
	ability.KeyCode9: event.PhysDigit9,

	ability.KeyCodeEnter:        event.PhysEnter,
	ability.KeyCodeEscape:       event.PhysEscape,
	ability.KeyCodeDel:          event.PhysBackspace,
	ability.KeyCodeForwardDel:   event.PhysDelete,
	ability.KeyCodeTab:          event.PhysTab,
	ability.KeyCodeSpace:        event.PhysSpace,
	ability.KeyCodeMinus:        event.PhysMinus,
	ability.KeyCodeEquals:       event.PhysEqual,
	ability.KeyCodeLeftBracket:  event.PhysBracketLeft,
	ability.KeyCodeRightBracket: event.PhysBracketRight,
	ability.KeyCodeBackslash:    event.PhysBackslash,
	ability.KeyCodeSemicolon:    event.PhysSemicolon,
	ability.KeyCodeApostrophe:   event.PhysQuote,
	ability.KeyCodeGrave:        event.PhysBackquote,
	ability.KeyCodeComma:        event.PhysComma,
	ability.KeyCodePeriod:       event.PhysPeriod,
	ability.KeyCodeSlash:        event.PhysSlash,
	ability.KeyCodeCapsLock:     event.PhysCapsLock,
	ability.KeyCodeScrollLock:   event.PhysScrollLock,
	ability.KeyCodeSysrq:        event.PhysPrintScreen,
	ability.KeyCodeBreak:        event.PhysPause,
	ability.KeyCodeInsert:       event.PhysInsert,
	ability.KeyCodeMoveHome:     event.PhysHome,
	ability.KeyCodeMoveEnd:      event.PhysEnd,
	ability.KeyCodePageUp:       event.PhysPageUp,
	ability.KeyCodePageDown:     event.PhysPageDown,

	ability.KeyCodeDpadUp:    event.PhysArrowUp,
	ability.KeyCodeDpadDown:  event.PhysArrowDown,
	ability.KeyCodeDpadLeft:  event.PhysArrowLeft,
	ability.KeyCodeDpadRight: event.PhysArrowRight,

	ability.KeyCodeF1:  event.PhysF1,
	ability.KeyCodeF2:  event.PhysF2,
	ability.KeyCodeF3:  event.PhysF3,
	ability.KeyCodeF4:  event.PhysF4,
	ability.KeyCodeF5:  event.PhysF5,
	ability.KeyCodeF6:  event.PhysF6,
	ability.KeyCodeF7:  event.PhysF7,
	ability.KeyCodeF8:  event.PhysF8,
	ability.KeyCodeF9:  event.PhysF9,
	ability.KeyCodeF10: event.PhysF10,
	ability.KeyCodeF11: event.PhysF11,
	ability.KeyCodeF12: event.PhysF12,

	ability.KeyCodeNumLock:        event.PhysNumLock,
	ability.KeyCodeNumpad0:        event.PhysNumpad0,
	ability.KeyCodeNumpad1:        event.PhysNumpad1,
	ability.KeyCodeNumpad2:        event.PhysNumpad2,
	ability.KeyCodeNumpad3:        event.PhysNumpad3,
	ability.KeyCodeNumpad4:        event.PhysNumpad4,
	ability.KeyCodeNumpad5:        event.PhysNumpad5,
	ability.KeyCodeNumpad6:        event.PhysNumpad6,
	ability.KeyCodeNumpad7:        event.PhysNumpad7,
	ability.KeyCodeNumpad8:        event.PhysNumpad8,
	ability.KeyCodeNumpad9:        event.PhysNumpad9,
	ability.KeyCodeNumpadDivide:   event.PhysNumpadDivide,
	ability.KeyCodeNumpadMultiply: event.PhysNumpadMultiply,
	ability.KeyCodeNumpadSubtract: event.PhysNumpadSubtract,
	ability.KeyCodeNumpadAdd:      event.PhysNumpadAdd,
	ability.KeyCodeNumpadDot:      event.PhysNumpadDecimal,
	ability.KeyCodeNumpadComma:    event.PhysNumpadComma,
	ability.KeyCodeNumpadEnter:    event.PhysNumpadEnter,
	ability.KeyCodeNumpadEquals:   event.PhysNumpadEqual,

	ability.KeyCodeCtrlLeft:   event.PhysControlLeft,
	ability.KeyCodeCtrlRight:  event.PhysControlRight,
	ability.KeyCodeShiftLeft:  event.PhysShiftLeft,
	ability.KeyCodeShiftRight: event.PhysShiftRight,
	ability.KeyCodeAltLeft:    event.PhysAltLeft,
	ability.KeyCodeAltRight:   event.PhysAltRight,
	ability.KeyCodeMetaLeft:   event.PhysMetaLeft,
	ability.KeyCodeMetaRight:  event.PhysMetaRight,
	ability.KeyCodeMenu:       event.PhysContextMenu,
	ability.KeyCodeFn:         event.PhysFn,
	ability.KeyCodePower:      event.PhysPower,
}

var logical = buildLogical()

func buildLogical() map[ability.KeyCode]event.Key {
	m := map[ability.KeyCode]event.Key{
		ability.KeyCodeEnter:       event.NamedOf(event.NamedEnter),
		ability.KeyCodeNumpadEnter: event.NamedOf(event.NamedEnter),
		ability.KeyCodeTab:         event.NamedOf(event.NamedTab),
		ability.KeyCodeSpace:       event.NamedOf(event.NamedSpace),
		ability.KeyCodeDel:         event.NamedOf(event.NamedBackspace),
		ability.KeyCodeForwardDel:  event.NamedOf(event.NamedDelete),
		ability.KeyCodeEscape:      event.NamedOf(event.NamedEscape),
		ability.KeyCodeInsert:      event.NamedOf(event.NamedInsert),
		ability.KeyCodeMoveHome:    event.NamedOf(event.NamedHome),
		ability.KeyCodeMoveEnd:     event.NamedOf(event.NamedEnd),
		ability.KeyCodePageUp:      event.NamedOf(event.NamedPageUp),
		ability.KeyCodePageDown:    event.NamedOf(event.NamedPageDown),
		ability.KeyCodeDpadUp:      event.NamedOf(event.NamedArrowUp),
		ability.KeyCodeDpadDown:    event.NamedOf(event.NamedArrowDown),
		ability.KeyCodeDpadLeft:    event.NamedOf(event.NamedArrowLeft),
		ability.KeyCodeDpadRight:   event.NamedOf(event.NamedArrowRight),
		ability.KeyCodeCapsLock:    event.NamedOf(event.NamedCapsLock),
		ability.KeyCodeScrollLock:  event.NamedOf(event.NamedScrollLock),
		ability.KeyCodeNumLock:     event.NamedOf(event.NamedNumLock),
		ability.KeyCodeCtrlLeft:    event.NamedOf(event.NamedControl),
		ability.KeyCodeCtrlRight:   event.NamedOf(event.NamedControl),
		ability.KeyCodeShiftLeft:   event.NamedOf(event.NamedShift),
		ability.KeyCodeShiftRight:  event.NamedOf(event.NamedShift),
		ability.KeyCodeAltLeft:     event.NamedOf(event.NamedAlt),
		ability.KeyCodeAltRight:    event.NamedOf(event.NamedAlt),
		ability.KeyCodeMetaLeft:    event.NamedOf(event.NamedMeta),
		ability.KeyCodeMetaRight:   event.NamedOf(event.NamedMeta),
		ability.KeyCodeMenu:        event.NamedOf(event.NamedContextMenu),
		ability.KeyCodeFn:          event.NamedOf(event.NamedFn),
		ability.KeyCodeSysrq:       event.NamedOf(event.NamedPrintScreen),
		ability.KeyCodeBreak:       event.NamedOf(event.NamedPause),
		ability.KeyCodeVolumeUp:    event.NamedOf(event.NamedAudioVolumeUp),
		ability.KeyCodeVolumeDown:  event.NamedOf(event.NamedAudioVolumeDown),
		ability.KeyCodeVolumeMute:  event.NamedOf(event.NamedAudioVolumeMute),
		ability.KeyCodeMute:        event.NamedOf(event.NamedAudioVolumeMute),
		ability.KeyCodePower:       event.NamedOf(event.NamedPower),
		ability.KeyCodeCamera:      event.NamedOf(event.NamedCamera),
		ability.KeyCodeBack:        event.NamedOf(event.NamedGoBack),
		ability.KeyCodeHome:        event.NamedOf(event.NamedGoHome),

		ability.KeyCodeF1:  event.NamedOf(event.NamedF1),
		ability.KeyCodeF2:  event.NamedOf(event.NamedF2),
		ability.KeyCodeF3:  event.NamedOf(event.NamedF3),
		ability.KeyCodeF4:  event.NamedOf(event.NamedF4),
		ability.KeyCodeF5:  event.NamedOf(event.NamedF5),
		ability.KeyCodeF6:  event.NamedOf(event.NamedF6),
		ability.KeyCodeF7:  event.NamedOf(event.NamedF7),
		ability.KeyCodeF8:  event.NamedOf(event.NamedF8),
		ability.KeyCodeF9:  event.NamedOf(event.NamedF9),
		ability.KeyCodeF10: event.NamedOf(event.NamedF10),
		ability.KeyCodeF11: event.NamedOf(event.NamedF11),
		ability.KeyCodeF12: event.NamedOf(event.NamedF12),
	}

	for i := 0; i < 26; i++ {
		m[ability.KeyCodeA+ability.KeyCode(i)] = event.CharacterOf(string(rune('a' + i)))
	}
	for i := 0; i < 10; i++ {
		m[ability.KeyCode0+ability.KeyCode(i)] = event.CharacterOf(string(rune('0' + i)))
		m[ability.KeyCodeNumpad0+ability.KeyCode(i)] = event.CharacterOf(string(rune('0' + i)))
	}

	punct := map[ability.KeyCode]string{
		ability.KeyCodeComma:          ",",
		ability.KeyCodePeriod:         ".",
		ability.KeyCodeMinus:          "-",
		ability.KeyCodeEquals:         "=",
		ability.KeyCodeLeftBracket:    "[",
		ability.KeyCodeRightBracket:   "]",
		ability.KeyCodeBackslash:      "\\",
		ability.KeyCodeSemicolon:      ";",
		ability.KeyCodeApostrophe:     "'",
		ability.KeyCodeGrave:          "`",
		ability.KeyCodeSlash:          "/",
		ability.KeyCodeStar:           "*",
		ability.KeyCodePound:          "#",
		ability.KeyCodeNumpadDivide:   "/",
		ability.KeyCodeNumpadMultiply: "*",
		ability.KeyCodeNumpadSubtract: "-",
		ability.KeyCodeNumpadAdd:      "+",
		ability.KeyCodeNumpadDot:      ".",
		ability.KeyCodeNumpadComma:    ",",
		ability.KeyCodeNumpadEquals:   "=",
	}
	for code, text := range punct {
		m[code] = event.CharacterOf(text)
	}
	return m
}
