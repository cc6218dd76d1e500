package xhost

import "github.com/richerfu/winit/ability"

// keysymToCode maps the keysym name reported by keybind.LookupString onto
// the native key code vocabulary. Unmapped names become KeyCodeUnknown and
// fall through the portable translation tables as unidentified, which is
// fine for a development host.
func keysymToCode(name string) ability.KeyCode {
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return ability.KeyCodeA + ability.KeyCode(c-'a')
		case c >= 'A' && c <= 'Z':
			return ability.KeyCodeA + ability.KeyCode(c-'A')
		case c >= '0' && c <= '9':
			return ability.KeyCode0 + ability.KeyCode(c-'0')
		}
	}
	if code, ok := namedKeysyms[name]; ok {
		return code
	}
	return ability.KeyCodeUnknown
}

var namedKeysyms = map[string]ability.KeyCode{
	"Return":       ability.KeyCodeEnter,
	"KP_Enter":     ability.KeyCodeNumpadEnter,
	"space":        ability.KeyCodeSpace,
	"Tab":          ability.KeyCodeTab,
	"BackSpace":    ability.KeyCodeDel,
	"Delete":       ability.KeyCodeForwardDel,
	"Escape":       ability.KeyCodeEscape,
	"Insert":       ability.KeyCodeInsert,
	"Home":         ability.KeyCodeMoveHome,
	"End":          ability.KeyCodeMoveEnd,
	"Prior":        ability.KeyCodePageUp,
	"Next":         ability.KeyCodePageDown,
	"Up":           ability.KeyCodeDpadUp,
	"Down":         ability.KeyCodeDpadDown,
	"Left":         ability.KeyCodeDpadLeft,
	"Right":        ability.KeyCodeDpadRight,
	"comma":        ability.KeyCodeComma,
	"period":       ability.KeyCodePeriod,
	"minus":        ability.KeyCodeMinus,
	"equal":        ability.KeyCodeEquals,
	"bracketleft":  ability.KeyCodeLeftBracket,
	"bracketright": ability.KeyCodeRightBracket,
	"backslash":    ability.KeyCodeBackslash,
	"semicolon":    ability.KeyCodeSemicolon,
	"apostrophe":   ability.KeyCodeApostrophe,
	"grave":        ability.KeyCodeGrave,
	"slash":        ability.KeyCodeSlash,
	"Caps_Lock":    ability.KeyCodeCapsLock,
	"Scroll_Lock":  ability.KeyCodeScrollLock,
	"Num_Lock":     ability.KeyCodeNumLock,
	"Shift_L":      ability.KeyCodeShiftLeft,
	"Shift_R":      ability.KeyCodeShiftRight,
	"Control_L":    ability.KeyCodeCtrlLeft,
	"Control_R":    ability.KeyCodeCtrlRight,
	"Alt_L":        ability.KeyCodeAltLeft,
	"Alt_R":        ability.KeyCodeAltRight,
	"Super_L":      ability.KeyCodeMetaLeft,
	"Super_R":      ability.KeyCodeMetaRight,
	"Menu":         ability.KeyCodeMenu,
	"F1":           ability.KeyCodeF1,
	"F2":           ability.KeyCodeF2,
	"F3":           ability.KeyCodeF3,
	"F4":           ability.KeyCodeF4,
	"F5":           ability.KeyCodeF5,
	"F6":           ability.KeyCodeF6,
	"F7":           ability.KeyCodeF7,
	"F8":           ability.KeyCodeF8,
	"F9":           ability.KeyCodeF9,
	"F10":          ability.KeyCodeF10,
	"F11":          ability.KeyCodeF11,
	"F12":          ability.KeyCodeF12,
}
