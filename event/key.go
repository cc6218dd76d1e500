package event

// PhysicalKey identifies a key by its position on a standard keyboard,
// independent of layout.
type PhysicalKey int

const (
	PhysicalUnidentified PhysicalKey = iota
	PhysKeyA
	PhysKeyB
	PhysKeyC
	PhysKeyD
	PhysKeyE
	PhysKeyF
	PhysKeyG
	PhysKeyH
	PhysKeyI
	PhysKeyJ
	PhysKeyK
	PhysKeyL
	PhysKeyM
	PhysKeyN
	PhysKeyO
	PhysKeyP
	PhysKeyQ
	PhysKeyR
	PhysKeyS
	PhysKeyT
	PhysKeyU
	PhysKeyV
	PhysKeyW
	PhysKeyX
	PhysKeyY
	PhysKeyZ
	PhysDigit0
	PhysDigit1
	PhysDigit2
	PhysDigit3
	PhysDigit4
	PhysDigit5
	PhysDigit6
	PhysDigit7
	PhysDigit8
	PhysDigit9
	PhysEnter
	PhysEscape
	PhysBackspace
	PhysTab
	PhysSpace
	PhysMinus
	PhysEqual
	PhysBracketLeft
	PhysBracketRight
	PhysBackslash
	PhysSemicolon
	PhysQuote
	PhysBackquote
	PhysComma
	PhysPeriod
	PhysSlash
	PhysCapsLock
	PhysF1
	PhysF2
	PhysF3
	PhysF4
	PhysF5
	PhysF6
	PhysF7
	PhysF8
	PhysF9
	PhysF10
	PhysF11
	PhysF12
	PhysPrintScreen
	PhysScrollLock
	PhysPause
	PhysInsert
	PhysHome
	PhysPageUp
	PhysDelete
	PhysEnd
	PhysPageDown
	PhysArrowRight
	PhysArrowLeft
	PhysArrowDown
	PhysArrowUp
	PhysNumLock
	PhysNumpad0
	PhysNumpad1
	PhysNumpad2
	PhysNumpad3
	PhysNumpad4
	PhysNumpad5
	PhysNumpad6
	PhysNumpad7
	PhysNumpad8
	PhysNumpad9
	PhysNumpadDivide
	PhysNumpadMultiply
	PhysNumpadSubtract
	PhysNumpadAdd
	PhysNumpadDecimal
	PhysNumpadComma
	PhysNumpadEnter
	PhysNumpadEqual
	PhysControlLeft
	PhysControlRight
	PhysShiftLeft
	PhysShiftRight
	PhysAltLeft
	PhysAltRight
	PhysMetaLeft
	PhysMetaRight
	PhysContextMenu
	PhysFn
	PhysPower
)

// NamedKey is a non-character logical key.
type NamedKey int

const (
	NamedUnidentified NamedKey = iota
	NamedEnter
	NamedTab
	NamedSpace
	NamedBackspace
	NamedEscape
	NamedDelete
	NamedInsert
	NamedHome
	NamedEnd
	NamedPageUp
	NamedPageDown
	NamedArrowUp
	NamedArrowDown
	NamedArrowLeft
	NamedArrowRight
	NamedCapsLock
	NamedScrollLock
	NamedNumLock
	NamedControl
	NamedShift
	NamedAlt
	NamedMeta
	NamedContextMenu
	NamedFn
	NamedF1
	NamedF2
	NamedF3
	NamedF4
	NamedF5
	NamedF6
	NamedF7
	NamedF8
	NamedF9
	NamedF10
	NamedF11
	NamedF12
	NamedPrintScreen
	NamedPause
	NamedAudioVolumeUp
	NamedAudioVolumeDown
	NamedAudioVolumeMute
	NamedPower
	NamedCamera
	NamedGoBack
	NamedGoHome
)

// Key is a logical key: either a named key or the character it produces.
// Exactly one of the two is set; a character key has Named ==
// NamedUnidentified and a non-empty Text.
type Key struct {
	Named NamedKey
	Text  string
}

// NamedOf returns a named logical key.
func NamedOf(n NamedKey) Key { return Key{Named: n} }

// CharacterOf returns a character logical key.
func CharacterOf(text string) Key { return Key{Text: text} }

// IsCharacter reports whether the key carries character text.
func (k Key) IsCharacter() bool { return k.Text != "" }

// KeyLocation distinguishes otherwise identical keys by position.
type KeyLocation int

const (
	LocationStandard KeyLocation = iota
	LocationLeft
	LocationRight
	LocationNumpad
)

// KeyEvent is a portable keyboard event.
//
// Repeat is always false on this platform: the native runtime does not
// surface OS key repeat, and the backend does no repeat detection of its own.
type KeyEvent struct {
	State       ElementState
	PhysicalKey PhysicalKey
	Logical     Key
	Location    KeyLocation
	Repeat      bool
	Text        string
}
