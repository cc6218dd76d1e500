package ability

// KeyCode is an OpenHarmony multimodal-input key code. The values follow the
// ohos multimodal keycode table; codes not listed here still arrive on
// KeyEvent and fall through the translation tables as unidentified.
type KeyCode int32

const (
	KeyCodeUnknown KeyCode = -1
	KeyCodeFn      KeyCode = 0
	KeyCodeHome    KeyCode = 1
	KeyCodeBack    KeyCode = 2

	KeyCodeVolumeUp   KeyCode = 16
	KeyCodeVolumeDown KeyCode = 17
	KeyCodePower      KeyCode = 18
	KeyCodeCamera     KeyCode = 19
	KeyCodeVolumeMute KeyCode = 22
	KeyCodeMute       KeyCode = 23

	KeyCode0 KeyCode = 2000
	KeyCode1 KeyCode = 2001
	KeyCode2 KeyCode = 2002
	KeyCode3 KeyCode = 2003
	KeyCode4 KeyCode = 2004
	KeyCode5 KeyCode = 2005
	KeyCode6 KeyCode = 2006
	KeyCode7 KeyCode = 2007
	KeyCode8 KeyCode = 2008
	KeyCode9 KeyCode = 2009

	KeyCodeStar  KeyCode = 2010
	KeyCodePound KeyCode = 2011

	KeyCodeDpadUp     KeyCode = 2012
	KeyCodeDpadDown   KeyCode = 2013
	KeyCodeDpadLeft   KeyCode = 2014
	KeyCodeDpadRight  KeyCode = 2015
	KeyCodeDpadCenter KeyCode = 2016

	KeyCodeA KeyCode = 2017
	KeyCodeB KeyCode = 2018
	KeyCodeC KeyCode = 2019
	KeyCodeD KeyCode = 2020
	KeyCodeE KeyCode = 2021
	KeyCodeF KeyCode = 2022
	KeyCodeG KeyCode = 2023
	KeyCodeH KeyCode = 2024
	KeyCodeI KeyCode = 2025
	KeyCodeJ KeyCode = 2026
	KeyCodeK KeyCode = 2027
	KeyCodeL KeyCode = 2028
	KeyCodeM KeyCode = 2029
	KeyCodeN KeyCode = 2030
	KeyCodeO KeyCode = 2031
	KeyCodeP KeyCode = 2032
	KeyCodeQ KeyCode = 2033
	KeyCodeR KeyCode = 2034
	KeyCodeS KeyCode = 2035
	KeyCodeT KeyCode = 2036
	KeyCodeU KeyCode = 2037
	KeyCodeV KeyCode = 2038
	KeyCodeW KeyCode = 2039
	KeyCodeX KeyCode = 2040
	KeyCodeY KeyCode = 2041
	KeyCodeZ KeyCode = 2042

	KeyCodeComma  KeyCode = 2043
	KeyCodePeriod KeyCode = 2044

	KeyCodeAltLeft    KeyCode = 2045
	KeyCodeAltRight   KeyCode = 2046
	KeyCodeShiftLeft  KeyCode = 2047
	KeyCodeShiftRight KeyCode = 2048

	KeyCodeTab   KeyCode = 2049
	KeyCodeSpace KeyCode = 2050

	KeyCodeEnter        KeyCode = 2054
	KeyCodeDel          KeyCode = 2055
	KeyCodeGrave        KeyCode = 2056
	KeyCodeMinus        KeyCode = 2057
	KeyCodeEquals       KeyCode = 2058
	KeyCodeLeftBracket  KeyCode = 2059
	KeyCodeRightBracket KeyCode = 2060
	KeyCodeBackslash    KeyCode = 2061
	KeyCodeSemicolon    KeyCode = 2062
	KeyCodeApostrophe   KeyCode = 2063
	KeyCodeSlash        KeyCode = 2064

	KeyCodeMenu       KeyCode = 2067
	KeyCodePageUp     KeyCode = 2068
	KeyCodePageDown   KeyCode = 2069
	KeyCodeEscape     KeyCode = 2070
	KeyCodeForwardDel KeyCode = 2071

	KeyCodeCtrlLeft   KeyCode = 2072
	KeyCodeCtrlRight  KeyCode = 2073
	KeyCodeCapsLock   KeyCode = 2074
	KeyCodeScrollLock KeyCode = 2075
	KeyCodeMetaLeft   KeyCode = 2076
	KeyCodeMetaRight  KeyCode = 2077
	KeyCodeFunction   KeyCode = 2078
	KeyCodeSysrq      KeyCode = 2079
	KeyCodeBreak      KeyCode = 2080
	KeyCodeMoveHome   KeyCode = 2081
	KeyCodeMoveEnd    KeyCode = 2082
	KeyCodeInsert     KeyCode = 2083

	KeyCodeF1  KeyCode = 2100
	KeyCodeF2  KeyCode = 2101
	KeyCodeF3  KeyCode = 2102
	KeyCodeF4  KeyCode = 2103
	KeyCodeF5  KeyCode = 2104
	KeyCodeF6  KeyCode = 2105
	KeyCodeF7  KeyCode = 2106
	KeyCodeF8  KeyCode = 2107
	KeyCodeF9  KeyCode = 2108
	KeyCodeF10 KeyCode = 2109
	KeyCodeF11 KeyCode = 2110
	KeyCodeF12 KeyCode = 2111

	KeyCodeNumLock        KeyCode = 2112
	KeyCodeNumpad0        KeyCode = 2113
	KeyCodeNumpad1        KeyCode = 2114
	KeyCodeNumpad2        KeyCode = 2115
	KeyCodeNumpad3        KeyCode = 2116
	KeyCodeNumpad4        KeyCode = 2117
	KeyCodeNumpad5        KeyCode = 2118
	KeyCodeNumpad6        KeyCode = 2119
	KeyCodeNumpad7        KeyCode = 2120
	KeyCodeNumpad8        KeyCode = 2121
	KeyCodeNumpad9        KeyCode = 2122
	KeyCodeNumpadDivide   KeyCode = 2123
	KeyCodeNumpadMultiply KeyCode = 2124
	KeyCodeNumpadSubtract KeyCode = 2125
	KeyCodeNumpadAdd      KeyCode = 2126
	KeyCodeNumpadDot      KeyCode = 2127
	KeyCodeNumpadComma    KeyCode = 2128
	KeyCodeNumpadEnter    KeyCode = 2129
	KeyCodeNumpadEquals   KeyCode = 2130
)
