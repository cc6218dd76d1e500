package keycodes

import (
	"testing"

	"github.com/richerfu/winit/ability"
	"github.com/richerfu/winit/event"
)

func TestToPhysicalKey(t *testing.T) {
	tests := []struct {
		code ability.KeyCode
		want event.PhysicalKey
	}{
		{ability.KeyCodeA, event.PhysKeyA},
		{ability.KeyCodeZ, event.PhysKeyZ},
		{ability.KeyCode0, event.PhysDigit0},
		{ability.KeyCodeEnter, event.PhysEnter},
		{ability.KeyCodeDel, event.PhysBackspace},
		{ability.KeyCodeForwardDel, event.PhysDelete},
		{ability.KeyCodeDpadUp, event.PhysArrowUp},
		{ability.KeyCodeNumpadEnter, event.PhysNumpadEnter},
		{ability.KeyCodeF12, event.PhysF12},
		{ability.KeyCodeMetaLeft, event.PhysMetaLeft},
	}
	for _, tt := range tests {
		if got := ToPhysicalKey(tt.code); got != tt.want {
			t.Errorf("ToPhysicalKey(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestToPhysicalKeyUnmapped(t *testing.T) {
	if got := ToPhysicalKey(ability.KeyCodeUnknown); got != event.PhysicalUnidentified {
		t.Errorf("ToPhysicalKey(unknown) = %v, want unidentified", got)
	}
	if got := ToPhysicalKey(ability.KeyCode(99999)); got != event.PhysicalUnidentified {
		t.Errorf("ToPhysicalKey(99999) = %v, want unidentified", got)
	}
}

func TestToLogicalCharacters(t *testing.T) {
	tests := []struct {
		code ability.KeyCode
		want string
	}{
		{ability.KeyCodeA, "a"},
		{ability.KeyCodeZ, "z"},
		{ability.KeyCode7, "7"},
		{ability.KeyCodeNumpad7, "7"},
		{ability.KeyCodeComma, ","},
		{ability.KeyCodeBackslash, "\\"},
		{ability.KeyCodeNumpadAdd, "+"},
	}
	for _, tt := range tests {
		got := ToLogical(tt.code)
		if !got.IsCharacter() || got.Text != tt.want {
			t.Errorf("ToLogical(%d) = %+v, want character %q", tt.code, got, tt.want)
		}
	}
}

func TestToLogicalNamed(t *testing.T) {
	tests := []struct {
		code ability.KeyCode
		want event.NamedKey
	}{
		{ability.KeyCodeEnter, event.NamedEnter},
		{ability.KeyCodeNumpadEnter, event.NamedEnter},
		{ability.KeyCodeShiftLeft, event.NamedShift},
		{ability.KeyCodeShiftRight, event.NamedShift},
		{ability.KeyCodeBack, event.NamedGoBack},
		{ability.KeyCodeVolumeUp, event.NamedAudioVolumeUp},
		{ability.KeyCodeUnknown, event.NamedUnidentified},
	}
	for _, tt := range tests {
		got := ToLogical(tt.code)
		if got.IsCharacter() || got.Named != tt.want {
			t.Errorf("ToLogical(%d) = %+v, want named %v", tt.code, got, tt.want)
		}
	}
}

func TestToLocation(t *testing.T) {
	tests := []struct {
		code ability.KeyCode
		want event.KeyLocation
	}{
		{ability.KeyCodeShiftLeft, event.LocationLeft},
		{ability.KeyCodeCtrlRight, event.LocationRight},
		{ability.KeyCodeNumpad5, event.LocationNumpad},
		{ability.KeyCodeNumpadEnter, event.LocationNumpad},
		{ability.KeyCodeA, event.LocationStandard},
		{ability.KeyCodeEnter, event.LocationStandard},
	}
	for _, tt := range tests {
		if got := ToLocation(tt.code); got != tt.want {
			t.Errorf("ToLocation(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
