package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/richerfu/winit/ability"
)

// Script is a YAML-described native event sequence for replaying through a
// simulated app. Example:
//
//	events:
//	  - type: surface-create
//	    width: 1080
//	    height: 2720
//	  - type: focus
//	    focused: true
//	  - type: touch
//	    action: down
//	    points:
//	      - {id: 1, x: 120, y: 340, force: 0.5}
//	  - type: key
//	    code: 2017
//	    action: down
type Script struct {
	Events []Step `yaml:"events"`
}

// Step is one scripted native event.
type Step struct {
	Type string `yaml:"type"`

	// surface-create / resize
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`

	// focus
	Focused bool `yaml:"focused"`

	// config
	Scale     float32 `yaml:"scale"`
	Density   float32 `yaml:"density"`
	Language  string  `yaml:"language"`
	ColorMode string  `yaml:"color_mode"`

	// touch / key
	Device int64       `yaml:"device"`
	Action string      `yaml:"action"`
	Points []PointSpec `yaml:"points"`
	Code   int32       `yaml:"code"`
}

// PointSpec is one touch contact in a scripted touch step.
type PointSpec struct {
	ID    int32   `yaml:"id"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Force float64 `yaml:"force"`
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return ParseScript(data)
}

// ParseScript parses and validates script YAML.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i := range s.Events {
		if err := s.Events[i].validate(); err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
	}
	return &s, nil
}

var lifecycleSteps = map[string]ability.Event{
	"surface-destroy": ability.SurfaceDestroy{},
	"redraw":          ability.WindowRedraw{},
	"content-rect":    ability.ContentRectChange{},
	"low-memory":      ability.LowMemory{},
	"start":           ability.Start{},
	"resume":          ability.Resume{},
	"pause":           ability.Pause{},
	"save-state":      ability.SaveState{},
	"stop":            ability.Stop{},
	"destroy":         ability.Destroy{},
}

func (s *Step) validate() error {
	switch s.Type {
	case "surface-create", "resize":
		if s.Width == 0 || s.Height == 0 {
			return fmt.Errorf("%s requires a non-zero width and height", s.Type)
		}
	case "focus", "config", "wake":
	case "touch":
		if _, err := parseTouchAction(s.Action); err != nil {
			return err
		}
		if len(s.Points) == 0 {
			return fmt.Errorf("touch requires at least one point")
		}
	case "key":
		if _, err := parseKeyAction(s.Action); err != nil {
			return err
		}
	default:
		if _, ok := lifecycleSteps[s.Type]; !ok {
			return fmt.Errorf("unknown event type %q", s.Type)
		}
	}
	return nil
}

// Play applies the script to the app and marks the stream finished, so a
// RunLoop over the app terminates after the last event.
func (s *Script) Play(app *App) error {
	for i := range s.Events {
		if err := s.Events[i].apply(app); err != nil {
			return fmt.Errorf("events[%d]: %w", i, err)
		}
	}
	app.Finish()
	return nil
}

func (s *Step) apply(app *App) error {
	switch s.Type {
	case "surface-create":
		app.CreateSurface(s.Width, s.Height)
	case "resize":
		app.Resize(s.Width, s.Height)
	case "focus":
		app.SetFocus(s.Focused)
	case "config":
		scale := s.Scale
		if scale == 0 {
			scale = 1
		}
		density := s.Density
		if density == 0 {
			density = scale
		}
		app.ChangeConfig(ability.Configuration{
			Language:  s.Language,
			ColorMode: parseColorMode(s.ColorMode),
			Density:   density,
		}, scale)
	case "wake":
		app.NewWaker().Wake()
	case "touch":
		action, err := parseTouchAction(s.Action)
		if err != nil {
			return err
		}
		points := make([]ability.TouchPoint, len(s.Points))
		for i, p := range s.Points {
			points[i] = ability.TouchPoint{ID: p.ID, X: p.X, Y: p.Y, Force: p.Force}
		}
		app.Touch(s.Device, action, points...)
	case "key":
		action, err := parseKeyAction(s.Action)
		if err != nil {
			return err
		}
		app.Key(s.Device, ability.KeyCode(s.Code), action)
	default:
		ev, ok := lifecycleSteps[s.Type]
		if !ok {
			return fmt.Errorf("unknown event type %q", s.Type)
		}
		app.Push(ev)
	}
	return nil
}

func parseTouchAction(s string) (ability.TouchAction, error) {
	switch s {
	case "down":
		return ability.TouchDown, nil
	case "move":
		return ability.TouchMove, nil
	case "up":
		return ability.TouchUp, nil
	case "cancel":
		return ability.TouchCancel, nil
	default:
		return 0, fmt.Errorf("unknown touch action %q", s)
	}
}

func parseKeyAction(s string) (ability.KeyAction, error) {
	switch s {
	case "down":
		return ability.KeyActionDown, nil
	case "up":
		return ability.KeyActionUp, nil
	default:
		return 0, fmt.Errorf("unknown key action %q", s)
	}
}

func parseColorMode(s string) ability.ColorMode {
	switch s {
	case "dark":
		return ability.ColorModeDark
	case "light":
		return ability.ColorModeLight
	default:
		return ability.ColorModeNotSet
	}
}
