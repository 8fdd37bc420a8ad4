package automation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/wavegrid/internal/anim"
)

// ErrUnknownAction is returned for a step whose action is not recognized.
var ErrUnknownAction = errors.New("automation: unknown action")

// Scenario defines a scripted sequence of widget interactions
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single interaction. Value is used by rows, cols and speed;
// Count repeats tick (default 1).
type Step struct {
	Action string `yaml:"action"`
	Value  int    `yaml:"value"`
	Count  int    `yaml:"count"`
}

// Event reports the widget state after one tick or control action.
type Event struct {
	Step   int
	Action string
	Ticked bool
	State  anim.State
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates a YAML scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	for i, step := range scenario.Steps {
		if !knownAction(step.Action) {
			return nil, fmt.Errorf("step %d: %w: %q", i+1, ErrUnknownAction, step.Action)
		}
	}
	return &scenario, nil
}

func knownAction(a string) bool {
	switch strings.ToLower(a) {
	case "tick", "toggle", "pause", "play", "reset", "rows", "cols", "speed":
		return true
	}
	return false
}

// RunScenario drives w through every step on a simulated clock: each tick
// feeds one full interval to the widget. Ticks while paused do nothing.
func RunScenario(ctx context.Context, scenario *Scenario, w *anim.Widget, observe func(Event)) error {
	if observe == nil {
		observe = func(Event) {}
	}
	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}

		action := strings.ToLower(step.Action)
		switch action {
		case "tick":
			n := step.Count
			if n <= 0 {
				n = 1
			}
			for j := 0; j < n; j++ {
				ticked := w.Advance(w.Interval())
				observe(Event{Step: i + 1, Action: action, Ticked: ticked, State: w.State()})
			}
			continue
		case "toggle":
			w.TogglePlay()
		case "pause":
			if w.State().Playing {
				w.TogglePlay()
			}
		case "play":
			if !w.State().Playing {
				w.TogglePlay()
			}
		case "reset":
			w.Reset()
		case "rows":
			w.SetRows(step.Value)
		case "cols":
			w.SetCols(step.Value)
		case "speed":
			w.SetSpeed(step.Value)
		default:
			return fmt.Errorf("step %d: %w: %q", i+1, ErrUnknownAction, step.Action)
		}
		observe(Event{Step: i + 1, Action: action, State: w.State()})
	}
	return nil
}
