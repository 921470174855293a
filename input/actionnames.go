package input

import "slices"

// ScrollAction is what a bound key does to the scroll target
type ScrollAction uint8

const (
	ActionNone ScrollAction = iota
	ActionLineDown
	ActionLineUp
	ActionHalfPageDown
	ActionHalfPageUp
	ActionJumpEnd
	ActionJumpStart // fires only when the same key was pressed in the previous frame
)

// actionRegistry maps canonical action names used by keymap config
var actionRegistry = map[string]ScrollAction{
	"none":           ActionNone,
	"line_down":      ActionLineDown,
	"line_up":        ActionLineUp,
	"half_page_down": ActionHalfPageDown,
	"half_page_up":   ActionHalfPageUp,
	"jump_end":       ActionJumpEnd,
	"jump_start":     ActionJumpStart,
}

// ActionByName resolves a config action name
func ActionByName(name string) (ScrollAction, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionNames returns all action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// String returns the config name of the action
func (a ScrollAction) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}
