package input

import (
	"fmt"
	"maps"
	"strings"
)

// Rune aliases for keys that can't be written as a single character in config
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"ctrl-d":    RawCtrlD,
	"ctrl-u":    RawCtrlU,
}

// Keymap binds raw keys to scroll actions
type Keymap map[rune]ScrollAction

// DefaultKeymap returns vim-style scrolling: j/k lines, Ctrl-D/Ctrl-U half pages, G end, gg start
func DefaultKeymap() Keymap {
	return Keymap{
		'j':      ActionLineDown,
		'k':      ActionLineUp,
		RawCtrlD: ActionHalfPageDown,
		RawCtrlU: ActionHalfPageUp,
		'G':      ActionJumpEnd,
		'g':      ActionJumpStart,
	}
}

// ParseKeymap converts config bindings of key name to action name into a sparse override keymap
// Returns an error on unknown action names or invalid key names
func ParseKeymap(bindings map[string]string) (Keymap, error) {
	km := make(Keymap, len(bindings))
	for keyStr, actionName := range bindings {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("keymap key %q: %w", keyStr, err)
		}
		action, ok := ActionByName(strings.ToLower(strings.TrimSpace(actionName)))
		if !ok {
			return nil, fmt.Errorf("keymap key %q: unknown action: %q", keyStr, actionName)
		}
		km[r] = action
	}
	return km, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// Merge returns a new keymap with base bindings overridden; ActionNone entries unbind the key
func (km Keymap) Merge(override Keymap) Keymap {
	result := maps.Clone(km)
	if result == nil {
		result = make(Keymap)
	}
	for k, v := range override {
		if v == ActionNone {
			delete(result, k)
		} else {
			result[k] = v
		}
	}
	return result
}
