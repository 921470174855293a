package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/cellbridge/input"
	"github.com/lixenwraith/cellbridge/render"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// Default config resolves to the default render theme with auto aspect
func TestDefaultResolvesToDefaultTheme(t *testing.T) {
	theme, err := Default().Theme.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want := render.DefaultTheme()
	want.AspectRatio = 0
	if diff := cmp.Diff(want, theme); diff != "" {
		t.Errorf("theme mismatch (-want +got):\n%s", diff)
	}
}

// TOML and YAML overlay the defaults identically
func TestLoadFormats(t *testing.T) {
	dir := t.TempDir()
	tomlPath := writeFile(t, dir, "a.toml", `
fps = 30
color_mode = "256"

[theme]
aspect_ratio = 1.8
scrollbar_thumb = "#"

[keymap]
J = "half_page_down"
`)
	yamlPath := writeFile(t, dir, "a.yaml", `
fps: 30
color_mode: "256"
theme:
  aspect_ratio: 1.8
  scrollbar_thumb: "#"
keymap:
  J: half_page_down
`)

	fromTOML, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load toml: %v", err)
	}
	fromYAML, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load yaml: %v", err)
	}
	if diff := cmp.Diff(fromTOML, fromYAML); diff != "" {
		t.Errorf("toml/yaml mismatch (-toml +yaml):\n%s", diff)
	}

	if fromTOML.FPS != 30 {
		t.Errorf("Expected fps 30, got %d", fromTOML.FPS)
	}
	// Untouched fields keep defaults
	if fromTOML.Theme.Border.Horizontal != "─" {
		t.Errorf("Expected default horizontal glyph, got %q", fromTOML.Theme.Border.Horizontal)
	}
	if fromTOML.Theme.ScrollbarThumb != "#" {
		t.Errorf("Expected thumb '#', got %q", fromTOML.Theme.ScrollbarThumb)
	}

	km, err := fromTOML.ResolveKeymap()
	if err != nil {
		t.Fatalf("ResolveKeymap: %v", err)
	}
	if km['J'] != input.ActionHalfPageDown {
		t.Errorf("Expected J bound to half_page_down, got %v", km['J'])
	}
	if km['j'] != input.ActionLineDown {
		t.Errorf("Expected default j binding kept, got %v", km['j'])
	}
}

// Unknown extensions are rejected with ErrUnsupportedFormat
func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.ini", "fps=1")
	_, err := Load(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

// Invalid values fail validation
func TestValidate(t *testing.T) {
	cases := map[string]string{
		"negative fps":     "fps = -1",
		"bad color mode":   `color_mode = "sixteen"`,
		"multi-rune glyph": "[theme]\nscrollbar_track = \"ab\"",
		"empty glyph":      "[theme.border]\nvertical = \"\"",
		"unknown action":   "[keymap]\nx = \"explode\"",
		"negative aspect":  "[theme]\naspect_ratio = -2.0",
	}
	for name, body := range cases {
		if _, err := Parse([]byte(body), "toml"); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

// Rewriting a watched file delivers the new theme
func TestWatchTheme(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "theme.toml", "[theme]\nscrollbar_thumb = \"#\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := log.New(os.Stderr)
	logger.SetLevel(log.FatalLevel)

	ch, err := WatchTheme(ctx, path, logger)
	if err != nil {
		t.Fatalf("WatchTheme failed: %v", err)
	}

	// Invalid content is skipped, the following valid write is delivered
	writeFile(t, dir, "theme.toml", "[theme]\nscrollbar_thumb = \"too long\"\n")
	time.Sleep(2 * settleDelay)
	writeFile(t, dir, "theme.toml", "[theme]\nscrollbar_thumb = \"@\"\n")

	select {
	case theme := <-ch:
		if theme.Scrollbar.Thumb != '@' {
			t.Errorf("Expected thumb '@', got %q", theme.Scrollbar.Thumb)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Expected theme reload")
	}

	cancel()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("Expected channel to close after cancel")
		}
	}
}
