// Command cellbridge-keys shows how terminal key events resolve into scroll deltas
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/cellbridge/config"
	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/input"
	"github.com/lixenwraith/cellbridge/layout"
	"github.com/lixenwraith/cellbridge/terminal"
)

const maxLog = 200

var (
	styleTitle  = terminal.Style{Fg: terminal.ColorFromRGB(200, 200, 200), Bg: terminal.ColorFromRGB(40, 40, 60), Attrs: terminal.AttrBold}
	styleRule   = terminal.Style{Fg: terminal.ColorFromRGB(60, 60, 80)}
	styleEntry  = terminal.Style{Fg: terminal.ColorFromRGB(180, 180, 180)}
	styleStatus = terminal.Style{Fg: terminal.ColorFromRGB(140, 140, 160)}
)

func main() {
	defer func() { core.HandleCrash(recover()) }()

	var configPath string
	cmd := &cobra.Command{
		Use:   "cellbridge-keys",
		Short: "Print the scroll delta each key produces",
		RunE: func(cmd *cobra.Command, args []string) error {
			keymap := input.DefaultKeymap()
			if configPath != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				if keymap, err = cfg.ResolveKeymap(); err != nil {
					return err
				}
			}
			return run(cmd.Context(), keymap)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file with keymap overrides")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, keymap input.Keymap) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resolver := input.NewScrollResolver(keymap)
	painter := terminal.NewPainter(screen)
	var entries []string

	draw := func() {
		w, h := screen.Size()
		screen.Clear()
		painter.FillRect(core.Area{Width: w, Height: 1}, ' ', styleTitle)
		painter.DrawText(1, 0, "Press keys to see resolved scroll deltas - Ctrl+C quits", styleTitle)
		painter.DrawText(0, 1, strings.Repeat("─", w), styleRule)

		rows := max(0, h-4)
		start := max(0, len(entries)-rows)
		for i, entry := range entries[start:] {
			painter.DrawText(1, 2+i, entry, styleEntry)
		}

		painter.DrawText(0, h-2, strings.Repeat("─", w), styleRule)
		painter.DrawText(1, h-1, fmt.Sprintf("Size: %dx%d | remembered key: %s", w, h, runeName(resolver.PrevKey())), styleStatus)
		screen.Show()
	}

	draw()
	for ev := range screen.Events(ctx) {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			ks, ok := input.FromTcell(ev)
			var delta layout.Vector2
			if ok {
				delta = resolver.Resolve(&ks)
			}
			entries = append(entries, describe(ev, ks, ok, delta))
			if len(entries) > maxLog {
				entries = entries[len(entries)-maxLog:]
			}
		case *tcell.EventResize:
			screen.Sync()
		}
		draw()
	}
	return nil
}

// describe formats one key event and the scroll delta it resolved to
func describe(ev *tcell.EventKey, ks input.KeyState, ok bool, delta layout.Vector2) string {
	name := ev.Name()
	if !ok {
		return fmt.Sprintf("KEY: %-12s ignored", name)
	}
	var parts []string
	if ks.HasRawKey {
		parts = append(parts, "raw="+runeName(ks.RawKey))
	}
	if ks.PageDown {
		parts = append(parts, "pgdn")
	}
	if ks.PageUp {
		parts = append(parts, "pgup")
	}
	if ks.AxisY != 0 {
		parts = append(parts, fmt.Sprintf("axis=%+.0f", ks.AxisY))
	}
	return fmt.Sprintf("KEY: %-12s %-20s dy=%+.0f", name, strings.Join(parts, " "), delta.Y)
}

func runeName(r rune) string {
	switch {
	case r == 0:
		return "none"
	case r < 0x20:
		return fmt.Sprintf("^%c", r+'@')
	default:
		return fmt.Sprintf("'%c'", r)
	}
}
