// Command cellbridge-demo lays out an entity tree and draws it in the terminal
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/cellbridge/core"
)

type options struct {
	configPath string
	watch      bool
	colorMode  string
	fps        int
	debug      bool
	aspect     float32
	rows       int
}

func main() {
	defer func() { core.HandleCrash(recover()) }()

	var opts options
	cmd := &cobra.Command{
		Use:   "cellbridge-demo",
		Short: "Scrollable layout demo rendered to terminal cells",
		Long:  "cellbridge-demo builds an entity hierarchy, lays it out and renders it in the terminal.\nScroll with j/k, Ctrl-D/Ctrl-U, gg/G, PgUp/PgDn, the arrow keys or the mouse wheel; p pauses frame time and q quits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (.toml, .yaml)")
	f.BoolVar(&opts.watch, "watch", false, "reload the theme when the config file changes")
	f.StringVar(&opts.colorMode, "color", "", "color mode: auto, truecolor, 256")
	f.IntVar(&opts.fps, "fps", 0, "frames per second")
	f.BoolVar(&opts.debug, "debug", false, "write logs to the log directory")
	f.Float32Var(&opts.aspect, "aspect", 0, "cell aspect ratio (height/width), 0 detects")
	f.IntVar(&opts.rows, "rows", 200, "number of list rows")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
