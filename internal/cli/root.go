package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the dotscreen CLI and returns an error if any command
// fails. Defaults for dot size, charset, and method come from the
// optional TOML config file; flags override them.
func Execute() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var verbose bool

	root := &cobra.Command{
		Use:     "dotscreen",
		Short:   "dotscreen renders images as halftone, dither, and ASCII art",
		Long:    `dotscreen applies halftone and dithering transforms to images: grayscale, Floyd-Steinberg and ordered dithering, circular-dot halftone, and ASCII-glyph halftone, with optional compositing back over the original.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("dotscreen %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newASCIICmd(cfg))
	root.AddCommand(newRenderCmd(cfg))
	root.AddCommand(newMergeCmd())
	root.AddCommand(newMethodsCmd())

	return root.ExecuteContext(context.Background())
}
