package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hweber/dotscreen"
	"github.com/hweber/dotscreen/imageutil"
)

// newASCIICmd renders an image as ASCII halftone text on stdout.
func newASCIICmd(cfg config) *cobra.Command {
	var (
		dotSize    int
		charset    string
		charAspect float64
	)

	cmd := &cobra.Command{
		Use:   "ascii <image>",
		Short: "Render an image as ASCII halftone art and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dotSize < 2 {
				return fmt.Errorf("--dot-size must be >= 2")
			}
			if charset == "" {
				return fmt.Errorf("--charset must contain at least one character")
			}

			opts := dotscreen.ASCIIOptions{
				DotSize: dotSize,
				Charset: charset,
			}
			if cmd.Flags().Changed("char-aspect") {
				if charAspect <= 0 {
					return fmt.Errorf("--char-aspect must be positive")
				}
				opts.CharAspect = &charAspect
			}

			logger := loggerFromContext(cmd.Context())
			img, err := imageutil.LoadImage(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("loaded %s (%dx%d)", args[0], img.Width(), img.Height())

			renderer := dotscreen.NewASCIIRenderer(dotscreen.DefaultFontSource())
			lines, err := renderer.Lines(img, opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return nil
		},
	}

	cmd.Flags().IntVar(&dotSize, "dot-size", cfg.DotSize, "size of each sampled block in pixels")
	cmd.Flags().StringVar(&charset, "charset", cfg.Charset, "characters to use from light to dark")
	cmd.Flags().Float64Var(&charAspect, "char-aspect", 0, "height/width ratio for the character grid (default: bundled font's ratio)")

	return cmd
}
