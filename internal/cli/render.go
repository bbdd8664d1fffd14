package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hweber/dotscreen"
	"github.com/hweber/dotscreen/imageutil"
)

// newRenderCmd applies a catalogue method to an image file.
func newRenderCmd(cfg config) *cobra.Command {
	var (
		method  string
		dotSize int
		output  string
		merge   bool
	)

	cmd := &cobra.Command{
		Use:   "render <image>",
		Short: "Apply a halftone method to an image and save the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dotSize < 2 {
				return fmt.Errorf("--dot-size must be >= 2")
			}
			if output == "" {
				return fmt.Errorf("--output is required")
			}

			logger := loggerFromContext(cmd.Context())
			img, err := imageutil.LoadImage(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("loaded %s (%dx%d)", args[0], img.Width(), img.Height())

			registry := dotscreen.NewDefaultRegistry()
			start := time.Now()
			processed, err := registry.Process(img, method, dotSize)
			if err != nil {
				return err
			}
			if merge {
				processed = dotscreen.Merge(img, processed)
			}
			logger.Infof("rendered %q (%s)", method, time.Since(start).Round(time.Millisecond))

			if err := imageutil.SaveImage(processed.RGBA, output); err != nil {
				return err
			}
			logger.Infof("wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", cfg.Method, "halftone method to apply (see 'dotscreen methods')")
	cmd.Flags().IntVar(&dotSize, "dot-size", cfg.DotSize, "size of each sampled block in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path to save the processed image")
	cmd.Flags().BoolVar(&merge, "merge", false, "composite the result over the original image")

	return cmd
}
