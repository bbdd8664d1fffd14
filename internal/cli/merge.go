package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hweber/dotscreen"
	"github.com/hweber/dotscreen/imageutil"
)

// newMergeCmd composites an already-processed halftone over its
// original.
func newMergeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "merge <original> <processed>",
		Short: "Composite a halftone result over the original image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("--output is required")
			}

			original, err := imageutil.LoadImage(args[0])
			if err != nil {
				return err
			}
			processed, err := imageutil.LoadImage(args[1])
			if err != nil {
				return err
			}

			merged := dotscreen.Merge(original, processed)
			if err := imageutil.SaveImage(merged.RGBA, output); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Infof("wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "path to save the merged image")

	return cmd
}
