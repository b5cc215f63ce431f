// Package cli implements the facefilter command-line interface.
//
// The CLI applies landmark-anchored overlay filters to still frames
// described by a TOML scene file: a frame image, one or more landmark
// sets, and an ordered list of filters with asset directories. It is a
// thin shell over the facefilter library, useful for batch processing and
// for inspecting filter placement without a live video pipeline.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the facefilter CLI and returns an error if any command
// fails. Logging defaults to info level; --verbose (-v) enables debug
// output, including the library's per-frame skip reasons.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "facefilter",
		Short:        "facefilter overlays landmark-anchored images onto frames",
		Long:         `facefilter composites positioned, rotated, alpha-blended assets (hats, glasses, masks) onto frames, anchored to facial landmark points supplied in a TOML scene file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newApplyCmd())

	return root.ExecuteContext(context.Background())
}
