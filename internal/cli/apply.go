package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/facefilter"
)

// newApplyCmd builds the apply command: read a scene file, composite its
// filters onto the frame for every face, and write the result.
func newApplyCmd() *cobra.Command {
	var maskMode bool

	cmd := &cobra.Command{
		Use:   "apply <scene.toml>",
		Short: "Apply the scene's filters to its frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args[0], maskMode)
		},
	}
	cmd.Flags().BoolVar(&maskMode, "mask", false, "apply only the face mask filter")
	return cmd
}

func runApply(cmd *cobra.Command, scenePath string, maskMode bool) error {
	logger := loggerFromContext(cmd.Context())
	facefilter.SetLogger(slogFromCharm(logger))
	defer facefilter.SetLogger(nil)

	scene, err := LoadScene(scenePath)
	if err != nil {
		return err
	}
	logger.Debug("scene loaded", "frame", scene.Frame, "faces", len(scene.Faces), "filters", len(scene.Filters))

	sys, err := scene.BuildSystem()
	if err != nil {
		return err
	}
	sys.SetMaskMode(maskMode)

	frame, err := facefilter.LoadImage(scene.Frame)
	if err != nil {
		return fmt.Errorf("cli: load frame: %w", err)
	}
	if scene.Flip {
		frame = facefilter.FlipHorizontal(frame)
	}
	size := facefilter.Size{Width: frame.Width(), Height: frame.Height()}

	for i, face := range scene.Faces {
		frame = sys.Apply(frame, face.Points(), size)
		logger.Debug("face processed", "face", i)
	}

	if err := frame.Save(scene.Output); err != nil {
		return fmt.Errorf("cli: save output: %w", err)
	}
	logger.Info("frame written", "output", scene.Output, "size", fmt.Sprintf("%dx%d", size.Width, size.Height))
	return nil
}
