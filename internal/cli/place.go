package cli

import (
	"github.com/spf13/cobra"

	"github.com/tkalab/tka/internal/direction"
	"github.com/tkalab/tka/internal/model"
	"github.com/tkalab/tka/internal/placement"
)

// placeResult is the JSON output of the place command.
type placeResult struct {
	BetaLetter    bool                      `json:"beta_letter"`
	Overlap       bool                      `json:"overlap"`
	BlueDirection model.SeparationDirection `json:"blue_direction,omitempty"`
	RedDirection  model.SeparationDirection `json:"red_direction,omitempty"`
	BlueOffset    placement.Offset          `json:"blue_offset"`
	RedOffset     placement.Offset          `json:"red_offset"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "place [file]",
		Short: "Compute separation directions and offsets",
		Long:  "Compute separation directions and pixel offsets for a two-prop configuration. Reads a pictograph JSON from stdin or a file; grid mode defaults come from the configuration itself, prop type from settings.",
		Run:   runPlace,
	}

	RootCmd.AddCommand(cmd)
}

func runPlace(cmd *cobra.Command, args []string) {
	p, err := readPictograph(args)
	if err != nil {
		exitErr("read configuration", err)
	}

	settings, err := loadSettings()
	if err != nil {
		exitErr("load settings", err)
	}

	placer := placement.NewPlacer(model.PropType(settings.PropType), settings.Overrides())

	var result placeResult
	result.BetaLetter = placer.ShouldApplyBeta(p)
	result.Overlap = placer.DetectPropOverlap(p)
	result.BlueOffset, result.RedOffset = placer.SeparationOffsets(p)

	if p.Blue != nil && p.Red != nil {
		if p.Letter == "I" {
			result.BlueDirection, result.RedDirection = direction.LetterIDirections(p)
		} else {
			result.BlueDirection = direction.Separation(p.Blue, p, model.Blue)
			result.RedDirection = direction.Separation(p.Red, p, model.Red)
		}
	}

	printJSON(result)
}
