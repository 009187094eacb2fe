package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkalab/tka/internal/model"
	"github.com/tkalab/tka/internal/rotation"
)

func init() {
	cmd := &cobra.Command{
		Use:   "angle",
		Short: "Compute a prop's display rotation angle",
		Run:   runAngle,
	}

	cmd.Flags().StringP("motion-type", "m", "pro", "Motion type: pro, anti, static, dash, float")
	cmd.Flags().StringP("end-loc", "e", "", "End location (required): n, e, s, w, ne, se, sw, nw")
	cmd.Flags().Float64P("turns", "t", 0, "Turns (0-3 in 0.5 steps; anything else skips propagation)")
	cmd.Flags().String("ref-ori", "in", "Reference start orientation: in, out, clock, counter")

	cmd.MarkFlagRequired("end-loc")

	RootCmd.AddCommand(cmd)
}

func runAngle(cmd *cobra.Command, args []string) {
	motionType, _ := cmd.Flags().GetString("motion-type")
	endLoc, _ := cmd.Flags().GetString("end-loc")
	turns, _ := cmd.Flags().GetFloat64("turns")
	refOri, _ := cmd.Flags().GetString("ref-ori")

	if !model.ValidMotionTypes[model.MotionType(motionType)] {
		exitErr("angle", fmt.Errorf("invalid motion-type %q", motionType))
	}
	if !model.ValidLocations[model.Location(endLoc)] {
		exitErr("angle", fmt.Errorf("invalid end-loc %q", endLoc))
	}
	if !model.ValidOrientations[model.Orientation(refOri)] {
		exitErr("angle", fmt.Errorf("invalid ref-ori %q", refOri))
	}

	m := &model.Motion{
		MotionType: model.MotionType(motionType),
		EndLoc:     model.Location(endLoc),
		Turns:      turns,
	}

	angle := rotation.PropAngle(m, model.Orientation(refOri))
	printJSON(map[string]float64{"angle": angle})
}
