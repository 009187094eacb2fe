package cli

import (
	"github.com/spf13/cobra"

	"github.com/tkalab/tka/internal/determine"
)

func init() {
	cmd := &cobra.Command{
		Use:   "determine [file]",
		Short: "Classify a configuration into a letter",
		Long:  "Classify a two-prop configuration against the reference dataset. Reads a pictograph JSON from stdin or a file. An unmatched configuration prints an unsuccessful result, not an error.",
		Run:   runDetermine,
	}

	RootCmd.AddCommand(cmd)
}

func runDetermine(cmd *cobra.Command, args []string) {
	p, err := readPictograph(args)
	if err != nil {
		exitErr("read configuration", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open dataset", err)
	}
	defer s.Close()

	snap, err := s.Snapshot(cmd.Context())
	if err != nil {
		exitErr("load dataset", err)
	}

	result := determine.NewService(snap).DetermineLetter(p)
	printJSON(result)
}
