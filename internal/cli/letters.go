package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "letters",
		Short: "List letters with entry counts",
		Run:   runLetters,
	}

	cmd.Flags().Bool("names-only", false, "Only output letter names")

	RootCmd.AddCommand(cmd)
}

func runLetters(cmd *cobra.Command, args []string) {
	namesOnly, _ := cmd.Flags().GetBool("names-only")

	s, err := openStore()
	if err != nil {
		exitErr("open dataset", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("letters", err)
	}

	if namesOnly {
		for _, ls := range stats.Letters {
			fmt.Println(ls.Letter)
		}
		return
	}

	printJSON(stats.Letters)
}
