package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export reference entries as JSON",
		Long:  "Export reference entries as JSON. Filter by letter with -l.",
		Run:   runExport,
	}

	cmd.Flags().StringP("letter", "l", "", "Filter by letter")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	letter, _ := cmd.Flags().GetString("letter")

	s, err := openStore()
	if err != nil {
		exitErr("open dataset", err)
	}
	defer s.Close()

	entries, err := s.ExportAll(cmd.Context(), letter)
	if err != nil {
		exitErr("export", err)
	}

	printJSON(entries)
}
