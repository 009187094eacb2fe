// Package cli implements the tka CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tkalab/tka/internal/config"
	"github.com/tkalab/tka/internal/dataset"
	"github.com/tkalab/tka/internal/model"
)

var (
	dbPath       string
	settingsPath string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "tka",
	Short: "Kinetic-sequence positioning and letter determination",
	Long:  "Pictograph positioning core: classify two-prop configurations into letters and compute separation offsets. SQLite-backed reference dataset, JSON in, JSON out.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Dataset path (default: $TKA_DB or ~/.tka/dataset.db)")
	RootCmd.PersistentFlags().StringVarP(&settingsPath, "settings", "s", "", "Settings YAML file (default: built-in diamond/staff)")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("TKA_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tka", "dataset.db")
}

func openStore() (*dataset.SQLiteStore, error) {
	return dataset.NewSQLiteStore(getDBPath())
}

func loadSettings() (*config.Settings, error) {
	if settingsPath == "" {
		return config.Default(), nil
	}
	return config.Load(settingsPath)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// readPictograph parses a configuration from a file argument or stdin and
// validates it once at the boundary.
func readPictograph(args []string) (*model.Pictograph, error) {
	var data []byte
	var err error
	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}

	var p model.Pictograph
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}
