package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pothole-jumper/internal/spectate"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of spectator frames",
	Long: `Print the JSON schema of the frames streamed by --spectate.

Examples:
  pothole schema > frame.schema.json`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(spectate.Schema())
	},
}
