// pothole is Pothole Jumper, an endless runner for the terminal.
//
// Usage:
//
//	pothole                  - Play in this terminal
//	pothole play             - Same as above
//	pothole serve            - Start SSH server for remote play
//	pothole config           - Print the effective game config as YAML
//	pothole schema           - Print the JSON schema of spectator frames
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--nick <name>         - Prefill the nickname field
//	--log-file <path>     - Write logs to a file
//	--spectate <addr>     - Stream frames to websocket spectators
//
// Every flag can also be set through a POTHOLE_* environment variable,
// read from a .env file in the working directory when present.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagNick       string
	flagLogFile    string
	flagSpectate   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pothole",
	Short: "Pothole Jumper - jump the potholes, grab the coins",
	Long: `Pothole Jumper is an endless runner for the terminal. A ball rolls
along a road full of potholes; jump over them, collect coins and survive
while the road speeds up.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective game config
  schema   - Print the spectator frame JSON schema

Examples:
  pothole
  pothole --difficulty hard --nick ada
  pothole --spectate :8080
  pothole serve --ssh :2222
  pothole config > my-pothole.yaml`,
	PersistentPreRunE: applyEnv,
	SilenceUsage:      true,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagNick, "nick", "", "Nickname to prefill on the start screen")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address (e.g. :8080)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(schemaCmd)
}
