// termfolio is a terminal portfolio with a hidden arcade game.
//
// Usage:
//
//	termfolio view              - Browse the portfolio in the terminal
//	termfolio play <game>       - Play a game directly
//	termfolio list              - List available games
//	termfolio scores [game]     - Show high scores
//	termfolio serve ssh         - Serve the portfolio over SSH
//	termfolio serve http        - Serve the JSON API and admin endpoints
//	termfolio content seed|show - Manage portfolio content
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.termfolio/termfolio.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - Difficulty preset: easy, normal, hard, fixed
//	--content <path>      - Portfolio seed YAML (default: built-in)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termfolio/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/termfolio/internal/games/dodge"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagContent    string

	env config.Env
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "Termfolio - a portfolio for the terminal",
	Long: `Termfolio renders a developer portfolio in the terminal, serves it to
visitors over SSH and exposes its content through a small JSON API.

Somewhere on the page there is a game. Type the secret code to find it.

Examples:
  termfolio view
  termfolio play dodge --difficulty hard
  termfolio serve ssh --addr :2222
  termfolio serve http
  termfolio content seed --content ./me.yaml`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		env = config.LoadEnv()
		if !cmd.Flags().Changed("db") {
			flagDBPath = env.DBPath
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termfolio/termfolio.db", "Path to the database (or TERMFOLIO_DB)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "Portfolio seed YAML (default: built-in)")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(contentCmd)
}
