package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/termfolio/internal/content"
	"github.com/vovakirdan/termfolio/internal/platform/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the portfolio in the terminal",
	Long: `Open the portfolio in the terminal.

Controls:
  Left/Right, Tab  - Previous/next section
  1-7              - Jump to a section
  Up/Down, PgUp/Dn - Scroll
  Enter            - Write a message (contact section)
  Q/Ctrl+C         - Quit

Content comes from the database; an empty database is seeded from
--content (or the built-in content) first.`,
	Args: cobra.NoArgs,
	Run:  runView,
}

func runView(_ *cobra.Command, _ []string) {
	width, height := terminalSize()

	// The shell owns the terminal, so logs are discarded
	store, err := openSeededStore(nil)
	if err != nil {
		fail("could not open database: %v", err)
	}
	defer store.Close()

	portfolio, err := store.LoadPortfolio()
	if err != nil {
		fail("could not load portfolio: %v", err)
	}
	if portfolio.Profile.Name == "" {
		portfolio = seedPortfolio()
	}

	err = tui.RunPortfolio(tui.PortfolioOptions{
		Portfolio: portfolio,
		Store:     store,
		Dodge:     dodgeConfig(),
		TickRate:  flagFPS,
		Seed:      flagSeed,
		Width:     width,
		Height:    height,
	})
	if err != nil {
		fail("%v", err)
	}
}

// portfolioOrSeed is used by commands that print content without a TUI.
func portfolioOrSeed() content.Portfolio {
	store, err := openSeededStore(nil)
	if err != nil {
		return seedPortfolio()
	}
	defer store.Close()

	p, err := store.LoadPortfolio()
	if err != nil || p.Profile.Name == "" {
		return seedPortfolio()
	}
	return p
}
