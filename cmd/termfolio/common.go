package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/termfolio/internal/config"
	"github.com/vovakirdan/termfolio/internal/content"
	"github.com/vovakirdan/termfolio/internal/games/dodge"
	"github.com/vovakirdan/termfolio/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// dodgeConfig applies the game flags and loads the dodge tuning.
func dodgeConfig() config.DodgeConfig {
	dodge.SetConfigPath(flagConfig)
	dodge.SetDifficultyPreset(flagDifficulty)
	return dodge.LoadConfig()
}

// seedPortfolio loads the seed selected by --content.
func seedPortfolio() content.Portfolio {
	p, err := content.LoadSeed(flagContent)
	if err != nil {
		fail("%v", err)
	}
	return p
}

// openSeededStore opens the database and fills it with the seed content
// when it has none yet.
func openSeededStore(logger *log.Logger) (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}

	seeded, err := store.SeedIfEmpty(seedPortfolio())
	if err != nil {
		store.Close()
		return nil, err
	}
	if seeded && logger != nil {
		logger.Info("seeded empty database", "path", flagDBPath)
	}
	return store, nil
}
