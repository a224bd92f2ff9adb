package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termfolio/internal/storage"
)

var (
	flagSeedForce    bool
	flagMessageLimit int
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage portfolio content",
	Long: `Seed, export and inspect the content stored in the database.

Examples:
  termfolio content seed                       # Fill an empty database
  termfolio content seed --content me.yaml -f  # Replace everything
  termfolio content show > me.yaml             # Export as seed YAML
  termfolio content messages                   # Read contact messages`,
}

var contentSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load seed content into the database",
	Long: `Load --content (or the built-in content) into the database.
Without --force only an empty database is filled. With --force all
portfolio content is replaced; scores and messages are kept.`,
	Args: cobra.NoArgs,
	Run:  runContentSeed,
}

var contentShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored content as seed YAML",
	Args:  cobra.NoArgs,
	Run:   runContentShow,
}

var contentMessagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "List contact messages, newest first",
	Args:  cobra.NoArgs,
	Run:   runContentMessages,
}

func init() {
	contentSeedCmd.Flags().BoolVarP(&flagSeedForce, "force", "f", false, "Replace existing content")
	contentMessagesCmd.Flags().IntVar(&flagMessageLimit, "limit", 20, "Maximum messages to show (0 = all)")

	contentCmd.AddCommand(contentSeedCmd)
	contentCmd.AddCommand(contentShowCmd)
	contentCmd.AddCommand(contentMessagesCmd)
}

func runContentSeed(_ *cobra.Command, _ []string) {
	portfolio := seedPortfolio()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	if flagSeedForce {
		if err := store.ReplacePortfolio(portfolio); err != nil {
			fail("%v", err)
		}
		fmt.Println("Content replaced.")
		return
	}

	seeded, err := store.SeedIfEmpty(portfolio)
	if err != nil {
		fail("%v", err)
	}
	if !seeded {
		fmt.Println("Database already has content; use --force to replace it.")
		return
	}
	fmt.Println("Content seeded.")
}

func runContentShow(_ *cobra.Command, _ []string) {
	data, err := portfolioOrSeed().MarshalSeed()
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data) //nolint:errcheck // Nothing to do if stdout is gone
}

func runContentMessages(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	msgs, err := store.ListMessages(flagMessageLimit)
	if err != nil {
		fail("%v", err)
	}
	if len(msgs) == 0 {
		fmt.Println("No messages yet.")
		return
	}
	for _, m := range msgs {
		fmt.Printf("#%d  %s  %s <%s>\n", m.ID, m.CreatedAt.Local().Format("2006-01-02 15:04"), m.Name, m.Email)
		fmt.Printf("    %s\n\n", m.Body)
	}
}
