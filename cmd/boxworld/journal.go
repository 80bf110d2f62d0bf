package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/boxworld/internal/platform/tui"
	"github.com/vovakirdan/boxworld/internal/storage"
)

var (
	flagJournalLimit int
	flagJournalPlain bool
	flagJournalClear bool
)

var journalCmd = &cobra.Command{
	Use:   "journal [world]",
	Short: "Browse recorded rewards, conversations and visits",
	Long: `Every session appends what happened (items found, conversations
finished, areas entered) to a journal database. Without arguments an
interactive browser opens; with a world ID the latest entries are printed.

Examples:
  boxworld journal
  boxworld journal hollow
  boxworld journal hollow --limit 50
  boxworld journal hollow --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJournal,
}

func init() {
	journalCmd.Flags().IntVar(&flagJournalLimit, "limit", 20, "Number of entries to print")
	journalCmd.Flags().BoolVar(&flagJournalPlain, "plain", false, "Print instead of opening the browser")
	journalCmd.Flags().BoolVar(&flagJournalClear, "clear", false, "Delete all entries for the world")
}

func runJournal(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer store.Close()

	if len(args) == 0 && !flagJournalPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunJournal(store, width, height)
	}
	if len(args) == 0 {
		return fmt.Errorf("--plain needs a world ID")
	}
	packID := args[0]

	if flagJournalClear {
		if err := store.Clear(packID); err != nil {
			return err
		}
		fmt.Printf("Journal for %s cleared.\n", packID)
		return nil
	}

	entries, err := store.Recent(packID, flagJournalLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Journal - %s\n", packID)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("  Nothing recorded yet.")
		return nil
	}

	fmt.Printf("  %-12s  %-12s  %-24s  %s\n", "When", "Event", "Subject", "Tick")
	fmt.Printf("  %-12s  %-12s  %-24s  %s\n", "----", "-----", "-------", "----")
	for _, e := range entries {
		fmt.Printf("  %-12s  %-12s  %-24s  %d\n",
			e.CreatedAt.Format("Jan 02 15:04"), e.Kind, e.Subject, e.Tick)
	}

	counts, err := store.Counts(packID)
	if err != nil {
		return err
	}
	fmt.Println()
	for _, c := range counts {
		fmt.Printf("  %s: %d\n", c.Kind, c.Count)
	}
	return nil
}
