package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/platform/tui"
	"github.com/vovakirdan/tui-invasion/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var recordingsCmd = &cobra.Command{
	Use:   "recordings",
	Short: "Browse saved sessions",
	Long: `Browse saved sessions in an interactive table. Enter replays the
selected session, d deletes it.

With --plain the newest sessions are printed instead.

Examples:
  invasion recordings
  invasion recordings --plain --limit 20`,
	RunE: runRecordings,
}

func init() {
	recordingsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the list instead of opening the browser")
	recordingsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to print with --plain")
}

func runRecordings(_ *cobra.Command, _ []string) error {
	store, err := openStore(true)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagPlain {
		return printRecordings(store)
	}
	return browseRecordings(store, runtimeConfig())
}

// browseRecordings alternates between the browser and paced playback until
// the player leaves the browser.
func browseRecordings(store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		id, err := tui.RunRecordings(store, gameID, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			return err
		}
		if id == 0 {
			return nil
		}

		rec, err := store.Recording(id)
		if err != nil {
			return err
		}
		if rec == nil {
			continue
		}
		if err := watchRecording(rec, cfg); err != nil {
			return err
		}
	}
}

func printRecordings(store *storage.Store) error {
	recs, err := store.ListRecordings(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recordings - Invasion")
	fmt.Println()

	if len(recs) == 0 {
		fmt.Println("No recordings yet.")
		fmt.Println()
		fmt.Println("Play 'invasion play --record' to save a session!")
		return nil
	}

	fmt.Printf("  %-6s  %-6s  %-6s  %-8s  %-12s  %s\n", "ID", "Best", "Final", "Ticks", "Player", "Date")
	fmt.Printf("  %-6s  %-6s  %-6s  %-8s  %-12s  %s\n", "--", "----", "-----", "-----", "------", "----")
	for _, r := range recs {
		fmt.Printf("  %-6d  %-6d  %-6d  %-8d  %-12s  %s\n",
			r.ID, r.BestScore, r.FinalScore, r.Ticks, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d over %d sessions\n", stats.BestScore, stats.Count)
	}
	return nil
}
