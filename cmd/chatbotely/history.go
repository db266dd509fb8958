package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sant0-9/chatbotely/internal/transcript"
)

var (
	historySession string
	historyLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded sessions, or the turns of one session",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historySession, "session", "s", "", "show the turns of this session")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of rows")
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, err := cfg.TranscriptPath()
	if err != nil {
		return err
	}

	store, err := transcript.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	w := cmd.OutOrStdout()
	ctx := cmd.Context()

	if historySession == "" {
		sessions, err := store.Sessions(ctx, historyLimit)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Fprintln(w, "No sessions recorded yet. Enable transcript to start recording.")
			return nil
		}
		for _, s := range sessions {
			fmt.Fprintf(w, "%s  %3d turns  last %s\n", s.ID, s.Turns, s.LastAt.Format(time.DateTime))
		}
		return nil
	}

	turns, err := store.Recent(ctx, historySession, historyLimit)
	if err != nil {
		return err
	}
	for _, t := range turns {
		fmt.Fprintf(w, "[%s] > %s\n", t.CreatedAt.Format(time.DateTime), t.Input)
		fmt.Fprintf(w, "    %s  (%s)\n", t.Reply, strings.Join(t.Intents, ", "))
	}
	return nil
}
