package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sant0-9/chatbotely/internal/pipeline"
	"github.com/sant0-9/chatbotely/internal/transcript"
)

var askSession string

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Answer a single message and exit",
	Long: `Runs one message through the bot and prints the reply.
Nothing is printed when the message has no words in it.

Example:
  chatbotely ask "hi. tell me a quote"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askSession, "session", "", "session ID to record the turn under")
}

func runAsk(cmd *cobra.Command, args []string) error {
	b, err := newBot(cfg, logger)
	if err != nil {
		return err
	}
	defer b.Close()

	input := strings.Join(args, " ")
	ctx := cmd.Context()

	res, err := b.pipeline.Process(ctx, input)
	if errors.Is(err, pipeline.ErrEmptyInput) {
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Reply)

	if b.store != nil {
		session := askSession
		if session == "" {
			session = transcript.NewSessionID()
		}
		intents := make([]string, len(res.Sentences))
		for i, s := range res.Sentences {
			intents[i] = s.Intent.String()
		}
		turn := transcript.Turn{SessionID: session, Input: input, Reply: res.Reply, Intents: intents}
		if err := b.store.Append(ctx, turn); err != nil {
			logger.Warn("failed to record turn", zap.Error(err))
		}
	}
	return nil
}
