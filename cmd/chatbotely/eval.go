package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sant0-9/chatbotely/internal/label"
	"github.com/sant0-9/chatbotely/internal/pipeline"
)

var evalCmd = &cobra.Command{
	Use:   "eval [sentence...]",
	Short: "Show labels, intents and replies for sample sentences",
	Long: `Runs each sentence through the bot and prints the token labels the
labeler assigned, the classified intent and the reply. Without arguments
the sample sentences of the corpus are used.`,
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	inputs := args
	if len(inputs) == 0 {
		cp, err := loadCorpus(cfg)
		if err != nil {
			return err
		}
		inputs = cp.Samples
	}

	b, err := newBot(cfg, logger)
	if err != nil {
		return err
	}
	defer b.Close()

	b.pipeline.SetProgressCallback(func(p pipeline.Progress) {
		logger.Debug(p.Message,
			zap.String("stage", p.Stage.String()),
			zap.Int("item", p.ItemIndex),
			zap.Int("total", p.TotalItems),
		)
	})

	w := cmd.OutOrStdout()
	for _, in := range inputs {
		res, err := b.pipeline.Process(cmd.Context(), in)
		if errors.Is(err, pipeline.ErrEmptyInput) {
			fmt.Fprintf(w, "%q: no reply\n\n", in)
			continue
		}
		if err != nil {
			return err
		}
		printResult(w, in, res)
	}
	return nil
}

func printResult(w io.Writer, input string, res *pipeline.Result) {
	fmt.Fprintf(w, "%q\n", input)
	for _, s := range res.Sentences {
		fmt.Fprintf(w, "  %s\n", formatTokens(s.Tokens))
		fmt.Fprintf(w, "  intent: %s\n", s.Intent)
		if s.Fault != nil {
			fmt.Fprintf(w, "  fault:  %v\n", s.Fault)
		}
		fmt.Fprintf(w, "  reply:  %s\n", s.Response)
	}
	fmt.Fprintln(w)
}

// formatTokens renders (text, label, head) triples
func formatTokens(tokens []label.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		head := t.Text
		if t.Head >= 0 && t.Head < len(tokens) {
			head = tokens[t.Head].Text
		}
		parts[i] = fmt.Sprintf("(%s, %s, %s)", t.Text, t.Label, head)
	}
	return strings.Join(parts, " ")
}
