package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sant0-9/chatbotely/internal/annotate"
)

var trainOut string

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the labeler from the corpus and save it",
	Long: `Counts how each word of the training corpus is labeled and saves the
resulting model. Point model_path at the output to skip training at startup.`,
	Args: cobra.NoArgs,
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().StringVarP(&trainOut, "out", "o", "", "output path (default is model_path, then ~/.config/chatbotely/labeler.msgpack)")
}

func runTrain(cmd *cobra.Command, args []string) error {
	cp, err := loadCorpus(cfg)
	if err != nil {
		return err
	}

	model, err := annotate.Train(cp)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	out := trainOut
	if out == "" {
		out = cfg.ModelPath
	}
	if out == "" {
		out, err = defaultModelPath()
		if err != nil {
			return err
		}
	}

	if err := model.SaveFile(out); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}

	logger.Info("model trained",
		zap.Int("examples", model.Examples),
		zap.Int("vocabulary", model.Vocabulary()),
		zap.String("path", out),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Trained on %d examples (%d words), saved to %s\n",
		model.Examples, model.Vocabulary(), out)
	return nil
}
