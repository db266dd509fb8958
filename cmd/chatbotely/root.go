package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sant0-9/chatbotely/internal/config"
	"github.com/sant0-9/chatbotely/internal/tui"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:     "chatbotely",
	Short:   "A small rule-based chatbot",
	Version: version,
	Long: `chatbotely answers greetings, farewells, requests for quotes and songs,
and questions about how it is doing. Each sentence of a message is labeled,
classified and answered on its own, and the answers are joined together.

Run without arguments to start the interactive chat.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}

		// The chat UI owns the terminal, so it only logs to a file
		interactive := cmd == cmd.Root()
		logger, err = buildLogger(cfg, interactive)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/chatbotely/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Uint64("seed", 0, "seed for reply selection (0 picks a random seed)")
	rootCmd.PersistentFlags().String("model", "", "path to a trained labeler model")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("transcript", false, "record conversation turns")

	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("model_path", rootCmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("transcript.enabled", rootCmd.PersistentFlags().Lookup("transcript"))

	rootCmd.AddCommand(askCmd, serveCmd, trainCmd, evalCmd, historyCmd)
}

// initConfig lets CHATBOTELY_* environment variables override the file
func initConfig() {
	viper.SetEnvPrefix("CHATBOTELY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the YAML config over the defaults, then applies flag
// and environment overrides
func loadConfig() (*config.Config, error) {
	var (
		c   *config.Config
		err error
	)
	if cfgFile != "" {
		c, err = config.LoadFile(cfgFile)
	} else {
		c, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if c == nil {
		c = config.DefaultConfig()
	}

	applyOverrides(c)
	return c, nil
}

func applyOverrides(c *config.Config) {
	if viper.IsSet("lexicon_path") {
		c.LexiconPath = viper.GetString("lexicon_path")
	}
	if viper.IsSet("corpus_path") {
		c.CorpusPath = viper.GetString("corpus_path")
	}
	if viper.IsSet("model_path") {
		c.ModelPath = viper.GetString("model_path")
	}
	if viper.IsSet("seed") {
		c.Seed = viper.GetUint64("seed")
	}
	if viper.IsSet("annotate_timeout") {
		c.AnnotateTimeout = viper.GetDuration("annotate_timeout")
	}
	if viper.IsSet("cache_size") {
		c.CacheSize = viper.GetInt("cache_size")
	}
	if viper.IsSet("transcript.enabled") {
		c.Transcript.Enabled = viper.GetBool("transcript.enabled")
	}
	if viper.IsSet("transcript.path") {
		c.Transcript.Path = viper.GetString("transcript.path")
	}
	if viper.IsSet("server.addr") {
		c.Server.Addr = viper.GetString("server.addr")
	}
	if viper.IsSet("server.mode") {
		c.Server.Mode = viper.GetString("server.mode")
	}
	if viper.IsSet("server.rate_limit_per_min") {
		c.Server.RateLimitPerMin = viper.GetInt("server.rate_limit_per_min")
	}
	if viper.IsSet("log.level") {
		c.Log.Level = viper.GetString("log.level")
	}
	if viper.IsSet("log.file") {
		c.Log.File = viper.GetString("log.file")
	}
}

func buildLogger(c *config.Config, interactive bool) (*zap.Logger, error) {
	if interactive && c.Log.File == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	if c.Log.Level != "" {
		level, err := zapcore.ParseLevel(c.Log.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if c.Log.File != "" {
		zc.OutputPaths = []string{c.Log.File}
		zc.ErrorOutputPaths = []string{c.Log.File}
	}
	return zc.Build()
}

func runChat() error {
	b, err := newBot(cfg, logger)
	if err != nil {
		return err
	}
	defer b.Close()

	app := tui.NewApp(tui.Options{
		Responder: b.pipeline,
		Recorder:  b.recorder(),
		Config:    cfg,
		Logger:    logger,
	})
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
