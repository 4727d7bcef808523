package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-pagerank/internal"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/config"
)

var (
	configPath string
	seed       int64
	selfPlay   bool

	conf   *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "tictactoe-pagerank",
	Short:         "Perfect tic-tac-toe play and PageRank estimation",
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("unable to load config: %w", err)
		}

		if cmd.Flags().Changed("seed") {
			loaded.PageRank.Seed = seed
		}

		conf = loaded
		logger = initLogger(conf)

		// arguments are valid by now; later failures are not usage errors
		cmd.SilenceUsage = true

		return nil
	},
}

var pageRankCmd = &cobra.Command{
	Use:   "pagerank CORPUS",
	Short: "Rank the HTML pages of a corpus directory",
	Long: `Rank every .html page in CORPUS by sampling a random surfer and by
iterating the PageRank equation until it converges.

Examples:
  tictactoe-pagerank pagerank corpus0
  tictactoe-pagerank pagerank corpus0 --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return app.RunPageRank(ctx, logger, conf, args[0], cmd.OutOrStdout())
	},
}

var ticTacToeCmd = &cobra.Command{
	Use:   "tictactoe [BOARD]",
	Short: "Find the optimal move for a tic-tac-toe position",
	Long: `Analyse BOARD with a full minimax search. BOARD lists the rows from
top to bottom separated by '/', with '_' for an empty cell. Without BOARD the
empty board is analysed.

Examples:
  tictactoe-pagerank tictactoe
  tictactoe-pagerank tictactoe XOX/XOO/___
  tictactoe-pagerank tictactoe X_O/_X_/___ --self-play`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notation := ""
		if len(args) == 1 {
			notation = args[0]
		}

		return app.RunTicTacToe(logger, notation, selfPlay, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yml", "path to the config file")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "seed for the sampling estimator (0 seeds from the clock)")

	ticTacToeCmd.Flags().BoolVar(&selfPlay, "self-play", false, "play the game to the end with both sides moving optimally")

	rootCmd.AddCommand(pageRankCmd, ticTacToeCmd)
}

// main - is the entry point of the application. It dispatches to the subcommands.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
