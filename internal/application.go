package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/config"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/crawler"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/pagerank"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/service"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/usecase"
)

// RunPageRank - ranks the corpus in dir with both estimators and prints the results to out.
func RunPageRank(ctx context.Context, logger *slog.Logger, conf *config.Config, dir string, out io.Writer) error {
	log := logger.With("component", "app")

	rankingUseCase := usecase.NewRankingUseCase(logger, crawler.New(logger), conf.PageRank)

	report, err := rankingUseCase.Rank(ctx, dir)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	if err = printRanks(out, fmt.Sprintf("PageRank Results from Sampling (n = %d)", report.Samples), report.Sampled); err != nil {
		return err
	}

	if err = printRanks(out, "PageRank Results from Iteration", report.Iterated); err != nil {
		return err
	}

	log.Info("ranking done", "pages", len(report.Iterated))

	return nil
}

// RunTicTacToe - analyses the board given in notation (the empty board when
// blank) and prints the result to out. With selfPlay the game is played out.
func RunTicTacToe(logger *slog.Logger, notation string, selfPlay bool, out io.Writer) error {
	board := tictactoe.InitialPosition()
	if notation != "" {
		parsed, err := entity.ParseBoard(notation)
		if err != nil {
			return fmt.Errorf("could not read board: %w", err)
		}
		board = parsed
	}

	gameUseCase := usecase.NewGameUseCase(logger, service.NewBotService())

	if selfPlay {
		positions, err := gameUseCase.SelfPlay(board)
		if err != nil {
			return fmt.Errorf("self play failed: %w", err)
		}

		for turn, position := range positions {
			if _, err = fmt.Fprintf(out, "%d: %s\n", turn, position); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}

		return printOutcome(out, tictactoe.Outcome(positions[len(positions)-1]))
	}

	analysis, err := gameUseCase.Analyze(board)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analysis.BestMove == nil {
		if _, err = fmt.Fprintf(out, "Board: %s\n", analysis.Board); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return printOutcome(out, analysis.Outcome)
	}

	_, err = fmt.Fprintf(out, "Board: %s\nTurn: %s\nValue: %d\nBest move: %s\n",
		analysis.Board, analysis.Turn, analysis.Value, analysis.BestMove)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func printRanks(out io.Writer, title string, ranks pagerank.Ranks) error {
	if _, err := fmt.Fprintln(out, title); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	for _, page := range ranks.Pages() {
		if _, err := fmt.Fprintf(out, "  %s: %.4f\n", page, ranks[page]); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return nil
}

func printOutcome(out io.Writer, outcome string) error {
	var line string
	switch outcome {
	case entity.PlayerTie:
		line = "Result: tie"
	case "":
		line = "Result: ongoing"
	default:
		line = "Result: " + outcome + " wins"
	}

	if _, err := fmt.Fprintln(out, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
