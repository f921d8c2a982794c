// Command jungle-search is a thin demonstration front door around
// internal/engine: it reads a board position from a TOML file and prints
// the chosen move and search diagnostics. It is not part of the engine's
// external interface (that is the flat-vector codec) — a real host embeds
// internal/engine directly, the way the teacher's cmd/chessplay-uci wraps
// its engine package for a human-operable front end instead.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/riftgg/junglesearch/internal/board"
	"github.com/riftgg/junglesearch/internal/engine"
)

type pieceSpec struct {
	Type  string `toml:"type"`
	Owner int    `toml:"owner"`
	Row   int    `toml:"row"`
	Col   int    `toml:"col"`
}

type positionFile struct {
	MaxDepth    int         `toml:"max_depth"`
	TimeLimitMs int         `toml:"time_limit_ms"`
	Pieces      []pieceSpec `toml:"pieces"`
}

var pieceTypeByName = map[string]board.PieceType{
	"Rat": board.Rat, "Cat": board.Cat, "Dog": board.Dog, "Wolf": board.Wolf,
	"Leopard": board.Leopard, "Tiger": board.Tiger, "Lion": board.Lion, "Elephant": board.Elephant,
}

const (
	defaultMaxDepth    = 8
	defaultTimeLimitMs = 2000
)

// loadPosition decodes a TOML position file into a Board plus the search
// budgets for this run, defaulting anything the file omits.
func loadPosition(path string) (*board.Board, int, time.Duration, error) {
	var pf positionFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return nil, 0, 0, fmt.Errorf("decode position file: %w", err)
	}

	b := board.NewEmptyBoard()
	for _, p := range pf.Pieces {
		pt, ok := pieceTypeByName[p.Type]
		if !ok {
			return nil, 0, 0, fmt.Errorf("unknown piece type %q", p.Type)
		}
		b.SetPiece(p.Row, p.Col, board.Piece{Type: pt, Owner: board.Player(p.Owner)})
	}

	maxDepth := pf.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	timeLimitMs := pf.TimeLimitMs
	if timeLimitMs <= 0 {
		timeLimitMs = defaultTimeLimitMs
	}

	return b, maxDepth, time.Duration(timeLimitMs) * time.Millisecond, nil
}

func main() {
	var positionPath string
	var verbose bool

	root := &cobra.Command{
		Use:   "jungle-search",
		Short: "Find the best Jungle (Dou Shou Qi) move for a board position",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

			b, maxDepth, timeLimit, err := loadPosition(positionPath)
			if err != nil {
				return err
			}

			eng := engine.NewEngine(engine.DefaultConfig())
			res := eng.FindBestMove(b, maxDepth, timeLimit)

			if !res.Found {
				log.Warn().Int("status", res.Status).Msg("no legal move for Player1")
				return nil
			}

			log.Info().
				Int("from_row", res.FromRow).Int("from_col", res.FromCol).
				Int("to_row", res.ToRow).Int("to_col", res.ToCol).
				Str("piece", res.PieceType.String()).
				Int("depth", res.DepthReached).
				Uint64("nodes", res.Nodes).
				Int("score", res.Score).
				Msg("best move")
			return nil
		},
	}

	root.Flags().StringVarP(&positionPath, "position", "p", "", "path to a TOML position file")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = root.MarkFlagRequired("position")

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("jungle-search failed")
	}
}
