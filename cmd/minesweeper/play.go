package main

import (
	"bufio"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bytetrail/minesweeper-go/internal/config"
	"github.com/bytetrail/minesweeper-go/internal/game"
)

const banner = `
Minesweeper CLI
----------------------------------------
A simple testbed for the game logic.

Commands:
----------------------------------------
x       Exit
r       Restart
u[x,y]  Uncover a cell at the coordinates
f[x,y]  Flag a mine at the coordinates
?[x,y]  Mark a cell as uncertain
c[x,y]  Clear a mark
`

type boardFlags struct {
	width, height int
	seed          uint64
	tuningPath    string
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", config.BoardWidth(), "board width in cells")
	cmd.Flags().IntVar(&f.height, "height", config.BoardHeight(), "board height in cells")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (0 seeds from entropy)")
	cmd.Flags().StringVar(&f.tuningPath, "tuning", "", "mine density tuning YAML file")
}

func (f *boardFlags) board() (*game.Board, error) {
	tuning, err := config.LoadTuning(f.tuningPath)
	if err != nil {
		return nil, err
	}
	return game.NewTuned(f.width, f.height, tuning, createRand(f.seed))
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func newPlayCmd() *cobra.Command {
	var flags boardFlags
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := flags.board()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", banner)
			return play(cmd, board)
		},
	}
	flags.register(cmd)
	return cmd
}

func play(cmd *cobra.Command, board *game.Board) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprintf(out, "%s\nmines remaining: %d [%s]\n", board, board.Remaining(), board.State())
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch input {
		case "x":
			return nil
		case "r":
			board.Reset()
			continue
		}

		op, x, y, err := parseCommand(input)
		if err != nil {
			log.Warn(err)
			continue
		}
		switch op {
		case 'u':
			var phase game.Phase
			phase, err = board.Uncover(x, y)
			if err == nil && phase == game.Lost {
				board.ShowMined()
				fmt.Fprintf(out, "%s\nboom! you lost\n", board)
				return nil
			}
		case 'f':
			err = board.Flag(x, y)
		case '?':
			err = board.Question(x, y)
		case 'c':
			err = board.SetUnknown(x, y)
		}
		if err != nil {
			log.Warn(err)
		}
	}
}

// parseCommand splits an input like "u[2,3]" into its op and coordinates.
func parseCommand(input string) (op byte, x, y int, err error) {
	if len(input) < 2 {
		return 0, 0, 0, fmt.Errorf("invalid command %q", input)
	}
	op = input[0]
	switch op {
	case 'u', 'f', '?', 'c':
	default:
		return 0, 0, 0, fmt.Errorf("unknown command %q", input)
	}

	rest := input[1:]
	if !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") {
		return 0, 0, 0, fmt.Errorf("invalid coordinates in %q", input)
	}
	parts := strings.Split(rest[1:len(rest)-1], ",")
	if len(parts) != 2 {
		return 0, 0, 0, fmt.Errorf("invalid coordinates in %q", input)
	}
	x, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err == nil {
		y, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid coordinates in %q", input)
	}
	return op, x, y, nil
}
