package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var flags boardFlags
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Generate a board and print its ground truth",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := flags.board()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for y := range board.Height() {
				for x := range board.Width() {
					mined, err := board.HasMine(x, y)
					if err != nil {
						return err
					}
					if mined {
						fmt.Fprint(out, "* ")
					} else {
						fmt.Fprint(out, "- ")
					}
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%dx%d, %d mines\n", board.Width(), board.Height(), board.Total())
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
