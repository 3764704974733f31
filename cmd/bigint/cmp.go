package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bigint/internal/bignum"
)

func newCmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Compare two integers, printing <, = or >",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := readOperands(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cmpSymbol(bignum.Cmp(operands[0], operands[1])))
			return err
		},
	}
}

func cmpSymbol(c int) string {
	switch {
	case c < 0:
		return "<"
	case c > 0:
		return ">"
	default:
		return "="
	}
}
