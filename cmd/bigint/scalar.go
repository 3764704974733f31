package main

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"bigint/internal/bignum"
)

func newScalarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scalar <n> add|mul|div <v>",
		Short: "Apply a machine-integer operation to a big integer",
		Long: `scalar applies a single-limb operation to n.

  add  adds a non-negative v below 2^32
  mul  multiplies by a signed v whose magnitude is below 2^32
  div  divides by a signed non-zero v, printing quotient and remainder`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := readOperand(args[0])
			if err != nil {
				return err
			}
			v, err := strconv.Atoi(args[2])
			if err != nil {
				return errors.Wrapf(err, "invalid scalar %q", args[2])
			}
			out := cmd.OutOrStdout()
			switch args[1] {
			case "add":
				u, err := safecast.Conv[bignum.Limb](v)
				if err != nil {
					return errors.Mark(errors.Wrapf(err, "add %d", v), bignum.ErrScalarRange)
				}
				_, err = fmt.Fprintln(out, x.AddUint32(u))
				return err
			case "mul":
				p, err := x.MulInt(v)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, p)
				return err
			case "div":
				q, rem, err := x.DivInt(v)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "%s remainder %d\n", q, rem)
				return err
			default:
				return errors.Newf("unknown operation %q (expected add, mul or div)", args[1])
			}
		},
	}
}
