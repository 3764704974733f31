package main

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"bigint/internal/bignum"
)

// maxPow2Exponent is the largest exponent pow2 accepts.
const maxPow2Exponent = 1 << 16

var errExponentTooLarge = errors.New("exponent too large")

func newPow2Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow2 <n>",
		Short: "Print 2^n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid exponent %q", args[0])
			}
			exp, err := safecast.Conv[uint](n)
			if err != nil {
				return errors.Wrapf(err, "exponent %d", n)
			}
			if exp > maxPow2Exponent {
				return errors.Wrapf(errExponentTooLarge, "%d > %d", exp, maxPow2Exponent)
			}
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), bignum.Pow2(exp))
			return err
		},
	}
}
