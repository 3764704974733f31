package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bigint/internal/bignum"
	"bigint/internal/trace"
)

func newMulCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "mul <a> <b>...",
		Short: "Multiply integers (operands may be @file msgpack values)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			done := a.timer.Start("read")
			operands, err := readOperands(args)
			if err != nil {
				return err
			}
			done(strconv.Itoa(len(operands)) + " operands")

			ctx := cmd.Context()
			tracer := trace.FromContext(ctx)
			done = a.timer.Start("multiply")
			product := operands[0]
			for _, x := range operands[1:] {
				span := trace.Begin(tracer, trace.ScopeOp, "mul", trace.ParentSpan(ctx)).
					WithExtra("limbs", strconv.Itoa(product.Len())+"x"+strconv.Itoa(x.Len()))
				product = bignum.Mul(product, x)
				span.End("")
			}
			done(strconv.Itoa(product.Len()) + " limbs")

			if out != "" {
				done = a.timer.Start("write")
				if err := writeOperand(out, product); err != nil {
					return err
				}
				done(out)
			}
			done = a.timer.Start("format")
			defer done("")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), product)
			return err
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "also write the product to this file as msgpack")
	return cmd
}
