package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bigint/internal/bignum"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build a few sample values and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(out io.Writer) error {
	a := bignum.MustParse("-123456789")
	b := bignum.MustParse("2")
	big := bignum.MustParse("92837508234109812317501984209810928409182094187192")

	lines := []struct {
		label string
		value fmt.Stringer
	}{
		{"a", a},
		{"b", b},
		{"a * b", bignum.Mul(a, b)},
		{"a * a", bignum.Mul(a, a)},
		{"2^64", bignum.Pow2(64)},
		{"big * big", bignum.Mul(big, big)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(out, "%-10s %s\n", l.label, l.value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "%-10s %s\n", "cmp(a, b)", cmpSymbol(bignum.Cmp(a, b)))
	return err
}
