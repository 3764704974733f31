package main

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"bigint/internal/bignum"
)

type parseReport struct {
	Input  string        `json:"input"`
	Value  string        `json:"value"`
	Sign   int           `json:"sign"`
	Digits int           `json:"digits"`
	Limbs  []bignum.Limb `json:"limbs"`
}

func newParseCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "parse <n>...",
		Short: "Parse decimal integers and show their limb layout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			reports := make([]parseReport, 0, len(args))
			for _, arg := range args {
				x, err := readOperand(arg)
				if err != nil {
					return err
				}
				reports = append(reports, parseReport{
					Input:  arg,
					Value:  x.String(),
					Sign:   x.Sign(),
					Digits: x.DecimalDigits(),
					Limbs:  x.Limbs(),
				})
			}
			switch strings.ToLower(format) {
			case "text":
				return renderParseText(cmd.OutOrStdout(), reports)
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(reports)
			default:
				return errors.Newf("unsupported format %q (must be text or json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json)")
	return cmd
}

func renderParseText(out io.Writer, reports []parseReport) error {
	p := message.NewPrinter(language.English)
	for _, r := range reports {
		if _, err := p.Fprintf(out, "%s\n  sign %d, %d digits, %d limbs:", r.Value, r.Sign, r.Digits, len(r.Limbs)); err != nil {
			return err
		}
		// most significant first, like the decimal form
		for i := len(r.Limbs) - 1; i >= 0; i-- {
			if _, err := p.Fprintf(out, " %08x", r.Limbs[i]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}
