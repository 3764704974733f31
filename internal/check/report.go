package check

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	locColor  = color.New(color.Faint)
)

// Report writes a summary of r to w: one line per result in the tree,
// followed by the failed outcomes with their locations, and a final tally.
// Colors follow color.NoColor.
func (r *Result) Report(w io.Writer) error {
	if err := r.report(w, 0); err != nil {
		return err
	}
	verdict := passColor.Sprint("ok")
	if !r.Passed() {
		verdict = failColor.Sprint("FAILED")
	}
	_, err := fmt.Fprintf(w, "%s: %d checks, %d failed\n", verdict, r.Count(), r.Failures())
	return err
}

func (r *Result) report(w io.Writer, depth int) error {
	indent := strings.Repeat("  ", depth)
	status := passColor.Sprint("PASS")
	if !r.Passed() {
		status = failColor.Sprint("FAIL")
	}
	if _, err := fmt.Fprintf(w, "%s%s %s (%d checks)\n", indent, status, r.Name, r.Count()); err != nil {
		return err
	}
	for _, o := range r.outcomes {
		if o.Passed {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s  %s %s\n", indent, locColor.Sprint(o.Location+":"), o.Message); err != nil {
			return err
		}
	}
	for _, child := range r.children {
		if err := child.report(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}
