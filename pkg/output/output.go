// Package output renders check results and reports for the terminal.
package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/m101tools/setupcheck/pkg/check"
	"github.com/m101tools/setupcheck/pkg/report"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult outputs a check result with colored status.
func PrintResult(r check.Result) {
	if r.OK() {
		fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
		for _, d := range r.Details {
			fmt.Printf("     %s\n", formatLabel(d))
		}
	} else {
		fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
		for _, d := range r.Details {
			fmt.Printf("       %s\n", formatLabel(d))
		}
	}
}

// PrintReport outputs every entry of a report followed by a summary line.
func PrintReport(rep *report.Report) {
	for _, e := range rep.Entries() {
		PrintResult(e.Result)
	}

	s := rep.Overall()
	color := green
	if s.Failed > 0 {
		color = red
	}
	fmt.Printf("\n%s%d checks, %d passed, %d failed%s\n", color, rep.Len(), s.Passed, s.Failed, reset)
}

// formatLabel dims a leading "label:" prefix in a detail line.
func formatLabel(detail string) string {
	if dim == "" {
		return detail
	}
	idx := strings.Index(detail, ": ")
	if idx < 0 {
		return detail
	}
	return dim + detail[:idx+1] + reset + detail[idx+1:]
}
