// Package output prints check results with colored status labels.
package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/warg-sh/launcher/pkg/check"
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

// PrintResult outputs a check result with colored status. Details are
// indented to align under the result name.
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

// formatLabel dims a leading "label:" prefix in a detail line.
func formatLabel(s string) string {
	if i := strings.Index(s, ": "); i >= 0 {
		return dim + s[:i+1] + reset + s[i+1:]
	}
	return s
}
