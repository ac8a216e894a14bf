package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/routeopt/internal/ui"
	"github.com/katalvlaran/routeopt/route"
	"github.com/katalvlaran/routeopt/sim"
)

// printResult renders the route log table followed by the summary line.
func printResult(w io.Writer, res sim.Result, human bool) {
	rows := make([][]string, 0, len(res.Log))
	for _, e := range res.Log {
		rows = append(rows, []string{
			strconv.Itoa(e.Step),
			e.From,
			e.To,
			ui.Cost(e.Cost, human),
			e.Kind.String(),
		})
	}
	ui.Table(w, []string{"#", "From", "To", "Cost", "Kind"}, rows, func(r int) *color.Color {
		if res.Log[r].Kind == route.Virtual {
			return ui.Virtual
		}
		return nil
	})

	if len(rows) > 0 {
		fmt.Fprintln(w)
	}
	switch res.Status {
	case sim.StatusSuccess:
		fmt.Fprintf(w, "  %s %s\n", ui.Good.Sprint("✓"), "Total Cost: "+ui.Cost(res.TotalCost, human))
	case sim.StatusUnreachable:
		fmt.Fprintf(w, "  %s %s\n", ui.Bad.Sprint("✗"), res.Summary())
		if len(res.Islands) > 1 {
			parts := make([]string, len(res.Islands))
			for i, isl := range res.Islands {
				parts[i] = "{" + strings.Join(isl, " ") + "}"
			}
			fmt.Fprintln(w, ui.Subtle.Sprintf("    %d disconnected groups: %s", len(res.Islands), strings.Join(parts, " ")))
		}
	default:
		fmt.Fprintf(w, "  %s %s\n", ui.Warn.Sprint("⚠"), res.Summary())
	}
}
