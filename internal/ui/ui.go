// Package ui holds terminal colors and table rendering for the routeopt shell.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/katalvlaran/routeopt/core"
	"github.com/katalvlaran/routeopt/matrix"
)

// Palette
var (
	Brand   = color.New(color.FgHiCyan, color.Bold)
	Subtle  = color.New(color.FgHiBlack)
	Warn    = color.New(color.FgYellow)
	Good    = color.New(color.FgGreen)
	Bad     = color.New(color.FgRed)
	Virtual = color.New(color.FgHiRed, color.Italic)
)

// Table writes an aligned table. style, when non-nil, colors whole rows.
func Table(w io.Writer, headers []string, rows [][]string, style func(row int) *color.Color) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := len([]rune(cell)); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}

	var head, sep strings.Builder
	head.WriteString("  ")
	sep.WriteString("  ")
	for i, h := range headers {
		head.WriteString(pad(h, widths[i]) + "  ")
		sep.WriteString(strings.Repeat("─", widths[i]) + "  ")
	}
	fmt.Fprintln(w, Subtle.Sprint(strings.TrimRight(head.String(), " ")))
	fmt.Fprintln(w, Subtle.Sprint(strings.TrimRight(sep.String(), " ")))

	for r, row := range rows {
		var line strings.Builder
		line.WriteString("  ")
		for i, cell := range row {
			if i < len(widths) {
				line.WriteString(pad(cell, widths[i]) + "  ")
			}
		}
		text := strings.TrimRight(line.String(), " ")
		if style != nil {
			if c := style(r); c != nil {
				text = c.Sprint(text)
			}
		}
		fmt.Fprintln(w, text)
	}
}

// pad right-pads s to n runes.
func pad(s string, n int) string {
	if k := n - len([]rune(s)); k > 0 {
		return s + strings.Repeat(" ", k)
	}

	return s
}

// Cost renders a distance; Inf prints as "∞". human groups thousands.
func Cost(v int64, human bool) string {
	switch {
	case matrix.IsInf(v):
		return "∞"
	case human:
		return humanize.Comma(v)
	default:
		return core.FormatWeight(v)
	}
}
