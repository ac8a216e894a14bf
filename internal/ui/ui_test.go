package ui_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/routeopt/internal/ui"
	"github.com/katalvlaran/routeopt/matrix"
)

func TestTable(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	ui.Table(&buf, []string{"#", "From"}, [][]string{{"1", "Start"}, {"2", "B"}}, nil)
	assert.Equal(t, "  #  From\n  ─  ─────\n  1  Start\n  2  B\n", buf.String())

	buf.Reset()
	ui.Table(&buf, []string{"#"}, nil, nil)
	assert.Empty(t, buf.String())
}

func TestCost(t *testing.T) {
	assert.Equal(t, "1,234,567", ui.Cost(1234567, true))
	assert.Equal(t, "1234567", ui.Cost(1234567, false))
	assert.Equal(t, "∞", ui.Cost(matrix.Inf, true))
}
