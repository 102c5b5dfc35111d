package output

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	SetNoColor(true)

	tbl := NewTable("RUN", "NS/OP")
	tbl.AddRow("1", "42.10")
	tbl.AddRow("2", "39.85")

	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "RUN") || !strings.Contains(lines[0], "NS/OP") {
		t.Errorf("header row missing columns: %q", lines[0])
	}
	if !strings.Contains(lines[2], "42.10") {
		t.Errorf("data row missing value: %q", lines[2])
	}
}

func TestTableAlignRight(t *testing.T) {
	SetNoColor(true)

	tbl := NewTable("ID", "VALUE").AlignRight(1)
	tbl.AddRow("1", "9")
	tbl.AddRow("2", "1234.56")

	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Short numeric cell should be padded on the left up to column width.
	if !strings.HasSuffix(lines[2], "      9") {
		t.Errorf("right-aligned cell not padded left: %q", lines[2])
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	tbl := NewTable()
	if out := tbl.Render(); out != "" {
		t.Errorf("empty table rendered %q", out)
	}
}

func TestTrendArrow(t *testing.T) {
	SetNoColor(true)

	if got := TrendArrow(0, false); got != "─" {
		t.Errorf("zero delta = %q, want dash", got)
	}
	if got := TrendArrow(-2.5, false); !strings.Contains(got, "▼ -2.50") {
		t.Errorf("improvement arrow = %q", got)
	}
	if got := TrendArrow(1.25, false); !strings.Contains(got, "▲ +1.25") {
		t.Errorf("regression arrow = %q", got)
	}
}
