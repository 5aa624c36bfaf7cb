package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// out receives all devtool output. Tests swap it for a buffer.
var out io.Writer = os.Stdout

// colorEnabled honours the NO_COLOR convention.
var colorEnabled = os.Getenv("NO_COLOR") == ""

func paint(color, marker, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if !colorEnabled {
		fmt.Fprintf(out, "%s %s\n", marker, msg)
		return
	}
	fmt.Fprintf(out, "%s%s %s%s\n", color, marker, msg, colorReset)
}

func PrintInfo(format string, a ...interface{}) {
	paint(colorBlue, "ℹ", format, a...)
}

func PrintSuccess(format string, a ...interface{}) {
	paint(colorGreen, "✓", format, a...)
}

func PrintWarning(format string, a ...interface{}) {
	paint(colorYellow, "⚠", format, a...)
}

func PrintError(format string, a ...interface{}) {
	paint(colorRed, "✗", format, a...)
}

func PrintHeader(title string) {
	if !colorEnabled {
		fmt.Fprintf(out, "\n=== %s ===\n", title)
		return
	}
	fmt.Fprintf(out, "\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}

// table renders aligned columns for simulation and migration reports.
type table struct {
	w *tabwriter.Writer
}

func newTable(headers ...string) *table {
	t := &table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
	t.Row(headers...)
	return t
}

func (t *table) Row(cells ...string) {
	fmt.Fprintln(t.w, strings.Join(cells, "\t"))
}

func (t *table) Flush() {
	t.w.Flush()
}
