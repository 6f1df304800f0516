package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var printerPrefixColor = color.New(color.FgRed, color.Bold)

// Printer writes each report to out as soon as it arrives, in the
// classic "tool: source: error" shape.
type Printer struct {
	out      io.Writer
	tool     string
	colorize bool
}

func NewPrinter(out io.Writer, tool string, colorize bool) *Printer {
	return &Printer{out: out, tool: tool, colorize: colorize}
}

// Report реализует интерфейс Reporter.
func (p *Printer) Report(name string, err error) {
	prefix := p.tool
	if p.colorize {
		prefix = printerPrefixColor.Sprint(p.tool)
	}
	if name == "" {
		fmt.Fprintf(p.out, "%s: %v\n", prefix, err)
		return
	}
	fmt.Fprintf(p.out, "%s: %s: %v\n", prefix, name, err)
}
