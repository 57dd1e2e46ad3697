package scaffold

import (
	"fmt"
	"io"
	"strings"

	"github.com/agentx-labs/agent-memory/internal/branding"
	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const separatorWidth = 50

var printer = message.NewPrinter(language.English)

// reporter writes status lines for a scaffold run.
type reporter struct {
	w     io.Writer
	ok    *color.Color
	fail  *color.Color
	title *color.Color
}

func newReporter(w io.Writer, useColor bool) *reporter {
	r := &reporter{
		w:     w,
		ok:    color.New(color.FgGreen, color.Bold),
		fail:  color.New(color.FgRed, color.Bold),
		title: color.New(color.FgCyan, color.Bold),
	}
	for _, c := range []*color.Color{r.ok, r.fail, r.title} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *reporter) banner(target string) {
	fmt.Fprintf(r.w, "%s %s\n", r.title.Sprintf("Initializing %s in", branding.DisplayName()), target)
	r.separator()
}

func (r *reporter) separator() {
	fmt.Fprintln(r.w, strings.Repeat("-", separatorWidth))
}

func (r *reporter) created(path string) {
	fmt.Fprintf(r.w, "  %s Created %s\n", r.ok.Sprint("[ OK ]"), path)
}

func (r *reporter) failed(err error) {
	fmt.Fprintf(r.w, "  %s %v\n", r.fail.Sprint("[FAIL]"), err)
}

func (r *reporter) summary(res *Result) {
	r.separator()
	printer.Fprintf(r.w, "Done! Created %d files", res.Created())
	if n := res.Failed(); n > 0 {
		printer.Fprintf(r.w, " (%d templates missing or failed)", n)
	}
	fmt.Fprintln(r.w)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "Next steps:")
	fmt.Fprintf(r.w, "  1. Edit the documents under %s/01-system/\n", DocsDir)
	fmt.Fprintln(r.w, "  2. Create 02-modules/mod-*.md for each business domain")
	fmt.Fprintln(r.w, "  3. Add deep-dive documents under 03-deep/ when needed")
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "Entry point: %s\n", res.EntryPoint())
}
