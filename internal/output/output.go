// Package output provides consistent CLI output formatting for search
// reports and status messages.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/parseek/parseek/internal/search"
)

// Writer provides formatted output for the CLI.
type Writer struct {
	out    io.Writer
	styles Styles
}

// New creates a Writer. Colors are enabled only when out is a terminal and
// NO_COLOR is unset.
func New(out io.Writer) *Writer {
	styles := NoColorStyles()
	if f, ok := out.(*os.File); ok && os.Getenv("NO_COLOR") == "" {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			styles = DefaultStyles()
		}
	}
	return &Writer{out: out, styles: styles}
}

// NewPlain creates a Writer that never colors, regardless of terminal.
func NewPlain(out io.Writer) *Writer {
	return &Writer{out: out, styles: NoColorStyles()}
}

// Success prints a success message.
func (w *Writer) Success(msg string) {
	_, _ = fmt.Fprintf(w.out, "%s\n", w.styles.Success.Render("✓ "+msg))
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	_, _ = fmt.Fprintf(w.out, "%s\n", w.styles.Warning.Render("! "+msg))
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (w *Writer) Error(msg string) {
	_, _ = fmt.Fprintf(w.out, "%s\n", w.styles.Error.Render("✗ "+msg))
}

// Errorf prints a formatted error message.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}

// Report renders a search report. Keywords are printed in their original
// request order; showFiles controls whether each matching file is listed
// under its keyword.
func (w *Writer) Report(report *search.Report, keywords []string, showFiles bool) {
	header := fmt.Sprintf("Scanned %d files with %d workers (%s) in %s",
		report.FilesScanned, report.Workers, report.Mode, report.Elapsed.Round(time.Microsecond))
	_, _ = fmt.Fprintf(w.out, "%s\n", w.styles.Header.Render(header))

	if report.FilesSkipped > 0 {
		w.Warningf("%d files could not be read and were skipped", report.FilesSkipped)
	}

	for _, kw := range keywords {
		files := report.Results[kw]
		line := fmt.Sprintf("  %s %s",
			w.styles.Keyword.Render(kw),
			w.styles.Count.Render(fmt.Sprintf("found in %d files", len(files))))
		_, _ = fmt.Fprintf(w.out, "%s\n", line)

		if showFiles {
			for _, f := range files {
				_, _ = fmt.Fprintf(w.out, "    %s %s\n",
					w.styles.Dim.Render("-"), w.styles.File.Render(f))
			}
		}
	}
}
