// Package report renders command results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/primesieve/internal/config"
)

// Printer writes headers, sections and aligned tables.
type Printer struct {
	w     io.Writer
	color bool
	plain bool
}

// New creates a Printer writing to w.
func New(w io.Writer, cfg config.OutputConfig) *Printer {
	return &Printer{
		w:     w,
		color: cfg.Color,
		plain: cfg.Format == "plain",
	}
}

// Header prints a formatted header. Plain output skips it.
func (p *Printer) Header(format string, args ...interface{}) {
	if p.plain {
		return
	}
	title := fmt.Sprintf(format, args...)
	width := VisualWidth(title) + 4
	fmt.Fprintln(p.w, strings.Repeat("=", width))
	fmt.Fprintf(p.w, "  %s\n", p.Emph(title))
	fmt.Fprintln(p.w, strings.Repeat("=", width))
}

// Section prints a section header. Plain output skips it.
func (p *Printer) Section(title string) {
	if p.plain {
		return
	}
	fmt.Fprintf(p.w, "[%s]\n", title)
	fmt.Fprintln(p.w, strings.Repeat("-", VisualWidth(title)+2))
}

// KeyValue prints an indented "key: value" line.
func (p *Printer) KeyValue(key string, value interface{}) {
	if p.plain {
		fmt.Fprintf(p.w, "%s=%v\n", key, value)
		return
	}
	fmt.Fprintf(p.w, "  %-14s %v\n", key+":", value)
}

// Table prints rows with columns padded to their widest cell. A nil header
// prints the rows alone. Plain output separates cells with a single tab and
// omits the header row.
func (p *Printer) Table(headers []string, rows [][]string) {
	if p.plain {
		for _, row := range rows {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = color.ClearCode(c)
			}
			fmt.Fprintln(p.w, strings.Join(cells, "\t"))
		}
		return
	}

	cols := len(headers)
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = VisualWidth(h)
	}
	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], VisualWidth(c))
		}
	}

	if headers != nil {
		p.row(headers, widths)
		sep := make([]string, len(headers))
		for i := range headers {
			sep[i] = strings.Repeat("-", widths[i])
		}
		p.row(sep, widths)
	}
	for _, row := range rows {
		p.row(row, widths)
	}
}

func (p *Printer) row(cells []string, widths []int) {
	var sb strings.Builder
	sb.WriteString("  ")
	for i, c := range cells {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(c)
		if i < len(cells)-1 {
			sb.WriteString(strings.Repeat(" ", widths[i]-VisualWidth(c)))
		}
	}
	fmt.Fprintln(p.w, sb.String())
}

// Good highlights a positive answer.
func (p *Printer) Good(s string) string {
	if !p.color {
		return s
	}
	return color.Green.Sprint(s)
}

// Bad highlights a negative answer or a failure.
func (p *Printer) Bad(s string) string {
	if !p.color {
		return s
	}
	return color.Red.Sprint(s)
}

// Emph emphasises a title or value.
func (p *Printer) Emph(s string) string {
	if !p.color {
		return s
	}
	return color.Cyan.Sprint(s)
}

// VisualWidth returns the terminal width of s, ignoring colour codes and
// accounting for wide characters.
func VisualWidth(s string) int {
	return runewidth.StringWidth(color.ClearCode(s))
}

// Results keeps one table row per distinct argument, in first-seen order.
type Results struct {
	rows *orderedmap.OrderedMap[string, []string]
}

// NewResults creates an empty result set.
func NewResults() *Results {
	return &Results{rows: orderedmap.NewOrderedMap[string, []string]()}
}

// Seen reports whether key already has a row.
func (r *Results) Seen(key string) bool {
	_, ok := r.rows.Get(key)
	return ok
}

// Add records the row for key unless key was already added.
func (r *Results) Add(key string, row []string) {
	if r.Seen(key) {
		return
	}
	r.rows.Set(key, row)
}

// Len returns the number of distinct keys.
func (r *Results) Len() int {
	return r.rows.Len()
}

// Rows returns the recorded rows in insertion order.
func (r *Results) Rows() [][]string {
	out := make([][]string, 0, r.rows.Len())
	for el := r.rows.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}
