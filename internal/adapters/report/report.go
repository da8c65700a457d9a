// Package report prints derived transforms as they change. It stands in for a
// rendering layer that consumes the transformed property.
package report

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
	"go.trai.ch/xform/internal/ui/output"
	"go.trai.ch/xform/internal/ui/style"
)

// Printer implements ports.Subsystem by writing one line per changed
// transformed property.
type Printer struct {
	out *termenv.Output
	dir ports.Directory
}

var _ ports.Subsystem = (*Printer)(nil)

// NewPrinter creates a Printer writing to w. Entity names are looked up in dir.
func NewPrinter(w io.Writer, dir ports.Directory) *Printer {
	return &Printer{out: output.New(w), dir: dir}
}

type line struct {
	name string
	text string
}

// OnPropertyChanged prints the changed transformed properties sorted by
// entity name. Entities that no longer exist are skipped.
func (p *Printer) OnPropertyChanged(doc ports.Document, refs []domain.PropRef) {
	var lines []line
	for _, ref := range refs {
		if ref.Key != domain.KeyTransformed {
			continue
		}
		name, err := p.dir.EntityName(ref.EntityID)
		if err != nil {
			continue
		}
		expr, err := doc.PropertyExpression(ref.EntityID, domain.KeyTransformed)
		if err != nil {
			continue
		}
		m, ok := expr.(domain.MatrixValue)
		if !ok {
			continue
		}
		lines = append(lines, line{name: name, text: FormatMatrix(m.Matrix())})
	}

	slices.SortFunc(lines, func(a, b line) int { return strings.Compare(a.name, b.name) })
	for _, l := range lines {
		icon := output.Paint(p.out, style.Arrow, string(style.Accent))
		_, _ = fmt.Fprintf(p.out, "%s %s %s\n", icon, l.name, l.text)
	}
}

// FormatMatrix renders m row by row: `[ a b c d | e f g h | ... ]`.
func FormatMatrix(m domain.Matrix) string {
	rows := make([]string, 4)
	for r := range 4 {
		cells := make([]string, 4)
		for c := range 4 {
			cells[c] = formatCell(m.At(r, c))
		}
		rows[r] = strings.Join(cells, " ")
	}
	return "[ " + strings.Join(rows, " | ") + " ]"
}

func formatCell(v float32) string {
	if v == 0 {
		// Avoid printing negative zero.
		v = 0
	}
	return strconv.FormatFloat(float64(v), 'g', 6, 32)
}
