package overview

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/pokesprite/pokesprite/internal/platform/templates"
)

// tableIndent is the nesting depth of the table inside the page template.
const tableIndent = 4

type tableHeader struct {
	ID, Dex, Name, Icon, HTML string
}

type htmlRow struct {
	plan     rowPlan
	idx      string
	name     string
	classes  string
	fileLink string
}

func (b *Builder) renderHTML(ctx context.Context) (string, error) {
	header := tableHeader{
		ID:   b.loc.L(LabelID),
		Dex:  b.loc.L(LabelDex),
		Name: b.loc.L(LabelName),
		Icon: b.loc.L(LabelIcon),
		HTML: b.loc.L(LabelHTML),
	}

	grouper := newRowGrouper(b.icons)
	rows := make([]htmlRow, 0, len(b.icons))
	for _, icon := range b.icons {
		id := b.classifier.Identify(icon)
		rows = append(rows, htmlRow{
			plan:     grouper.next(icon),
			idx:      id.Idx,
			name:     id.Name,
			classes:  id.ClassString(),
			fileLink: b.settings.IconURLImgBase + icon.ImagePath(),
		})
	}

	var table strings.Builder
	if err := overviewTable(header, rows).Render(ctx, &table); err != nil {
		return "", fmt.Errorf("render overview table: %w", err)
	}

	vars := pageVars(b.settings, len(b.icons))
	vars["icons"] = templates.IndentLines(strings.TrimSuffix(table.String(), "\n"), tableIndent)
	markup, err := b.decorator.DecorateWithDefaults(b.overviewTpl, vars)
	if err != nil {
		return "", err
	}
	return templates.ProcessOutput(markup), nil
}

func overviewTable(h tableHeader, rows []htmlRow) templ.Component {
	parts := make([]templ.Component, 0, len(rows)+2)
	parts = append(parts, tableHead(h))
	for _, row := range rows {
		parts = append(parts, overviewRow(row))
	}
	parts = append(parts, templ.Raw("</table>\n"))
	return templ.Join(parts...)
}

// tableHead opens the table and writes the header row.
func tableHead(h tableHeader) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		mw := &markupWriter{w: w}
		mw.line(`<table class="table pkspr-overview">`)
		mw.line(`  <tr>`)
		mw.line(`    <th class="n"><p>%s<span class="spacer">000</span></p></th>`, esc(h.ID))
		mw.line(`    <th class="idx"><p>%s</p></th>`, esc(h.Dex))
		mw.line(`    <th class="name"><p>%s</p></th>`, esc(h.Name))
		mw.line(`    <th class="icon"><p>%s</p></th>`, esc(h.Icon))
		mw.line(`    <th class="example"><p>%s</p></th>`, esc(h.HTML))
		mw.line(`  </tr>`)
		return mw.err
	})
}

// overviewRow emits one icon. Rows after the first of a group omit the index
// and name cells; the first row's rowspan covers them.
func overviewRow(row htmlRow) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		htmlID := fmt.Sprintf("icon_%d", row.plan.N)
		classes := esc(row.classes)

		mw := &markupWriter{w: w}
		mw.line(`  <tr>`)
		mw.line(`    <td class="n"><p><a href="%s">%d</a></p></td>`, esc(row.fileLink), row.plan.N)
		if row.plan.First {
			mw.line(`    <td class="idx" rowspan="%d"><p class="idx">%s</p></td>`, row.plan.Span, esc(row.idx))
			mw.line(`    <td class="name" rowspan="%d"><p>%s</p></td>`, row.plan.Span, esc(row.name))
		}
		mw.line(`    <td class="icon"><p><span id="%s" class="%s"></span><script>PkSpr.decorate('%s');</script></p></td>`, htmlID, classes, htmlID)
		mw.line(`    <td class="example">%s</td>`, classExample(classes))
		mw.line(`  </tr>`)
		return mw.err
	})
}

// classExample shows the markup a page needs to display the icon.
func classExample(safeClasses string) string {
	return `<pre><code>` + esc(`<span class="`) + `<span class="class">` + safeClasses + `</span>` + esc(`"></span>`) + `</code></pre>`
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// markupWriter writes lines until the first error and then stays silent.
type markupWriter struct {
	w   io.Writer
	err error
}

func (m *markupWriter) line(format string, args ...any) {
	if m.err != nil {
		return
	}
	if len(args) == 0 {
		_, m.err = io.WriteString(m.w, format+"\n")
		return
	}
	_, m.err = fmt.Fprintf(m.w, format+"\n", args...)
}
