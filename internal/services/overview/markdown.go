package overview

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/pokesprite/pokesprite/internal/platform/mdtable"
)

// renderMarkdown lists every icon on its own row; Markdown has no row spans.
func (b *Builder) renderMarkdown() string {
	n := len(b.icons)
	dexCol := make([]string, 0, n)
	nameCol := make([]string, 0, n)
	iconCol := make([]string, 0, n)
	classCol := make([]string, 0, n)

	for _, icon := range b.icons {
		id := b.classifier.Identify(icon)
		path := icon.ImagePath()

		dexCol = append(dexCol, id.Idx)
		nameCol = append(nameCol, id.Name)
		iconCol = append(iconCol, fmt.Sprintf(`<img src="%s%s" alt="%s" title="%s" width="%d" height="%d" />`,
			b.settings.GitHubBaseDir,
			path,
			templ.EscapeString(id.Name),
			path,
			icon.W,
			icon.H,
		))
		classCol = append(classCol, "**`"+id.ClassString()+"`**")
	}

	// The &nbsp; padding keeps the icon column wide enough for 40x30 sprites.
	return mdtable.RenderTable(
		mdtable.RenderColumn(b.loc.L(LabelDex), dexCol, mdtable.AlignLeft),
		mdtable.RenderColumn(b.loc.L(LabelName), nameCol, mdtable.AlignLeft),
		mdtable.RenderColumn("&nbsp;"+b.loc.L(LabelIcon)+"&nbsp;", iconCol, mdtable.AlignCenter),
		mdtable.RenderColumn(b.loc.L(LabelClass), classCol, mdtable.AlignLeft),
	)
}
