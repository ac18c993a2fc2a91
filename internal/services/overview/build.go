package overview

import "github.com/pokesprite/pokesprite/internal/platform/templates"

// renderBuild fills the build summary page. It needs nothing from the icons
// beyond their count.
func (b *Builder) renderBuild() (string, error) {
	vars := pageVars(b.settings, len(b.icons))
	vars["icons_amount_str"] = esc(b.loc.Count(len(b.icons)))
	vars["label_build_title"] = esc(b.loc.L("build_title"))
	vars["label_icons_amount"] = esc(b.loc.L("build_icons_amount"))
	vars["label_script_date"] = esc(b.loc.L("build_script_date"))

	markup, err := b.decorator.DecorateWithDefaults(b.buildTpl, vars)
	if err != nil {
		return "", err
	}
	return templates.ProcessOutput(markup), nil
}
