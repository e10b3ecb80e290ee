package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bodygraph/internal/blueprint"
	"github.com/papapumpkin/bodygraph/internal/bodygraph"
	"github.com/papapumpkin/bodygraph/internal/centers"
	"github.com/papapumpkin/bodygraph/internal/gates"
)

// Bodygraph renders a chart for the terminal.
func Bodygraph(bg bodygraph.Bodygraph) string {
	var b strings.Builder

	title := styleTitle.Render(string(bg.Type)) + "  " + bg.Profile
	if bg.ProfileName != "" {
		title += " (" + bg.ProfileName + ")"
	}
	summary := lipgloss.JoinVertical(lipgloss.Left,
		title,
		row("Authority", string(bg.Authority)),
		row("Strategy", bg.Strategy),
		row("Definition", string(bg.Definition)),
		row("Cross", bg.Cross.Name),
		row("Not-self", bg.NotSelfTheme),
		row("Purpose", bg.LifePurpose),
	)
	b.WriteString(styleBox.Render(summary))
	b.WriteString("\n")

	b.WriteString(styleHeading.Render("Centers"))
	b.WriteString("\n")
	for _, c := range centers.All {
		st := bg.Centers.Get(c)
		b.WriteString(centerRow(c, st))
		b.WriteString("\n")
	}

	b.WriteString(styleHeading.Render("Activations"))
	b.WriteString("\n")
	b.WriteString(styleLabel.Render("") + fmt.Sprintf("%-10s %s\n", "conscious", styleDesign.Render("unconscious")))
	for i, body := range gates.Points {
		b.WriteString(styleLabel.Render(string(body)))
		b.WriteString(fmt.Sprintf("%-10s %s\n", at(bg.Gates.ConsciousPersonality, i), styleDesign.Render(at(bg.Gates.UnconsciousDesign, i))))
	}
	return b.String()
}

// Blueprint renders a blueprint: identity and date-derived profiles first,
// then the full chart.
func Blueprint(bp blueprint.Blueprint) string {
	var b strings.Builder

	name := bp.UserMeta.Name
	if name == "" {
		name = "Blueprint"
	}
	b.WriteString(styleTitle.Render(name))
	b.WriteString("\n")
	b.WriteString(row("Born", strings.TrimSpace(bp.UserMeta.BirthDate+" "+bp.UserMeta.BirthTimeLocal+" "+bp.UserMeta.Timezone)))
	b.WriteString("\n")
	if bp.UserMeta.BirthLocation != "" {
		b.WriteString(row("Location", bp.UserMeta.BirthLocation))
		b.WriteString("\n")
	}
	b.WriteString(row("Sun", placement(bp.Western.Sun)))
	b.WriteString("\n")
	b.WriteString(row("Moon", placement(bp.Western.Moon)))
	b.WriteString("\n")
	b.WriteString(row("Chinese", fmt.Sprintf("%s %s %s", bp.Chinese.YinYang, bp.Chinese.Element, bp.Chinese.Animal)))
	b.WriteString("\n")
	lp := strconv.Itoa(bp.Numerology.LifePath)
	if bp.Numerology.Master {
		lp += " (master)"
	}
	b.WriteString(row("Life path", lp))
	b.WriteString("\n")
	b.WriteString(row("MBTI", bp.Cognition.Type+" "+strings.Join(bp.Cognition.CoreKeywords, ", ")))
	b.WriteString("\n\n")
	b.WriteString(Bodygraph(bp.HumanDesign))
	return b.String()
}

func row(label, value string) string {
	return styleLabel.Render(label) + value
}

func centerRow(c centers.Center, st bodygraph.CenterState) string {
	icon, style := iconOpen, styleOpen
	if st.Defined {
		icon, style = iconDefined, styleDefined
	}
	gs := make([]string, len(st.Gates))
	for i, g := range st.Gates {
		gs[i] = strconv.Itoa(g)
	}
	chs := make([]string, len(st.Channels))
	for i, ch := range st.Channels {
		chs[i] = centers.NewChannel(ch[0], ch[1]).String()
	}
	line := style.Render(icon+" "+fmt.Sprintf("%-13s", c.Title())) + strings.Join(gs, " ")
	if len(chs) > 0 {
		line += "  " + styleOpen.Render("["+strings.Join(chs, ", ")+"]")
	}
	return line
}

func placement(p blueprint.Placement) string {
	return fmt.Sprintf("%s %.2f° (%s, %s)", p.Sign, p.Degree, p.Element, p.Modality)
}

func at(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return "-"
}
