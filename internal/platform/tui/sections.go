package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termfolio/internal/content"
)

var (
	accentColor = lipgloss.Color("63")
	dimColor    = lipgloss.Color("241")

	nameStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor).MarginBottom(1)
	labelStyle     = lipgloss.NewStyle().Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(dimColor)
	accentStyle    = lipgloss.NewStyle().Foreground(accentColor)
	codeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tabStyle       = lipgloss.NewStyle().Foreground(dimColor).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

const skillBarWidth = 20

// sectionView is what a section needs to render.
type sectionView struct {
	portfolio content.Portfolio
	width     int
	heroLine  string
	form      ContactForm
	status    string
	statusErr bool
}

// render returns the body of the section with the given ID.
func (v sectionView) render(id string) string {
	switch id {
	case "hero":
		return v.hero()
	case "about":
		return v.about()
	case "experience":
		return v.experience()
	case "skills":
		return v.skills()
	case "projects":
		return v.projects()
	case "education":
		return v.education()
	case "contact":
		return v.contact()
	}
	return ""
}

func (v sectionView) textWidth() int {
	w := v.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (v sectionView) cardWidth() int {
	// Border and padding take four columns
	return v.textWidth() - 4
}

func (v sectionView) wrap(s string) string {
	return lipgloss.NewStyle().Width(v.textWidth()).Render(s)
}

func (v sectionView) hero() string {
	p := v.portfolio.Profile

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Hi, I'm"))
	b.WriteString("\n")
	b.WriteString(nameStyle.Render(p.Name))
	b.WriteString("\n")
	if p.Headline != "" {
		b.WriteString(accentStyle.Render(p.Headline))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(codeStyle.Render(v.heroLine))
	b.WriteString(accentStyle.Render("▌"))
	b.WriteString("\n\n")
	b.WriteString(v.links())
	return b.String()
}

func (v sectionView) links() string {
	p := v.portfolio.Profile
	var lines []string
	if p.Email != "" {
		lines = append(lines, labelStyle.Render("Email    ")+" "+p.Email)
	}
	if p.GitHub != "" {
		lines = append(lines, labelStyle.Render("GitHub   ")+" "+p.GitHub)
	}
	if p.LinkedIn != "" {
		lines = append(lines, labelStyle.Render("LinkedIn ")+" "+p.LinkedIn)
	}
	return strings.Join(lines, "\n")
}

func (v sectionView) about() string {
	p := v.portfolio.Profile

	var b strings.Builder
	b.WriteString(headingStyle.Render("About Me"))
	b.WriteString("\n")
	b.WriteString(v.wrap(p.About))
	b.WriteString("\n\n")

	if len(p.Timeline) > 0 {
		b.WriteString(headingStyle.Render("Journey"))
		b.WriteString("\n")
		for _, m := range p.Timeline {
			b.WriteString(accentStyle.Render(m.Year))
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(m.Title))
			if m.Company != "" {
				b.WriteString(dimStyle.Render(" @ " + m.Company))
			}
			b.WriteString("\n")
			if m.Description != "" {
				b.WriteString("      ")
				b.WriteString(m.Description)
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func (v sectionView) experience() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Experience"))
	b.WriteString("\n")
	if len(v.portfolio.Experience) == 0 {
		b.WriteString(dimStyle.Render("Nothing here yet."))
		return b.String()
	}

	for _, e := range v.portfolio.Experience {
		var card strings.Builder
		card.WriteString(labelStyle.Render(e.Title))
		card.WriteString(dimStyle.Render(" @ " + e.Company))
		card.WriteString("\n")
		if e.Duration != "" {
			card.WriteString(dimStyle.Render(e.Duration))
			card.WriteString("\n")
		}
		if e.Description != "" {
			card.WriteString(e.Description)
			card.WriteString("\n")
		}
		for _, a := range e.Achievements {
			card.WriteString("• ")
			card.WriteString(a)
			card.WriteString("\n")
		}
		if len(e.Tech) > 0 {
			card.WriteString(accentStyle.Render(strings.Join(e.Tech, " · ")))
		}
		b.WriteString(cardStyle.Width(v.cardWidth()).Render(strings.TrimRight(card.String(), "\n")))
		b.WriteString("\n")
	}
	return b.String()
}

// skillBar renders a proficiency bar such as "[█████░░░░░]  50%".
func skillBar(level, width int) string {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	filled := level * width / 100
	return "[" + accentStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled)) + "]" +
		fmt.Sprintf(" %3d%%", level)
}

func (v sectionView) skills() string {
	groups := []struct {
		title    string
		category string
	}{
		{"Languages", content.CategoryLanguage},
		{"Frameworks", content.CategoryFramework},
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Skills"))
	b.WriteString("\n")
	for _, g := range groups {
		skills := v.portfolio.SkillsIn(g.category)
		if len(skills) == 0 {
			continue
		}

		nameW := 0
		for _, s := range skills {
			nameW = max(nameW, lipgloss.Width(s.Name))
		}

		b.WriteString(labelStyle.Render(g.title))
		b.WriteString("\n")
		for _, s := range skills {
			b.WriteString(fmt.Sprintf("  %-*s  %s\n", nameW, s.Name, skillBar(s.Level, skillBarWidth)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v sectionView) projects() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Projects"))
	b.WriteString("\n")
	if len(v.portfolio.Projects) == 0 {
		b.WriteString(dimStyle.Render("Nothing here yet."))
		return b.String()
	}

	for _, p := range v.portfolio.Projects {
		var card strings.Builder
		card.WriteString(labelStyle.Render(p.Title))
		card.WriteString("\n")
		if p.Description != "" {
			card.WriteString(p.Description)
			card.WriteString("\n")
		}
		if len(p.Tech) > 0 {
			card.WriteString(accentStyle.Render(strings.Join(p.Tech, " · ")))
			card.WriteString("\n")
		}
		if p.GitHub != "" {
			card.WriteString(dimStyle.Render("code: " + p.GitHub))
			card.WriteString("\n")
		}
		if p.Demo != "" {
			card.WriteString(dimStyle.Render("demo: " + p.Demo))
		}
		b.WriteString(cardStyle.Width(v.cardWidth()).Render(strings.TrimRight(card.String(), "\n")))
		b.WriteString("\n")
	}
	return b.String()
}

func (v sectionView) education() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Education"))
	b.WriteString("\n")
	if len(v.portfolio.Education) == 0 {
		b.WriteString(dimStyle.Render("Nothing here yet."))
		return b.String()
	}

	for _, e := range v.portfolio.Education {
		var card strings.Builder
		card.WriteString(labelStyle.Render(e.Degree))
		card.WriteString("\n")
		card.WriteString(e.University)
		card.WriteString("\n")
		meta := e.Duration
		if e.CGPA != "" {
			meta = strings.TrimSpace(meta + "  CGPA " + e.CGPA)
		}
		if meta != "" {
			card.WriteString(dimStyle.Render(meta))
			card.WriteString("\n")
		}
		for _, a := range e.Achievements {
			card.WriteString("• ")
			card.WriteString(a)
			card.WriteString("\n")
		}
		b.WriteString(cardStyle.Width(v.cardWidth()).Render(strings.TrimRight(card.String(), "\n")))
		b.WriteString("\n")
	}
	return b.String()
}

func (v sectionView) contact() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Get in Touch"))
	b.WriteString("\n")
	if links := v.links(); links != "" {
		b.WriteString(links)
		b.WriteString("\n\n")
	}

	b.WriteString(v.form.View())
	b.WriteString("\n")

	if v.status != "" {
		if v.statusErr {
			b.WriteString(errorStyle.Render(v.status))
		} else {
			b.WriteString(okStyle.Render(v.status))
		}
		b.WriteString("\n")
	}

	if v.form.Focused() {
		b.WriteString(dimStyle.Render("tab/enter: next field (enter on Message sends)  esc: stop editing"))
	} else {
		b.WriteString(dimStyle.Render("enter: write a message"))
	}
	return b.String()
}
