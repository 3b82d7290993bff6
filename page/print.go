package page

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/folio/content"
)

// Print writes the resume as styled text for non-interactive output
func Print(w io.Writer, r *content.Resume, width int) error {
	width = min(max(width, 40), 100)

	accent := lipgloss.Color("#3b82f6")
	muted := lipgloss.Color("#64748b")

	title := lipgloss.NewStyle().Bold(true).Foreground(accent).MarginTop(1)
	strong := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(muted)
	body := lipgloss.NewStyle().Width(width)
	indented := lipgloss.NewStyle().Width(width - 2).PaddingLeft(2)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1).
		Width(width - 2)

	var parts []string
	add := func(s ...string) { parts = append(parts, s...) }

	name := strong.Render(r.FirstName) + " " + strong.Foreground(accent).Render(r.LastName)
	add(card.Render(lipgloss.JoinVertical(lipgloss.Left,
		dim.Render(r.OpenToWork),
		name,
		body.Width(width-4).Render(strings.Join(r.Description, " ")),
	)))
	links := make([]string, 0, len(r.Links))
	for _, l := range r.Links {
		links = append(links, fmt.Sprintf("%s %s", strong.Render(l.Label), dim.Render(l.URL)))
	}
	add(links...)

	add(title.Render(r.StatsTitle))
	for _, s := range r.Stats {
		add(strong.Render(s.Value) + "  " + dim.Render(s.Label))
	}

	add(title.Render(r.SkillsTitle))
	for _, g := range r.SkillGroups {
		names := make([]string, len(g.Skills))
		for i, s := range g.Skills {
			names[i] = s.Name
		}
		head := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(g.Color)).Render(g.Name)
		add(head, indented.Render(strings.Join(names, " · ")))
	}

	add(title.Render(r.MetricsTitle))
	for _, m := range r.Metrics {
		val := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.Color)).Render(m.Value)
		add(val + " " + m.Suffix + dim.Render(" · "+m.Description))
	}

	add(title.Render(r.GlobalTitle))
	for _, l := range r.Locations {
		add(fmt.Sprintf("%s %s, %s %s", l.Flag, l.City, l.Country, dim.Render("· "+l.Role)))
	}

	add(title.Render(r.TimelineTitle))
	for _, j := range r.Jobs {
		add(
			dim.Render(j.Period)+"  "+strong.Render(j.Title),
			indented.Render(j.Company),
			indented.Render(j.Description),
			indented.Foreground(accent).Render(strings.Join(j.Skills, " · ")),
		)
	}

	add(title.Render(r.ProjectsTitle))
	for _, p := range r.Projects {
		add(card.Render(lipgloss.JoinVertical(lipgloss.Left,
			strong.Render(p.Title)+"  "+dim.Render(p.Category),
			body.Width(width-4).Render(p.Description),
			lipgloss.NewStyle().Foreground(accent).Render(strings.Join(p.Tags, " · ")),
			dim.Render(p.Link),
		)))
	}

	add(title.Render(r.FooterTitle), body.Render(r.FooterDescription), r.Email, dim.Render(r.Place))

	_, err := io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, parts...)+"\n")
	return err
}
