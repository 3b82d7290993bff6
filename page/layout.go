package page

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/render"
)

// TargetKind is what a clickable span does
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetName
	TargetSkills
	TargetDice
	TargetEffect
	TargetLink
	TargetLanguage
	TargetTheme
	TargetTop
)

// Target identifies a clickable surface
type Target struct {
	Kind TargetKind
	// Value is the effect kind name or link URL
	Value string
}

type span struct {
	text   string
	role   role
	color  render.RGB
	attrs  tcell.AttrMask
	target Target
}

type line struct {
	spans []span
}

func (l line) width() int {
	w := 0
	for _, s := range l.spans {
		w += runewidth.StringWidth(s.text)
	}
	return w
}

// skillBarWidth is the cell width of a proficiency bar
const skillBarWidth = 20

type builder struct {
	width int
	lines []line
}

func (b *builder) blank() {
	b.lines = append(b.lines, line{})
}

func (b *builder) add(spans ...span) {
	b.lines = append(b.lines, line{spans: spans})
}

func (b *builder) heading(text string, target Target) {
	b.blank()
	b.add(span{text: strings.ToUpper(text), role: roleAccent, attrs: tcell.AttrBold, target: target})
	b.add(span{text: strings.Repeat("─", min(b.width, runewidth.StringWidth(text)+4)), role: roleMuted})
}

func (b *builder) paragraph(text string, r role, indent int) {
	pad := strings.Repeat(" ", indent)
	for _, l := range wrap(text, b.width-indent) {
		b.add(span{text: pad + l, role: r})
	}
}

// buttons lays out labeled spans left to right, wrapping at the column width
func (b *builder) buttons(items []span) {
	var cur []span
	w := 0
	for _, it := range items {
		iw := runewidth.StringWidth(it.text)
		if w > 0 && w+1+iw > b.width {
			b.add(cur...)
			cur, w = nil, 0
		}
		if w > 0 {
			cur = append(cur, span{text: " "})
			w++
		}
		cur = append(cur, it)
		w += iw
	}
	if len(cur) > 0 {
		b.add(cur...)
	}
}

// layoutResume flattens r into lines no wider than width
func layoutResume(r *content.Resume, width int) []line {
	b := &builder{width: max(width, 20)}

	// Hero
	b.blank()
	b.add(span{text: " " + r.OpenToWork + " ", role: roleAccent, attrs: tcell.AttrReverse})
	b.blank()
	b.add(
		span{text: r.FirstName + " ", role: roleStrong, attrs: tcell.AttrBold, target: Target{Kind: TargetName}},
		span{text: r.LastName, role: roleAccent, attrs: tcell.AttrBold, target: Target{Kind: TargetName}},
	)
	b.blank()
	for _, d := range r.Description {
		b.paragraph(d, roleFg, 0)
	}
	b.blank()
	links := make([]span, 0, len(r.Links)+1)
	for _, l := range r.Links {
		links = append(links, span{text: "[" + l.Label + "]", role: roleAccent, attrs: tcell.AttrUnderline, target: Target{Kind: TargetLink, Value: l.URL}})
	}
	links = append(links, span{text: r.DiceButton, role: roleStrong, attrs: tcell.AttrBold, target: Target{Kind: TargetDice}})
	b.buttons(links)

	// Stats
	b.heading(r.StatsTitle, Target{})
	for _, s := range r.Stats {
		b.add(
			span{text: padRight(s.Value, 16), role: roleStrong, attrs: tcell.AttrBold},
			span{text: s.Label, role: roleMuted},
		)
	}

	// Skills
	b.heading(r.SkillsTitle, Target{Kind: TargetSkills})
	for _, g := range r.SkillGroups {
		col := render.Hex(g.Color)
		b.blank()
		b.add(span{text: "■ " + g.Name, role: roleCustom, color: col, attrs: tcell.AttrBold})
		for _, s := range g.Skills {
			filled := s.Level * skillBarWidth / 100
			b.add(
				span{text: "  " + padRight(s.Name, 15), role: roleFg},
				span{text: strings.Repeat("█", filled), role: roleCustom, color: col},
				span{text: strings.Repeat("░", skillBarWidth-filled), role: roleMuted},
				span{text: padLeft(strconv.Itoa(s.Level), 4), role: roleMuted},
			)
		}
	}

	b.heading(r.MetricsTitle, Target{})
	for _, m := range r.Metrics {
		b.add(
			span{text: padRight(m.Value, 7), role: roleCustom, color: render.Hex(m.Color), attrs: tcell.AttrBold},
			span{text: m.Suffix, role: roleStrong},
			span{text: " · " + m.Label, role: roleMuted},
		)
		b.paragraph(m.Description, roleFg, 7)
	}

	b.heading(r.GlobalTitle, Target{})
	b.paragraph(r.GlobalSubtitle, roleMuted, 0)
	for _, l := range r.Locations {
		marker := span{text: "○ ", role: roleMuted}
		if l.Active {
			marker = span{text: "● ", role: roleAccent}
		}
		b.add(
			marker,
			span{text: l.Flag + " " + l.City + ", " + l.Country, role: roleStrong},
			span{text: " · " + l.Role, role: roleMuted},
		)
	}

	// Timeline
	b.heading(r.TimelineTitle, Target{})
	b.paragraph(r.TimelineSubtitle, roleMuted, 0)
	for _, j := range r.Jobs {
		b.blank()
		b.add(span{text: j.Period, role: roleAccent})
		b.add(span{text: j.Title, role: roleStrong, attrs: tcell.AttrBold})
		b.add(span{text: j.Company, role: roleMuted, attrs: tcell.AttrItalic})
		b.paragraph(j.Description, roleFg, 2)
		b.paragraph(strings.Join(j.Skills, " · "), roleAccent, 2)
	}

	// Projects
	b.heading(r.ProjectsTitle, Target{})
	b.paragraph(r.ProjectsSubtitle, roleMuted, 0)
	for _, p := range r.Projects {
		b.blank()
		b.add(
			span{text: p.Title, role: roleStrong, attrs: tcell.AttrBold},
			span{text: "  " + p.Category, role: roleMuted},
		)
		b.paragraph(p.Description, roleFg, 2)
		b.paragraph(strings.Join(p.Tags, " · "), roleAccent, 2)
		if p.Link != "" {
			b.add(span{text: "  "}, span{text: "↗ " + p.Link, role: roleAccent, attrs: tcell.AttrUnderline, target: Target{Kind: TargetLink, Value: p.Link}})
		}
	}

	// Footer
	b.heading(r.FooterTitle, Target{})
	b.paragraph(r.FooterDescription, roleFg, 0)
	b.add(span{text: "✉ " + r.Email, role: roleAccent, attrs: tcell.AttrUnderline, target: Target{Kind: TargetLink, Value: "mailto:" + r.Email}})
	b.add(span{text: "⌖ " + r.Place, role: roleMuted})
	b.blank()
	b.add(span{text: r.EffectsTitle, role: roleMuted, attrs: tcell.AttrBold})
	effects := make([]span, 0, len(r.Effects))
	for _, e := range r.Effects {
		effects = append(effects, span{text: "[" + e.Label + "]", role: roleStrong, target: Target{Kind: TargetEffect, Value: e.Kind}})
	}
	b.buttons(effects)
	b.blank()

	return b.lines
}

// wrap breaks text on spaces so each line fits width cells. Words wider
// than width are split
func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	var cur strings.Builder
	curW := 0
	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		for ww > width {
			if curW > 0 {
				out = append(out, cur.String())
				cur.Reset()
				curW = 0
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			out = append(out, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if curW > 0 && curW+1+ww > width {
			out = append(out, cur.String())
			cur.Reset()
			curW = 0
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(word)
		curW += ww
	}
	if curW > 0 {
		out = append(out, cur.String())
	}
	return out
}

func padRight(s string, w int) string {
	return runewidth.FillRight(s, w)
}

func padLeft(s string, w int) string {
	return runewidth.FillLeft(s, w)
}
