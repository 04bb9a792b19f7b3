package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fitodo/fitodo/internal/catalog"
	"github.com/fitodo/fitodo/internal/host"
)

// overlayPage is the static content of a full-screen overlay.
type overlayPage struct {
	title    string
	subtitle string
	sections map[string][]string
	order    []string
}

var overlayPages = map[host.Overlay]overlayPage{
	host.OverlayEducation: {
		title:    "Learn & Grow",
		subtitle: "Training tips and guides",
		order:    []string{"Available Courses", "Official Documentation"},
		sections: map[string][]string{
			"Available Courses":      {"Sprint Mechanics Basics", "Agility & Change of Direction", "Injury Prevention for Young Athletes"},
			"Official Documentation": {"SAI Certified Resources", "Khelo India Assessment Guidelines"},
		},
	},
	host.OverlayEquipment: {
		title:    "Equipment Marketplace",
		subtitle: "Gear for your sport",
		order:    []string{"Featured", "Local Vendors"},
		sections: map[string][]string{
			"Featured":      {"Professional Cricket Bat", "Athletic Running Shoes", "Training Football", "Resistance Training Bands Set"},
			"Local Vendors": {"Mumbai Sports Store", "Delhi Athletic Gear", "Kolkata Sports Hub", "Chennai Racket Sports"},
		},
	},
	host.OverlayFamily: {
		title:    "Family Dashboard",
		subtitle: "All Children Safe",
		order:    []string{"Progress Monitoring", "Safety & Privacy Settings"},
		sections: map[string][]string{
			"Progress Monitoring":       {"Weekly test summary", "Coach feedback"},
			"Safety & Privacy Settings": {"Privacy Controls", "Content Filtering", "Emergency Contacts"},
		},
	},
	host.OverlayWomen: {
		title:    "Women's Safe Space",
		subtitle: "Celebrating Women Athletes",
		order:    []string{"Community"},
		sections: map[string][]string{
			"Community": {"Women's Leaderboard", "Safe Discussion Space", "Mentorship Program: Connect with Champions"},
		},
	},
	host.OverlaySAI: {
		title:    "SAI Admin Dashboard",
		subtitle: "Verify and review assessments",
		order:    []string{"Analytics", "Verification Queue"},
		sections: map[string][]string{
			"Analytics":          {"Gender Distribution", "Age Distribution", "Talent Pipeline", "Regional Performance"},
			"Verification Queue": {"No assessments awaiting review"},
		},
	},
}

func renderApp(m AppModel) string {
	if m.signup != nil {
		var b strings.Builder
		b.WriteString(titleStyle.Render("FITODO"))
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Join the Champion's Journey"))
		b.WriteString("\n\n")
		b.WriteString(m.signup.View())
		return b.String()
	}

	if m.wizard != nil {
		return m.wizard.View() + renderNotice(m)
	}

	var b strings.Builder
	screen := m.router.Screen()
	if screen.Overlay != host.OverlayNone {
		renderOverlay(&b, screen.Overlay)
	} else {
		renderAppHeader(&b, m)
		renderTabBar(&b, screen.Tab)
		renderTabBody(&b, m, screen.Tab)
	}
	b.WriteString(renderNotice(m))
	b.WriteString(footerStyle.Render("  " + m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

func renderAppHeader(b *strings.Builder, m AppModel) {
	b.WriteString(titleStyle.Render("FITODO"))
	fmt.Fprintf(b, " %s\n", subtitleStyle.Render(fmt.Sprintf("Hi, %s (%s)", m.router.Name(), m.router.Role())))
}

func renderTabBar(b *strings.Builder, active host.Tab) {
	tabs := make([]string, 0, len(host.Tabs))
	for _, t := range host.Tabs {
		style := tabStyle
		if t == active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(t.Title()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")
}

func renderTabBody(b *strings.Builder, m AppModel, tab host.Tab) {
	if tab == host.TabHome || tab == host.TabTests {
		c := catalog.Summarize(catalog.Tests)
		b.WriteString(sectionStyle.Render("  Assessment progress"))
		b.WriteString("\n")
		renderProgressBar(b, int(c.Percent), m.Width)
		fmt.Fprintf(b, "  %s\n", dimStyle.Render(fmt.Sprintf("%d of %d tests completed", c.Completed, c.Total)))
	}

	b.WriteString(sectionStyle.Render("  " + tab.Title()))
	b.WriteString("\n")
	for i, item := range m.items() {
		marker, style := " ", sf(dimStyle)
		if i == m.cursor {
			marker, style = cursor, sf(activeStyle)
		}
		line := fmt.Sprintf("  %s %s", accentStyle.Render(marker), style(item.Title))
		if item.Description != "" {
			line += "  " + dimStyle.Render(item.Description)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.Sessions) > 0 {
		last := m.Sessions[len(m.Sessions)-1]
		status := "no attempt recorded"
		if last.Data.TestResults != nil {
			status = "last time " + last.Data.TestResults.Time
		}
		fmt.Fprintf(b, "\n  %s %s\n", dimStyle.Render(fmt.Sprintf("Shuttle Run sessions: %d,", len(m.Sessions))), dimStyle.Render(status))
	}
}

func renderOverlay(b *strings.Builder, o host.Overlay) {
	page, ok := overlayPages[o]
	if !ok {
		b.WriteString(titleStyle.Render(string(o)))
		b.WriteString("\n")
		return
	}
	b.WriteString(titleStyle.Render(page.title))
	fmt.Fprintf(b, " %s\n", subtitleStyle.Render(page.subtitle))
	for _, name := range page.order {
		b.WriteString(sectionStyle.Render("  " + name))
		b.WriteString("\n")
		for _, line := range page.sections[name] {
			fmt.Fprintf(b, "    • %s\n", line)
		}
	}
}

func renderNotice(m AppModel) string {
	if m.notice == nil {
		return ""
	}
	style := sf(warningStyle)
	if m.notice.Kind == host.NoticeSuccess {
		style = sf(readyStyle)
	}
	return "\n  " + style(m.notice.Text) + "\n"
}
