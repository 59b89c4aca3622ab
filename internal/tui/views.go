package tui

import (
	"strings"

	"github.com/Veraticus/wastewise/internal/cli"
	"github.com/Veraticus/wastewise/internal/session"
	"github.com/charmbracelet/lipgloss"
)

var spinnerStyle = lipgloss.NewStyle().Foreground(cli.PrimaryColor)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(cli.FormatTitle("Classify Waste") + "\n")
	b.WriteString(cli.SubtitleStyle.Render("Upload a photo and get the best way to deal with it") + "\n")

	snap := m.session.Snapshot()
	state := cli.SubtleStyle.Render("Session " + snap.State.Describe())
	if snap.SampleName != "" {
		state += cli.SubtleStyle.Render(" · " + snap.SampleName)
	}
	b.WriteString(state + "\n\n")

	switch snap.State {
	case session.StateClassifying:
		b.WriteString(m.spinner.View() + " Analyzing with AI...\n")
	case session.StateClassified:
		if snap.Result != nil {
			b.WriteString(cli.RenderResult(snap.Result) + "\n")
		}
	}

	switch m.mode {
	case inputSamplePath:
		b.WriteString("\n" + cli.FormatPrompt("Photo path") + m.input.View() + "\n")
	case inputListing:
		b.WriteString("\n" + cli.FormatPrompt("Weight, location") + m.input.View() + "\n")
	}

	if m.lastErr != nil {
		b.WriteString("\n" + cli.FormatError(m.lastErr.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + cli.InfoStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keymap))
	return b.String()
}
