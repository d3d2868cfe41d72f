package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"carnival/internal/catalog"
	"carnival/internal/session"
	"carnival/internal/timer"
)

var (
	colorGold     = lipgloss.Color("214")
	colorPrimary  = lipgloss.Color("33")
	colorMuted    = lipgloss.Color("242")
	colorCorrect  = lipgloss.Color("42")
	colorWrong    = lipgloss.Color("196")
	colorAccent   = lipgloss.Color("170")
	colorSelected = lipgloss.Color("229")
)

// renderLanding renders the hero screen.
func renderLanding(m Model) string {
	presents := stylize("Valmiki Shiksha Sadan Presents", m.noColor, colorMuted)
	banner := box(m.noColor, colorGold).
		Bold(true).
		Padding(1, 6).
		Align(lipgloss.Center).
		Render(m.title)
	subtitle := stylize("An Interschool Academic Competition", m.noColor, colorAccent)
	cta := stylize("▶ Press enter to start the quiz", m.noColor, colorPrimary)
	done := len(m.shell.Completed())
	progress := stylize(fmt.Sprintf("%d of %d subjects complete", done, len(m.shell.Catalog.Subjects)), m.noColor, colorMuted)
	return lipgloss.JoinVertical(lipgloss.Center,
		presents, banner, subtitle, "", cta, "", m.standings.View(), progress)
}

// renderSubjects renders the subject-selection grid.
func renderSubjects(m Model) string {
	heading := stylize("Choose a Subject", m.noColor, colorGold)
	subjects := m.shell.Catalog.Subjects
	cards := make([]string, 0, len(subjects))
	for i, subject := range subjects {
		cards = append(cards, renderSubjectCard(m, i, subject))
	}
	grid := joinGrid(cards, subjectColumns)
	return lipgloss.JoinVertical(lipgloss.Left, renderHeader(m, "Subjects"), heading, grid)
}

func renderSubjectCard(m Model, index int, subject catalog.Subject) string {
	answered := len(m.shell.AnsweredIDs(subject.ID))
	status := fmt.Sprintf("%d/%d", answered, subject.Len())
	color := colorMuted
	if m.shell.IsComplete(subject.ID) {
		status = "✓ complete"
		color = colorCorrect
	}
	if index == m.subjectCursor {
		color = colorSelected
	}
	name := subject.Name
	if subject.Icon != "" {
		name = subject.Icon + " " + name
	}
	return box(m.noColor, color).
		Width(24).
		Align(lipgloss.Center).
		Render(name + "\n" + status)
}

// renderQuiz renders the board or the open question.
func renderQuiz(m Model) string {
	sess := m.shell.Session
	if sess == nil {
		return renderHeader(m, "")
	}
	header := renderHeader(m, sess.Subject.Name)
	if sess.State() == session.StateBoard {
		return lipgloss.JoinVertical(lipgloss.Left, header, renderBoard(m, *sess), renderLastEvent(m, *sess))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, renderControls(m, *sess), renderQuestion(m, *sess))
}

func renderBoard(m Model, sess session.Session) string {
	answered, total := sess.Progress()
	heading := stylize(fmt.Sprintf("%s — Select a Question (%d/%d answered)", sess.Subject.Name, answered, total), m.noColor, colorGold)
	tiles := make([]string, 0, total)
	for i, question := range sess.Subject.Questions {
		label := fmt.Sprintf("%2d", question.Number)
		color := colorPrimary
		if sess.IsAnswered(question.ID) {
			label = " ✓"
			color = colorMuted
		}
		if i == m.boardCursor {
			color = colorSelected
		}
		tiles = append(tiles, box(m.noColor, color).Padding(0, 1).Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, heading, joinGrid(tiles, boardColumns))
}

func renderControls(m Model, sess session.Session) string {
	subject := "Subject: " + stylize(sess.Subject.Name, m.noColor, colorPrimary)
	passLabel := "p Pass"
	if sess.Passes > 0 {
		passLabel = fmt.Sprintf("p Pass (%d)", sess.Passes)
	}
	revealLabel := "r Reveal Answer"
	if sess.Revealed {
		revealLabel = stylize("Revealed", m.noColor, colorCorrect)
		passLabel = stylize(passLabel, m.noColor, colorMuted)
	}
	parts := []string{subject, renderTimer(m, sess.Timer), passLabel, revealLabel}
	return box(m.noColor, colorMuted).Padding(0, 2).Render(strings.Join(parts, "   "))
}

// renderTimer renders the remaining seconds and a bar coloured by level.
func renderTimer(m Model, countdown timer.Countdown) string {
	color := colorPrimary
	switch countdown.Level() {
	case timer.LevelLow:
		color = colorAccent
	case timer.LevelCritical:
		color = colorWrong
	}
	text := fmt.Sprintf("%2ds %s", countdown.Remaining, progressBar(countdown.Fraction(), 20))
	if countdown.Expired {
		text += " time up"
	}
	return stylize(text, m.noColor, color)
}

func renderQuestion(m Model, sess session.Session) string {
	question := *sess.Current
	meta := stylize(fmt.Sprintf("%s  Q%d", sess.Subject.Name, question.Number), m.noColor, colorMuted)
	prompt := lipgloss.NewStyle().Bold(true).Render(question.Prompt)
	lines := []string{meta, "", prompt, ""}
	if question.HasOptions() {
		for i, option := range question.Options {
			lines = append(lines, renderOption(m, sess, i, option))
		}
	}
	if sess.Revealed {
		// Options are highlighted only when the correct one is known.
		if answer := question.RevealText(); question.CorrectLabel() == "" && answer != "" {
			lines = append(lines, "", stylize("Answer", m.noColor, colorMuted), stylize(answer, m.noColor, colorCorrect))
		}
		if verdict := renderVerdict(m, sess); verdict != "" {
			lines = append(lines, "", verdict)
		}
		lines = append(lines, "", stylize("n Next Question", m.noColor, colorGold))
	}
	return box(m.noColor, colorPrimary).Padding(1, 3).Render(strings.Join(lines, "\n"))
}

func renderOption(m Model, sess session.Session, index int, option string) string {
	chosen := sess.Choice != nil && *sess.Choice == index
	marker := " "
	color := lipgloss.Color("252")
	switch {
	case sess.Revealed && sess.Current.IsCorrect(index):
		marker = "✓"
		color = colorCorrect
	case sess.Revealed && chosen && sess.Current.CorrectOption != nil:
		marker = "✗"
		color = colorWrong
	case chosen:
		marker = "▸"
		color = colorSelected
	}
	return stylize(fmt.Sprintf("%s %s. %s", marker, catalog.OptionLabel(index), option), m.noColor, color)
}

func renderVerdict(m Model, sess session.Session) string {
	switch sess.ChoiceVerdict() {
	case session.VerdictCorrect:
		return stylize("Correct!", m.noColor, colorCorrect)
	case session.VerdictIncorrect:
		return stylize("Incorrect — the answer is "+sess.Current.CorrectLabel(), m.noColor, colorWrong)
	default:
		return ""
	}
}

// renderHeader renders the title line of inner screens.
func renderHeader(m Model, section string) string {
	line := m.title
	if section != "" {
		line += " | " + section
	}
	return stylize(line, m.noColor, colorGold)
}

func renderLastEvent(m Model, sess session.Session) string {
	if sess.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+sess.LastEvent, m.noColor, lipgloss.Color("244"))
}

// box returns a rounded border style, coloured unless noColor is set.
func box(noColor bool, color lipgloss.Color) lipgloss.Style {
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	if noColor {
		return style
	}
	return style.BorderForeground(color)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
