package transcript

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/wikiask-cli/internal/application"
	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const defaultWrapWidth = 80

type RenderOptions struct {
	// Width is the word wrap width for assistant markdown. Zero means 80.
	Width int
	// Markdown renders assistant replies through glamour.
	Markdown bool
}

func (o RenderOptions) width() int {
	if o.Width <= 0 {
		return defaultWrapWidth
	}
	return o.Width
}

func RenderMessages(expert domain.Expert, messages []domain.Message, opts RenderOptions) string {
	return renderMessages(expert, messages, opts, newStyles(), newMarkdownRenderer(opts))
}

func renderMessages(expert domain.Expert, messages []domain.Message, opts RenderOptions, s styles, md *glamour.TermRenderer) string {
	if len(messages) == 0 {
		return s.empty.Render("No messages yet.")
	}

	blocks := make([]string, 0, len(messages))
	for i, message := range messages {
		block := renderMessage(expert, message, s, md)
		if i > 0 {
			block = s.section.Render(block)
		}
		blocks = append(blocks, block)
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderMessage(expert domain.Expert, message domain.Message, s styles, md *glamour.TermRenderer) string {
	var speaker string
	if message.Role == domain.RoleUser {
		speaker = s.user.Render("Vous")
	} else {
		speaker = s.assistant.Render(fmt.Sprintf("%s %s", expert.Emoji, expert.Name))
	}

	heading := speaker + " " + s.timestamp.Render(message.Timestamp.Local().Format("15:04"))
	if message.Mode != nil {
		heading += " " + s.mode.Render("["+message.Mode.Label()+"]")
	}

	body := message.Content
	if message.Role == domain.RoleAssistant && md != nil {
		if rendered, err := md.Render(body); err == nil {
			body = strings.TrimRight(rendered, "\n")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, heading, s.detail.Render(body))
}

// RenderProgress draws the research timeline. An idle animator renders "".
func RenderProgress(progress application.Progress) string {
	return renderProgress(progress, newStyles())
}

func renderProgress(progress application.Progress, s styles) string {
	if len(progress.Steps) == 0 {
		return ""
	}

	lines := make([]string, 0, len(progress.Steps)+1)
	for _, step := range progress.Steps {
		lines = append(lines, renderStep(step, s))
	}
	if progress.Label != "" {
		lines = append(lines, s.label.Render(progress.Label))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderStep(step domain.ResearchStep, s styles) string {
	switch step.Status {
	case domain.StepDone:
		return s.stepDone.Render(fmt.Sprintf("✓ %s %s", step.Icon, step.Name))
	case domain.StepSearching:
		return s.stepActive.Render(fmt.Sprintf("… %s %s", step.Icon, step.Name))
	default:
		return s.stepPending.Render(fmt.Sprintf("· %s %s", step.Icon, step.Name))
	}
}

func RenderExperts(experts []application.ExpertSummary, verbose bool) string {
	s := newStyles()
	lines := []string{
		s.title.Render("Experts"),
		s.header.Render(fmt.Sprintf("experts: %d", len(experts))),
	}

	if len(experts) == 0 {
		lines = append(lines, s.empty.Render("No experts available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, expert := range experts {
		title := fmt.Sprintf("%s %s (%s)", expert.Emoji, expert.Name, expert.ID)
		if expert.SupportsModes {
			title += " " + s.mode.Render("[modes: fast, normal, deep]")
		}
		block := []string{s.user.Render(title)}
		if expert.Tagline != "" {
			block = append(block, s.detail.Render(expert.Tagline))
		}
		if verbose {
			for _, question := range expert.ExampleQuestions {
				block = append(block, s.hint.Render("  › "+question))
			}
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, block...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderHistory(items []domain.HistoryItem, now time.Time) string {
	s := newStyles()
	lines := []string{
		s.title.Render("History"),
		s.header.Render(fmt.Sprintf("entries: %d", len(items))),
	}

	if len(items) == 0 {
		lines = append(lines, s.empty.Render("No queries recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, item := range items {
		meta := fmt.Sprintf("%s · %s", item.Expert, formatAge(item.Timestamp, now))
		if item.Mode != "" {
			meta += " · " + item.Mode.Label()
		}
		lines = append(lines, fmt.Sprintf("%s %s", s.detail.Render(item.Query), s.timestamp.Render("("+meta+")")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatAge(at, now time.Time) string {
	if at.IsZero() {
		return "unknown"
	}
	if now.IsZero() {
		return at.Format(time.RFC3339)
	}

	elapsed := now.Sub(at)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	default:
		return at.Local().Format("02 Jan 15:04")
	}
}

func newMarkdownRenderer(opts RenderOptions) *glamour.TermRenderer {
	if !opts.Markdown {
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(opts.width()),
	)
	if err != nil {
		return nil
	}
	return renderer
}
