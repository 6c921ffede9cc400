package transcript

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/wikiask-cli/internal/application"
	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	inputCharLimit = 2000
	chromeHeight   = 6
)

// ProgressMsg carries an animator snapshot into the program.
type ProgressMsg application.Progress

type replyMsg struct {
	message domain.Message
	err     error
}

// ChatModel is the interactive `wa chat` screen.
type ChatModel struct {
	ctx     context.Context
	session *application.ChatSession
	opts    RenderOptions
	styles  styles
	md      *glamour.TermRenderer

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	progress application.Progress
	loading  bool
	status   string
	ready    bool
}

func NewChatModel(ctx context.Context, session *application.ChatSession, opts RenderOptions) ChatModel {
	s := newStyles()

	input := textinput.New()
	input.Placeholder = "Pose ta question… (Entrée pour envoyer, Échap pour quitter)"
	input.Prompt = "│ "
	input.CharLimit = inputCharLimit
	input.Width = opts.width()
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	vp := viewport.New(opts.width(), 20)

	m := ChatModel{
		ctx:      ctx,
		session:  session,
		opts:     opts,
		styles:   s,
		md:       newMarkdownRenderer(opts),
		input:    input,
		spinner:  sp,
		viewport: vp,
	}
	m.refresh()

	return m
}

func (m ChatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlN:
			m.session.NewConversation()
			m.status = "Nouvelle conversation"
			m.refresh()
			return m, nil
		case tea.KeyCtrlT:
			if m.session.Expert().SupportsModes {
				next := m.session.Mode().Next()
				_ = m.session.SetMode(next)
				m.status = "Mode: " + next.Label()
			}
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Reset()
			m.loading = true
			m.status = ""
			return m, tea.Batch(m.submit(text), m.spinner.Tick)
		}

		if !m.loading {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width < 20 {
			width = 20
		}
		height := msg.Height - chromeHeight - len(m.progress.Steps)
		if height < 3 {
			height = 3
		}
		m.viewport.Width = width
		m.viewport.Height = height
		m.input.Width = width
		m.opts.Width = width
		m.md = newMarkdownRenderer(m.opts)
		m.ready = true
		m.refresh()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.refresh()
			return m, cmd
		}

	case ProgressMsg:
		m.progress = application.Progress(msg)

	case replyMsg:
		m.loading = false
		var classified *domain.ClassifiedError
		if msg.err != nil && !errors.As(msg.err, &classified) {
			m.status = msg.err.Error()
		}
		m.refresh()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m ChatModel) View() string {
	expert := m.session.Expert()
	header := m.styles.title.Render(fmt.Sprintf("%s %s", expert.Emoji, expert.Name))
	if expert.SupportsModes {
		header += " " + m.styles.mode.Render("["+m.session.Mode().Label()+"]")
	}

	parts := []string{header, m.viewport.View()}
	if progress := renderProgress(m.progress, m.styles); progress != "" {
		parts = append(parts, progress)
	}
	if m.loading {
		parts = append(parts, m.spinner.View()+" "+m.styles.label.Render("Réflexion en cours…"))
	}
	if m.status != "" {
		parts = append(parts, m.styles.warning.Render(m.status))
	}
	parts = append(parts, m.input.View(), m.styles.hint.Render(m.hints()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m ChatModel) hints() string {
	hints := "entrée envoyer · ctrl+n nouvelle conversation"
	if m.session.Expert().SupportsModes {
		hints += " · ctrl+t mode"
	}
	return hints + " · échap quitter"
}

func (m ChatModel) submit(text string) tea.Cmd {
	return func() tea.Msg {
		message, err := m.session.Submit(m.ctx, text)
		return replyMsg{message: message, err: err}
	}
}

func (m *ChatModel) refresh() {
	messages := m.session.Log().Messages()
	content := renderMessages(m.session.Expert(), messages, m.opts, m.styles, m.md)
	if len(messages) == 1 && len(m.session.Expert().ExampleQuestions) > 0 {
		examples := make([]string, 0, len(m.session.Expert().ExampleQuestions))
		for _, question := range m.session.Expert().ExampleQuestions {
			examples = append(examples, m.styles.hint.Render("  › "+question))
		}
		content = lipgloss.JoinVertical(lipgloss.Left, append([]string{content, ""}, examples...)...)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}
