// Package tui renders the feed in a terminal with Bubble Tea. Each post owns
// its own thread for as long as the program runs.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nasermirzaei89/postfeed/discuss"
	"github.com/nasermirzaei89/postfeed/timefmt"
	"github.com/nasermirzaei89/postfeed/timeline"
)

// postModel is one mounted post view.
type postModel struct {
	post     *timeline.Post
	thread   discuss.Thread
	selected int // selected comment, -1 when none
}

type Model struct {
	posts     []postModel
	focused   int
	formatter *timefmt.Formatter
	width     int
}

func New(posts []*timeline.Post, formatter *timefmt.Formatter) Model {
	models := make([]postModel, 0, len(posts))

	for _, post := range posts {
		models = append(models, postModel{
			post:     post,
			thread:   discuss.NewThread(),
			selected: -1,
		})
	}

	return Model{
		posts:     models,
		focused:   0,
		formatter: formatter,
		width:     80,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	}

	if len(m.posts) == 0 {
		return m, nil
	}

	current := m.posts[m.focused]

	switch msg.Type {
	case tea.KeyTab:
		m.focused = (m.focused + 1) % len(m.posts)
	case tea.KeyShiftTab:
		m.focused = (m.focused + len(m.posts) - 1) % len(m.posts)
	case tea.KeyUp:
		m.posts[m.focused] = current.moveSelection(-1)
	case tea.KeyDown:
		m.posts[m.focused] = current.moveSelection(1)
	case tea.KeyCtrlD:
		if current.selected >= 0 {
			text := current.thread.Comments[current.selected]
			m.posts[m.focused] = current.dispatch(discuss.DeleteCommentRequested{Text: text})
		}
	case tea.KeyEnter:
		if current.thread.SubmitDisabled() {
			m.posts[m.focused] = current.dispatch(discuss.SubmitRejected{})
		} else {
			m.posts[m.focused] = current.dispatch(discuss.CommentSubmitted{})
		}
	case tea.KeyBackspace:
		draft := []rune(current.thread.Draft)
		if len(draft) > 0 {
			m.posts[m.focused] = current.dispatch(discuss.DraftEdited{Text: string(draft[:len(draft)-1])})
		}
	case tea.KeySpace:
		m.posts[m.focused] = current.dispatch(discuss.DraftEdited{Text: current.thread.Draft + " "})
	case tea.KeyRunes:
		m.posts[m.focused] = current.dispatch(discuss.DraftEdited{Text: current.thread.Draft + string(msg.Runes)})
	}

	return m, nil
}

func (p postModel) dispatch(msg discuss.Message) postModel {
	p.thread = discuss.Update(p.thread, msg)

	if p.selected >= len(p.thread.Comments) {
		p.selected = len(p.thread.Comments) - 1
	}

	return p
}

func (p postModel) moveSelection(delta int) postModel {
	if len(p.thread.Comments) == 0 {
		p.selected = -1

		return p
	}

	p.selected = max(0, min(len(p.thread.Comments)-1, p.selected+delta))

	return p
}

func (m Model) View() string {
	if len(m.posts) == 0 {
		return mutedStyle.Render("Nenhuma publicação por aqui.") + "\n"
	}

	var b strings.Builder

	for i, post := range m.posts {
		b.WriteString(m.viewPost(post, i == m.focused))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render("tab: próxima publicação • ↑/↓: comentário • ctrl+d: deletar • enter: publicar • esc: sair"))
	b.WriteString("\n")

	return b.String()
}
