package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nasermirzaei89/postfeed/discuss"
	"github.com/nasermirzaei89/postfeed/timeline"
)

func (m Model) viewPost(p postModel, focused bool) string {
	var b strings.Builder

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		viewAvatar(p.post.Author.AvatarURL),
		" ",
		authorNameStyle.Render(p.post.Author.Name),
		" ",
		mutedStyle.Render(p.post.Author.Role),
	)

	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf(
		"%s (%s)",
		m.formatter.Relative(p.post.PublishedAt),
		m.formatter.Absolute(p.post.PublishedAt),
	)))
	b.WriteString("\n\n")

	for _, block := range p.post.Content {
		b.WriteString(viewContentBlock(block))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(authorNameStyle.Render("Deixe seu feedback"))
	b.WriteString("\n")
	b.WriteString(viewDraft(p.thread, focused))
	b.WriteString("\n")

	if p.thread.Validation != "" {
		b.WriteString(validationStyle.Render(p.thread.Validation))
		b.WriteString("\n")
	}

	b.WriteString(viewSubmitButton(p.thread))
	b.WriteString("\n")

	for i, comment := range p.thread.Comments {
		b.WriteString("\n")
		b.WriteString(viewComment(comment, focused && i == p.selected))
	}

	style := postStyle
	if focused {
		style = focusedPostStyle
	}

	return style.Width(max(m.width-2, 20)).Render(b.String())
}

func viewAvatar(src string) string {
	return mutedStyle.Render("[" + src + "]")
}

func viewContentBlock(block timeline.ContentBlock) string {
	if block.Kind == timeline.KindLink {
		return linkStyle.Render(block.Text)
	}

	return block.Text
}

func viewDraft(thread discuss.Thread, focused bool) string {
	cursor := ""
	if focused {
		cursor = "█"
	}

	if thread.Draft == "" {
		return mutedStyle.Render("Deixe um comentário") + cursor
	}

	return thread.Draft + cursor
}

func viewSubmitButton(thread discuss.Thread) string {
	if thread.SubmitDisabled() {
		return disabledButtonStyle.Render("Publicar")
	}

	return buttonStyle.Render("Publicar")
}

func viewComment(content string, selected bool) string {
	if selected {
		return selectedCommentStyle.Render("› " + content)
	}

	return commentStyle.Render(content)
}
