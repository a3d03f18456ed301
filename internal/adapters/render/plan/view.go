package plan

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/propcast/internal/application"
	"github.com/bnema/propcast/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

func renderPlan(p application.Plan, s styles) string {
	announced := len(p.Proposals) - len(p.Pending)
	lines := []string{
		s.title.Render("Proposal announcements"),
		s.header.Render(fmt.Sprintf("proposals: %d  announced: %d  pending: %d  tagging: %s",
			len(p.Proposals), announced, len(p.Pending), p.TagMode)),
	}

	if len(p.Proposals) == 0 {
		lines = append(lines, s.empty.Render("No proposals created yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, renderProgressBar(announced, len(p.Proposals), barWidth, s))

	rows := make([]string, 0, len(p.Proposals))
	for _, proposal := range p.Proposals {
		rows = append(rows, proposalLine(proposal, p.Announced(proposal), s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func proposalLine(proposal domain.Proposal, announced bool, s styles) string {
	state := s.pending.Render("pending  ")
	if announced {
		state = s.announced.Render("announced")
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.number.Render(fmt.Sprintf("#%-4d", proposal.Number)),
		" ",
		state,
		" ",
		s.url.Render(proposal.URL),
	)
}

func renderAudience(batches []domain.TagBatch, s styles) string {
	total := 0
	for _, batch := range batches {
		total += len(batch)
	}

	lines := []string{
		s.title.Render("Tagging audience"),
		s.header.Render(fmt.Sprintf("members: %d  replies: %d", total, len(batches))),
	}

	if total == 0 {
		lines = append(lines, s.empty.Render("No holders resolve to a Farcaster username."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([]string, 0, len(batches))
	for i, batch := range batches {
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.batchKey.Render(fmt.Sprintf("reply %d:", i+1)),
			" ",
			s.mention.Render(batch.Text()),
		))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProgressBar(done int, total int, width int, s styles) string {
	if width <= 0 || total <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * float64(done) / float64(total)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
		" ",
		s.header.Render(fmt.Sprintf("%d/%d announced", done, total)),
	)
}
