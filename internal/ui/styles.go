// Package ui renders shell output: status and review colors, tables and
// terminal detection.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jsprint/jsprint/internal/agile"
)

// ANSI palette, matching the colors most terminals theme consistently
var (
	ColorBlue   = lipgloss.Color("4")
	ColorRed    = lipgloss.Color("1")
	ColorYellow = lipgloss.Color("3")
	ColorGreen  = lipgloss.Color("2")
)

// Review markers, longest first. ReviewPadding is the width they are padded to.
const (
	MarkerHigh    = "******"
	MarkerMedium  = "****"
	MarkerLow     = "**"
	MarkerUnknown = "------"
	ReviewPadding = 6
)

type styles struct {
	bold     lipgloss.Style
	fail     lipgloss.Style
	status   map[agile.StatusCategory]lipgloss.Style
	review   map[agile.ReviewLevel]lipgloss.Style
	fallback lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		bold: r.NewStyle().Bold(true),
		fail: r.NewStyle().Foreground(ColorRed).Bold(true),
		status: map[agile.StatusCategory]lipgloss.Style{
			agile.CategoryBacklog:    r.NewStyle().Foreground(ColorBlue),
			agile.CategoryInProgress: r.NewStyle().Foreground(ColorRed),
			agile.CategoryInReview:   r.NewStyle().Foreground(ColorYellow),
			agile.CategoryDone:       r.NewStyle().Foreground(ColorGreen),
		},
		review: map[agile.ReviewLevel]lipgloss.Style{
			agile.ReviewLow:     r.NewStyle().Foreground(ColorGreen),
			agile.ReviewMedium:  r.NewStyle().Foreground(ColorYellow),
			agile.ReviewHigh:    r.NewStyle().Foreground(ColorRed).Bold(true),
			agile.ReviewUnknown: r.NewStyle().Bold(true),
		},
		fallback: r.NewStyle(),
	}
}

// ReviewMarker returns the unstyled marker of a review level
func ReviewMarker(level agile.ReviewLevel) string {
	switch level {
	case agile.ReviewLow:
		return MarkerLow
	case agile.ReviewMedium:
		return MarkerMedium
	case agile.ReviewHigh:
		return MarkerHigh
	default:
		return MarkerUnknown
	}
}
