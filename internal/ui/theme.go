package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PixelQuest theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconTask    = "📋"
	IconDone    = "✅"
	IconPoints  = "🪙"
	IconStreak  = "🔥"
	IconCard    = "🎴"
	IconBox     = "📦"
	IconSparkle = "✨"
	IconStar    = "★"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconMerge   = "⚗️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cPurple  = lipgloss.Color("99")  // epic purple
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
)

// Rarity palette: gray for common, blue, purple, gold.
var rarityStyles = map[string]lipgloss.Style{
	"common":    lipgloss.NewStyle().Foreground(cMuted),
	"rare":      lipgloss.NewStyle().Bold(true).Foreground(cPrimary),
	"epic":      lipgloss.NewStyle().Bold(true).Foreground(cPurple),
	"legendary": lipgloss.NewStyle().Bold(true).Foreground(cGold),
}

func RarityText(rarity string) string {
	s, ok := rarityStyles[strings.ToLower(rarity)]
	if !ok {
		return rarity
	}
	return s.Render(strings.ToUpper(rarity))
}

// CategoryText renders a category label in its color tag, falling back to the
// muted style for unknown colors.
func CategoryText(name, color string) string {
	c, ok := map[string]lipgloss.Color{
		"red":    cBad,
		"orange": cWarn,
		"yellow": cGold,
		"green":  cGood,
		"blue":   cPrimary,
		"purple": cPurple,
		"pink":   cAccent,
		"gray":   cMuted,
	}[strings.ToLower(color)]
	if !ok {
		c = cMuted
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(name)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Stars renders a card's star level, e.g. "★★☆☆☆" for 2 of 5.
func Stars(level, max int) string {
	if level < 0 {
		level = 0
	}
	if level > max {
		level = max
	}
	return Gold.Render(strings.Repeat("★", level)) + Muted.Render(strings.Repeat("☆", max-level))
}

// ArtURL derives the deterministic pixel-art location for a cosmetic seed.
func ArtURL(seed string) string {
	return "https://api.dicebear.com/7.x/pixel-art/svg?seed=" + seed
}
