package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/articlequest/internal/session"
	"github.com/abhisek/articlequest/internal/ui/theme"
)

// HeroVariant selects which grammar hero art to display.
type HeroVariant int

const (
	HeroIdle        HeroVariant = iota // No finished games yet, or a mid score
	HeroCelebrating                    // Last game reached the top tier
	HeroDetermined                     // Last game scored below five
)

const heroIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│a·an·│
└─────┘`

const heroCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ THE │
└─╥═╥─┘
  ╚═╝`

const heroDetermined = `┌─────┐
│ ◉ ◉ │ !
│  ─  │
│a·an·│
└─────┘`

// HeroFor picks the hero variant for the most recent finished score.
// played is false when no game has been finished yet.
func HeroFor(lastScore int, played bool) HeroVariant {
	if !played {
		return HeroIdle
	}
	switch session.TierFor(lastScore) {
	case session.TierTop:
		return HeroCelebrating
	case session.TierEncouragement:
		return HeroDetermined
	default:
		return HeroIdle
	}
}

// RenderHero returns the hero art for the given variant.
func RenderHero(v HeroVariant) string {
	art := heroIdle
	fg := theme.Primary

	switch v {
	case HeroCelebrating:
		art = heroCelebrating
		fg = theme.ArticleThe
	case HeroDetermined:
		art = heroDetermined
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
