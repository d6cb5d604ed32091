package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/articlequest/internal/articles"
	"github.com/abhisek/articlequest/internal/ui/theme"
)

// ArticlePicker is a horizontal selector over the article options. Each
// option can be picked directly by its number or shortcut letter, or by
// moving the cursor and pressing Enter.
type ArticlePicker struct {
	Options []articles.Article
	Cursor  int

	direct []key.Binding
}

// NewArticlePicker creates a picker over opts with the cursor on the first.
func NewArticlePicker(opts []articles.Article) ArticlePicker {
	direct := make([]key.Binding, len(opts))
	for i, a := range opts {
		n := strconv.Itoa(i + 1)
		direct[i] = key.NewBinding(
			key.WithKeys(n, a.Shortcut()),
			key.WithHelp(n, a.Label()),
		)
	}
	return ArticlePicker{Options: opts, direct: direct}
}

// Update handles navigation. It returns the chosen article and true when
// the key press selects an option.
func (p ArticlePicker) Update(msg tea.Msg) (ArticlePicker, articles.Article, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.Options) == 0 {
		return p, "", false
	}

	for i, b := range p.direct {
		if key.Matches(kmsg, b) {
			p.Cursor = i
			return p, p.Options[i], true
		}
	}

	switch {
	case key.Matches(kmsg, KeyLeft, KeyUp):
		if p.Cursor > 0 {
			p.Cursor--
		}
	case key.Matches(kmsg, KeyRight, KeyDown):
		if p.Cursor < len(p.Options)-1 {
			p.Cursor++
		}
	case key.Matches(kmsg, KeySelect):
		return p, p.Options[p.Cursor], true
	}
	return p, "", false
}

// Bindings returns the direct-pick bindings, in option order.
func (p ArticlePicker) Bindings() []key.Binding {
	return p.direct
}

// Marks for answered options.
const (
	MarkCorrect   = "✓"
	MarkIncorrect = "✗"
)

// OptionMark returns the mark shown next to opt once a round is answered:
// a check on the correct article, a cross on a wrong selection, nothing
// otherwise.
func OptionMark(opt, selected, correct articles.Article) string {
	switch {
	case opt == correct:
		return MarkCorrect
	case opt == selected:
		return MarkIncorrect
	default:
		return ""
	}
}

// View renders the options in a row. While answered is false the cursor is
// highlighted; afterwards options are colored by outcome.
func (p ArticlePicker) View(answered bool, selected, correct articles.Article) string {
	buttons := make([]string, 0, len(p.Options))
	for i, opt := range p.Options {
		label := strconv.Itoa(i+1) + "  " + opt.Label()

		style := theme.OptionButton
		switch {
		case answered && opt == correct:
			style = style.Foreground(theme.Success).BorderForeground(theme.Success).Bold(true)
		case answered && opt == selected:
			style = style.Foreground(theme.Error).BorderForeground(theme.Error)
		case answered:
			style = style.Foreground(theme.TextDim).BorderForeground(theme.Border)
		case i == p.Cursor:
			style = style.Foreground(theme.ArticleColor(opt)).BorderForeground(theme.Primary).Bold(true)
		default:
			style = style.Foreground(theme.ArticleColor(opt)).BorderForeground(theme.Border)
		}

		if answered {
			if mark := OptionMark(opt, selected, correct); mark != "" {
				label += " " + mark
			}
		}
		if len(buttons) > 0 {
			buttons = append(buttons, strings.Repeat(" ", 2))
		}
		buttons = append(buttons, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}
