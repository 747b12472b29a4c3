package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Adda-Baaj/quicknews/internal/domain"
)

const bannerText = "QuickNews"

// Renderer prints headlines to a terminal-like writer.
type Renderer struct {
	themeFor func(w io.Writer) Theme
}

// New returns a Renderer using DefaultTheme.
func New() *Renderer {
	return &Renderer{themeFor: func(w io.Writer) Theme {
		return DefaultTheme(lipgloss.NewRenderer(w))
	}}
}

// NewWithTheme returns a Renderer that always uses th.
func NewWithTheme(th Theme) *Renderer {
	return &Renderer{themeFor: func(io.Writer) Theme { return th }}
}

// Banner prints the title line.
func (r *Renderer) Banner(w io.Writer) error {
	th := r.themeFor(w)
	_, err := fmt.Fprintf(w, "%s\n\n", th.Title.Render("# "+bannerText))
	return err
}

// Articles prints a heading, a quoted URL and a separator for each article, in order.
func (r *Renderer) Articles(w io.Writer, articles []domain.Article) error {
	th := r.themeFor(w)
	rule := strings.Repeat("─", max(th.RuleWidth, 3))

	for _, a := range articles {
		lines := []string{
			th.Heading.Render("# " + a.Title),
			th.QuoteMark.Render(th.Mark) + " " + th.URL.Render(a.URL),
			th.Separator.Render(rule),
		}
		if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
			return fmt.Errorf("write article %q: %w", a.URL, err)
		}
	}
	return nil
}

// Render prints the banner followed by every article.
func (r *Renderer) Render(w io.Writer, articles []domain.Article) error {
	if err := r.Banner(w); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}
	return r.Articles(w, articles)
}
