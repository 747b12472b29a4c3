package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/Adda-Baaj/quicknews/internal/domain"
)

func plainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:     plain,
		Heading:   plain,
		QuoteMark: plain,
		URL:       plain,
		Separator: plain,
		Mark:      ">",
		RuleWidth: 3,
	}
}

func TestRenderPrintsArticlesInOrder(t *testing.T) {
	var buf bytes.Buffer
	articles := []domain.Article{
		{Title: "First", URL: "https://example.com/1"},
		{Title: "Second", URL: "https://example.com/2"},
	}

	if err := NewWithTheme(plainTheme()).Render(&buf, articles); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "# QuickNews\n\n" +
		"# First\n> https://example.com/1\n───\n" +
		"# Second\n> https://example.com/2\n───\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderEmptyListPrintsBannerOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWithTheme(plainTheme()).Render(&buf, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := buf.String(); got != "# QuickNews\n\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestDefaultRendererKeepsTextForNonTerminalWriters(t *testing.T) {
	var buf bytes.Buffer
	err := New().Render(&buf, []domain.Article{{Title: "Headline", URL: "https://example.com/a"}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"QuickNews", "# Headline", "▐", "https://example.com/a", "─"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRenderPropagatesWriteErrors(t *testing.T) {
	err := NewWithTheme(plainTheme()).Render(failingWriter{}, []domain.Article{{Title: "A", URL: "u"}})
	if err == nil {
		t.Fatal("expected write error")
	}
}
