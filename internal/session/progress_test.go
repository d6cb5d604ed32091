package session

import (
	"testing"

	"github.com/abhisek/articlequest/internal/articles"
)

func TestProgress_Sequence(t *testing.T) {
	c := startSeeded(t, uniformBank(4, articles.A), 4, 1)

	steps := []struct {
		name string
		op   func()
		want float64
	}{
		{"start", func() {}, 0},
		{"answer 1", func() { c.SubmitAnswer(articles.A) }, 0.25},
		{"advance to 2", func() { c.Advance() }, 0.25},
		{"answer 2", func() { c.SubmitAnswer(articles.The) }, 0.5},
		{"advance to 3", func() { c.Advance() }, 0.5},
		{"no-op advance", func() { c.Advance() }, 0.5},
		{"answer 3", func() { c.SubmitAnswer(articles.A) }, 0.75},
		{"advance to 4", func() { c.Advance() }, 0.75},
		{"answer 4", func() { c.SubmitAnswer(articles.A) }, 1},
		{"restart", func() { c.Restart() }, 0},
	}

	for _, s := range steps {
		s.op()
		if got := c.Progress(); got != s.want {
			t.Errorf("%s: Progress = %v, want %v", s.name, got, s.want)
		}
		if got := c.View().Progress; got != s.want {
			t.Errorf("%s: View().Progress = %v, want %v", s.name, got, s.want)
		}
	}
}

func TestProgress_FinishedIsAlwaysComplete(t *testing.T) {
	c := startSeeded(t, uniformBank(3, articles.An), 3, 1)
	for i := 0; i < 3; i++ {
		c.SubmitAnswer(articles.An)
		c.Advance()
	}
	if !c.IsFinished() {
		t.Fatal("expected finished")
	}
	if c.Progress() != 1 {
		t.Errorf("Progress = %v, want 1", c.Progress())
	}
}

func TestPhase_String(t *testing.T) {
	tests := map[Phase]string{
		PhaseInRound:  "in-round",
		PhaseFeedback: "feedback",
		PhaseFinished: "finished",
		Phase(9):      "unknown",
	}
	for p, want := range tests {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(p), p.String(), want)
		}
	}
}
