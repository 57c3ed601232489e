package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"devcollab/internal/domain/matching"
	"devcollab/internal/domain/profile"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func explainFixtures() (profile.Profile, profile.Profile, matching.Breakdown) {
	tz := "UTC"
	hours := 10
	a := profile.Profile{FullName: "Ana", Timezone: &tz, HoursPerWeek: &hours}
	b := profile.Profile{FullName: "Ben", Timezone: &tz, HoursPerWeek: &hours}
	return a, b, matching.Breakdown{Total: 74, CommonSkills: 2, CommonInterests: 1}
}

func TestExplainer_UsesGenerator(t *testing.T) {
	gen := &stubGenerator{text: "Great pair."}
	e := NewExplainer(gen, time.Second, quietLogger())

	a, b, bd := explainFixtures()
	got := e.Explain(context.Background(), a, b, bd)
	if got != "Great pair." {
		t.Fatalf("expected generator text, got %q", got)
	}
	if gen.calls != 1 {
		t.Fatalf("expected 1 generator call, got %d", gen.calls)
	}
}

func TestExplainer_FallbackOnGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	e := NewExplainer(gen, time.Second, quietLogger())

	a, b, bd := explainFixtures()
	got := e.Explain(context.Background(), a, b, bd)

	if got == "" {
		t.Fatalf("fallback must never be empty")
	}
	for _, want := range []string{"74%", "2 technical skills", "1 common interest", "timezone", "availability"} {
		if !strings.Contains(got, want) {
			t.Fatalf("fallback missing %q in %q", want, got)
		}
	}
}

func TestExplainer_NilGeneratorSkipsExternalCall(t *testing.T) {
	e := NewExplainer(nil, time.Second, quietLogger())

	a, b, bd := explainFixtures()
	got := e.Explain(context.Background(), a, b, bd)
	if !strings.Contains(got, "Ana and Ben have a 74% compatibility score.") {
		t.Fatalf("expected deterministic fallback, got %q", got)
	}
}
