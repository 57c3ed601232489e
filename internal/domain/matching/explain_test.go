package matching

import (
	"strings"
	"testing"

	"devcollab/internal/domain/profile"
)

func TestFallbackExplanation_AllClauses(t *testing.T) {
	a := profile.Profile{
		FullName:     "Ana",
		Timezone:     strPtr("UTC"),
		HoursPerWeek: intPtr(10),
	}
	b := profile.Profile{
		FullName:     "Ben",
		Timezone:     strPtr("UTC"),
		HoursPerWeek: intPtr(10),
	}
	bd := Breakdown{Total: 74, CommonSkills: 2, CommonInterests: 1}

	got := FallbackExplanation(a, b, bd)
	if got == "" {
		t.Fatalf("fallback produced empty text")
	}

	for _, want := range []string{
		"Ana and Ben have a 74% compatibility score.",
		"2 technical skills",
		"1 common interest,",
		"same timezone",
		"matching availability",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("fallback missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "interests,") {
		t.Fatalf("single common interest should not be pluralized: %q", got)
	}
}

func TestFallbackExplanation_SparseProfiles(t *testing.T) {
	a := profile.Profile{FullName: "Ana"}
	b := profile.Profile{FullName: "Ben"}

	got := FallbackExplanation(a, b, Breakdown{Total: 0})
	if got != "Ana and Ben have a 0% compatibility score." {
		t.Fatalf("unexpected sparse fallback %q", got)
	}
}

func TestBuildExplanationPrompt_ContainsProfileContext(t *testing.T) {
	a := profile.Profile{
		FullName:        "Ana",
		Bio:             "Backend tinkerer",
		ExperienceLevel: profile.LevelAdvanced,
		Interests:       []string{"ml", "web"},
		Skills:          []profile.Skill{{Name: "Go"}, {Name: "Postgres"}},
		HoursPerWeek:    intPtr(10),
		RecentProjects:  []string{"alpha", "beta", "gamma", "delta"},
	}
	b := profile.Profile{FullName: "Ben"}

	got := BuildExplanationPrompt(a, b, Breakdown{Total: 74, CommonSkills: 2, CommonInterests: 1})

	for _, want := range []string{
		"Developer 1: Ana",
		"Developer 2: Ben",
		"Backend tinkerer",
		"Go, Postgres",
		"ml, web",
		"Compatibility Score: 74/100",
		"Common Skills: 2",
		"Common Interests: 1",
		"alpha, beta, gamma",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}

	if strings.Contains(got, "delta") {
		t.Fatalf("prompt should carry at most three project titles")
	}
	if !strings.Contains(got, "Bio: N/A") {
		t.Fatalf("absent bio should render as N/A")
	}
}
