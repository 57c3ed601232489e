package matching

import (
	"testing"

	"devcollab/internal/domain/profile"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func sharedSkills(n int) []profile.Skill {
	skills := make([]profile.Skill, 0, n)
	for i := 0; i < n; i++ {
		skills = append(skills, profile.Skill{ID: uuid.New(), Name: "skill"})
	}
	return skills
}

func TestScore_WorkedExample(t *testing.T) {
	shared := sharedSkills(2)

	requester := profile.Profile{
		ID:              uuid.New(),
		ExperienceLevel: profile.LevelAdvanced,
		Interests:       []string{"ml", "web"},
		HoursPerWeek:    intPtr(10),
		Timezone:        strPtr("UTC"),
		Skills:          shared,
	}
	candidate := profile.Profile{
		ID:              uuid.New(),
		ExperienceLevel: profile.LevelAdvanced,
		Interests:       []string{"ml", "games"},
		HoursPerWeek:    intPtr(10),
		Timezone:        strPtr("UTC"),
		Skills:          shared,
	}

	bd := Score(requester, candidate)
	// 40 (equal level) + 10 (one interest) + 20 (tz + hours) + 4 (two skills)
	if bd.Total != 74 {
		t.Fatalf("expected total 74, got %d", bd.Total)
	}
	if bd.CommonSkills != 2 {
		t.Fatalf("expected 2 common skills, got %d", bd.CommonSkills)
	}
	if bd.CommonInterests != 1 {
		t.Fatalf("expected 1 common interest, got %d", bd.CommonInterests)
	}
}

func TestScore_Symmetry(t *testing.T) {
	shared := sharedSkills(3)

	cases := []struct {
		name string
		a, b profile.Profile
	}{
		{
			name: "full profiles",
			a: profile.Profile{
				ExperienceLevel: profile.LevelBeginner,
				Interests:       []string{"web", "cli"},
				Timezone:        strPtr("Asia/Jakarta"),
				HoursPerWeek:    intPtr(20),
				Skills:          shared,
			},
			b: profile.Profile{
				ExperienceLevel: profile.LevelExpert,
				Interests:       []string{"cli"},
				Timezone:        strPtr("UTC"),
				HoursPerWeek:    intPtr(5),
				Skills:          shared[:1],
			},
		},
		{
			name: "sparse profiles",
			a:    profile.Profile{ExperienceLevel: profile.LevelIntermediate},
			b:    profile.Profile{Interests: []string{"ml"}},
		},
	}

	for _, tc := range cases {
		ab := Score(tc.a, tc.b)
		ba := Score(tc.b, tc.a)
		if ab.Total != ba.Total {
			t.Fatalf("%s: asymmetric score: %d vs %d", tc.name, ab.Total, ba.Total)
		}
		if ab.Total < 0 || ab.Total > 100 {
			t.Fatalf("%s: score out of range: %d", tc.name, ab.Total)
		}
	}
}

func TestScore_ExperienceTerm(t *testing.T) {
	cases := []struct {
		name string
		a, b profile.ExperienceLevel
		want int
	}{
		{"equal levels", profile.LevelIntermediate, profile.LevelIntermediate, 40},
		{"one apart", profile.LevelBeginner, profile.LevelIntermediate, 30},
		{"two apart", profile.LevelBeginner, profile.LevelAdvanced, 20},
		{"three apart", profile.LevelBeginner, profile.LevelExpert, 10},
		{"missing on one side", "", profile.LevelExpert, 0},
		{"missing on both sides", "", "", 0},
	}

	for _, tc := range cases {
		bd := Score(profile.Profile{ExperienceLevel: tc.a}, profile.Profile{ExperienceLevel: tc.b})
		if bd.Total != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, bd.Total)
		}
	}
}

func TestScore_InterestTermCapped(t *testing.T) {
	interests := []string{"ml", "web", "games", "iot", "cli"}
	a := profile.Profile{Interests: interests}
	b := profile.Profile{Interests: interests}

	bd := Score(a, b)
	if bd.Total != 30 {
		t.Fatalf("expected interest term capped at 30, got %d", bd.Total)
	}
	if bd.CommonInterests != 5 {
		t.Fatalf("expected raw common interest count 5, got %d", bd.CommonInterests)
	}
}

func TestScore_SkillTermCapped(t *testing.T) {
	shared := sharedSkills(7)
	bd := Score(profile.Profile{Skills: shared}, profile.Profile{Skills: shared})
	if bd.Total != 10 {
		t.Fatalf("expected skill term capped at 10, got %d", bd.Total)
	}
	if bd.CommonSkills != 7 {
		t.Fatalf("expected raw common skill count 7, got %d", bd.CommonSkills)
	}
}

func TestScore_AvailabilityRequiresExactMatch(t *testing.T) {
	a := profile.Profile{Timezone: strPtr("UTC"), HoursPerWeek: intPtr(10)}
	b := profile.Profile{Timezone: strPtr("UTC"), HoursPerWeek: intPtr(12)}

	bd := Score(a, b)
	if bd.Total != 10 {
		t.Fatalf("expected only the timezone bonus, got %d", bd.Total)
	}

	b.Timezone = nil
	bd = Score(a, b)
	if bd.Total != 0 {
		t.Fatalf("expected no availability bonus with absent timezone, got %d", bd.Total)
	}
}

func TestScore_DuplicateEntriesCountOnce(t *testing.T) {
	id := uuid.New()
	a := profile.Profile{
		Interests: []string{"ml", "ml"},
		Skills:    []profile.Skill{{ID: id, Name: "Go"}, {ID: id, Name: "Go"}},
	}
	b := profile.Profile{
		Interests: []string{"ml"},
		Skills:    []profile.Skill{{ID: id, Name: "Go"}},
	}

	bd := Score(a, b)
	if bd.CommonInterests != 1 {
		t.Fatalf("expected duplicate interests collapsed to 1, got %d", bd.CommonInterests)
	}
	if bd.CommonSkills != 1 {
		t.Fatalf("expected duplicate skills collapsed to 1, got %d", bd.CommonSkills)
	}
	if bd.Total != 12 {
		t.Fatalf("expected 10 + 2, got %d", bd.Total)
	}
}

func TestScore_TotalNeverExceedsHundred(t *testing.T) {
	shared := sharedSkills(10)
	interests := []string{"a", "b", "c", "d", "e", "f"}

	a := profile.Profile{
		ExperienceLevel: profile.LevelExpert,
		Interests:       interests,
		Timezone:        strPtr("UTC"),
		HoursPerWeek:    intPtr(40),
		Skills:          shared,
	}

	bd := Score(a, a)
	if bd.Total != 100 {
		t.Fatalf("expected perfect score 100, got %d", bd.Total)
	}
}
