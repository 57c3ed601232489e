package matching

import (
	"fmt"
	"testing"

	"devcollab/internal/domain/profile"

	"github.com/google/uuid"
)

func poolOf(profiles ...profile.Profile) []profile.Profile {
	return profiles
}

func namedProfile(name string, level profile.ExperienceLevel, interests ...string) profile.Profile {
	return profile.Profile{
		ID:              uuid.New(),
		FullName:        name,
		ExperienceLevel: level,
		Interests:       interests,
	}
}

func TestRank_ExcludesRequesterAndZeroScores(t *testing.T) {
	requester := namedProfile("Ana", profile.LevelAdvanced, "ml")

	compatible := namedProfile("Ben", profile.LevelAdvanced, "ml")
	// No experience level, no overlap of any kind: scores zero.
	stranger := profile.Profile{ID: uuid.New(), FullName: "Cid", Interests: []string{"gardening"}}

	got := Rank(requester, poolOf(requester, compatible, stranger), FilterSpec{}, 0, nil)

	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got))
	}
	if got[0].Candidate.ID != compatible.ID {
		t.Fatalf("expected compatible candidate, got %s", got[0].Candidate.FullName)
	}
	for _, s := range got {
		if s.Candidate.ID == requester.ID {
			t.Fatalf("requester leaked into its own result set")
		}
		if s.Score == 0 {
			t.Fatalf("zero-score suggestion included")
		}
	}
}

func TestRank_SortedDescendingAndLimited(t *testing.T) {
	requester := namedProfile("Ana", profile.LevelAdvanced, "ml", "web", "games")

	pool := poolOf(
		namedProfile("One", profile.LevelBeginner),                      // 20
		namedProfile("Two", profile.LevelAdvanced, "ml", "web", "games"), // 70
		namedProfile("Three", profile.LevelAdvanced, "ml"),               // 50
		namedProfile("Four", profile.LevelExpert),                        // 30
	)

	got := Rank(requester, pool, FilterSpec{}, 3, nil)

	if len(got) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Fatalf("not sorted descending: %d before %d", got[i-1].Score, got[i].Score)
		}
	}
	if got[0].Candidate.FullName != "Two" {
		t.Fatalf("expected highest scorer first, got %s", got[0].Candidate.FullName)
	}
}

func TestRank_DefaultLimit(t *testing.T) {
	requester := namedProfile("Ana", profile.LevelAdvanced)

	pool := make([]profile.Profile, 0, 15)
	for i := 0; i < 15; i++ {
		pool = append(pool, namedProfile(fmt.Sprintf("c%d", i), profile.LevelAdvanced))
	}

	got := Rank(requester, pool, FilterSpec{}, 0, nil)
	if len(got) != DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultLimit, len(got))
	}
}

func TestRank_Filters(t *testing.T) {
	goSkill := profile.Skill{ID: uuid.New(), Name: "Go"}
	rustSkill := profile.Skill{ID: uuid.New(), Name: "Rust"}

	requester := namedProfile("Ana", profile.LevelAdvanced, "ml")

	withGo := namedProfile("Ben", profile.LevelAdvanced, "ml")
	withGo.Skills = []profile.Skill{goSkill}
	withGo.HoursPerWeek = intPtr(20)

	withRust := namedProfile("Cid", profile.LevelAdvanced, "ml")
	withRust.Skills = []profile.Skill{rustSkill}
	withRust.HoursPerWeek = intPtr(5)

	noHours := namedProfile("Dee", profile.LevelAdvanced, "ml")
	noHours.Skills = []profile.Skill{goSkill}

	pool := poolOf(withGo, withRust, noHours)

	spec := FilterSpec{SkillIDs: []uuid.UUID{goSkill.ID}}
	got := Rank(requester, pool, spec, 0, nil)
	if len(got) != 2 {
		t.Fatalf("skill filter: expected 2 candidates, got %d", len(got))
	}

	spec = FilterSpec{SkillIDs: []uuid.UUID{goSkill.ID}, MinHoursPerWeek: intPtr(10)}
	got = Rank(requester, pool, spec, 0, nil)
	if len(got) != 1 || got[0].Candidate.ID != withGo.ID {
		t.Fatalf("conjunction filter: expected only Ben, got %d results", len(got))
	}

	lvl := profile.LevelExpert
	spec = FilterSpec{ExperienceLevel: &lvl}
	got = Rank(requester, pool, spec, 0, nil)
	if len(got) != 0 {
		t.Fatalf("experience filter: expected no EXPERT candidates, got %d", len(got))
	}

	spec = FilterSpec{Interests: []string{"gardening"}}
	got = Rank(requester, pool, spec, 0, nil)
	if len(got) != 0 {
		t.Fatalf("interest filter: expected no candidates, got %d", len(got))
	}
}

func TestRank_AttachesExplanations(t *testing.T) {
	requester := namedProfile("Ana", profile.LevelAdvanced)
	candidate := namedProfile("Ben", profile.LevelAdvanced)

	calls := 0
	got := Rank(requester, poolOf(candidate), FilterSpec{}, 0,
		func(req, cand profile.Profile, bd Breakdown) string {
			calls++
			return fmt.Sprintf("%s-%s-%d", req.FullName, cand.FullName, bd.Total)
		})

	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got))
	}
	if calls != 1 {
		t.Fatalf("expected 1 explain call, got %d", calls)
	}
	if got[0].Explanation != "Ana-Ben-40" {
		t.Fatalf("unexpected explanation %q", got[0].Explanation)
	}
}
