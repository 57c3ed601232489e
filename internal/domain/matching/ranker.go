package matching

import (
	"sort"

	"devcollab/internal/domain/profile"

	"github.com/google/uuid"
)

// DefaultLimit bounds a ranking result when the caller does not ask for a
// specific size.
const DefaultLimit = 10

// FilterSpec narrows a candidate pool before scoring. The zero value
// filters nothing. All active filters are combined with AND; skill and
// interest filters are satisfied by any single overlap.
type FilterSpec struct {
	SkillIDs        []uuid.UUID
	Interests       []string
	ExperienceLevel *profile.ExperienceLevel
	MinHoursPerWeek *int
}

func (f FilterSpec) Matches(p profile.Profile) bool {
	if len(f.SkillIDs) > 0 && !hasAnySkill(p, f.SkillIDs) {
		return false
	}
	if len(f.Interests) > 0 && !hasAnyInterest(p, f.Interests) {
		return false
	}
	if f.ExperienceLevel != nil && p.ExperienceLevel != *f.ExperienceLevel {
		return false
	}
	if f.MinHoursPerWeek != nil {
		if p.HoursPerWeek == nil || *p.HoursPerWeek < *f.MinHoursPerWeek {
			return false
		}
	}
	return true
}

// Suggestion is an ephemeral ranking result. It is built per query and
// never persisted.
type Suggestion struct {
	Candidate       profile.Profile
	Score           int
	Explanation     string
	CommonSkills    int
	CommonInterests int
}

// ExplainFunc produces the prose attached to a surviving candidate.
type ExplainFunc func(requester, candidate profile.Profile, bd Breakdown) string

// Rank filters the pool against the spec, scores every survivor against
// the requester, drops zero-score candidates, and returns at most limit
// suggestions sorted by descending score. The sort is stable, so
// equal-score candidates keep their pool order; no secondary key is
// defined.
func Rank(requester profile.Profile, pool []profile.Profile, spec FilterSpec, limit int, explain ExplainFunc) []Suggestion {
	if limit <= 0 {
		limit = DefaultLimit
	}

	suggestions := make([]Suggestion, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == requester.ID {
			continue
		}
		if !spec.Matches(candidate) {
			continue
		}

		bd := Score(requester, candidate)
		if bd.Total == 0 {
			// Zero means no meaningful compatibility at all.
			continue
		}

		suggestions = append(suggestions, Suggestion{
			Candidate:       candidate,
			Score:           bd.Total,
			CommonSkills:    bd.CommonSkills,
			CommonInterests: bd.CommonInterests,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	if explain != nil {
		for i := range suggestions {
			bd := Breakdown{
				Total:           suggestions[i].Score,
				CommonSkills:    suggestions[i].CommonSkills,
				CommonInterests: suggestions[i].CommonInterests,
			}
			suggestions[i].Explanation = explain(requester, suggestions[i].Candidate, bd)
		}
	}

	return suggestions
}

func hasAnySkill(p profile.Profile, ids []uuid.UUID) bool {
	for _, id := range ids {
		if p.HasSkill(id) {
			return true
		}
	}
	return false
}

func hasAnyInterest(p profile.Profile, interests []string) bool {
	for _, it := range interests {
		if p.HasInterest(it) {
			return true
		}
	}
	return false
}
