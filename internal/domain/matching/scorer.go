package matching

import (
	"devcollab/internal/domain/profile"

	"github.com/google/uuid"
)

// Weighting of the four compatibility factors. The per-factor caps sum to
// exactly 100; the final total is still clamped so a future rule change
// cannot push a score out of range.
const (
	maxExperiencePoints   = 40
	experienceGapPenalty  = 10
	minExperiencePoints   = 10
	maxInterestPoints     = 30
	pointsPerInterest     = 10
	timezoneMatchPoints   = 10
	hoursMatchPoints      = 10
	maxSkillPoints        = 10
	pointsPerSkill        = 2
	maxCompatibilityScore = 100
)

// Breakdown is the result of scoring two profiles against each other.
// CommonSkills and CommonInterests are raw intersection sizes, reported
// even when the corresponding factor is already capped.
type Breakdown struct {
	Total           int
	CommonSkills    int
	CommonInterests int
}

// Score computes the compatibility between two profiles. It is pure and
// symmetric: Score(a, b).Total == Score(b, a).Total for all inputs.
func Score(a, b profile.Profile) Breakdown {
	commonInterests := countCommonInterests(a.Interests, b.Interests)
	commonSkills := countCommonSkills(a.Skills, b.Skills)

	total := experienceScore(a.ExperienceLevel, b.ExperienceLevel)

	total += capped(commonInterests*pointsPerInterest, maxInterestPoints)

	if a.Timezone != nil && b.Timezone != nil && *a.Timezone == *b.Timezone {
		total += timezoneMatchPoints
	}
	if a.HoursPerWeek != nil && b.HoursPerWeek != nil && *a.HoursPerWeek == *b.HoursPerWeek {
		total += hoursMatchPoints
	}

	total += capped(commonSkills*pointsPerSkill, maxSkillPoints)

	return Breakdown{
		Total:           capped(total, maxCompatibilityScore),
		CommonSkills:    commonSkills,
		CommonInterests: commonInterests,
	}
}

// experienceScore awards the full 40 points for equal levels and shaves 10
// per level of distance, never dropping below 10. Unknown levels on either
// side contribute nothing.
func experienceScore(a, b profile.ExperienceLevel) int {
	av, ok := a.Ordinal()
	if !ok {
		return 0
	}
	bv, ok := b.Ordinal()
	if !ok {
		return 0
	}

	gap := av - bv
	if gap < 0 {
		gap = -gap
	}

	score := maxExperiencePoints - gap*experienceGapPenalty
	if score < minExperiencePoints {
		score = minExperiencePoints
	}
	return score
}

func countCommonInterests(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(a))
	for _, it := range a {
		seen[it] = struct{}{}
	}
	n := 0
	counted := make(map[string]struct{}, len(b))
	for _, it := range b {
		if _, dup := counted[it]; dup {
			continue
		}
		if _, ok := seen[it]; ok {
			n++
			counted[it] = struct{}{}
		}
	}
	return n
}

func countCommonSkills(a, b []profile.Skill) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	seen := make(map[uuid.UUID]struct{}, len(a))
	for _, s := range a {
		seen[s.ID] = struct{}{}
	}
	n := 0
	counted := make(map[uuid.UUID]struct{}, len(b))
	for _, s := range b {
		if _, dup := counted[s.ID]; dup {
			continue
		}
		if _, ok := seen[s.ID]; ok {
			n++
			counted[s.ID] = struct{}{}
		}
	}
	return n
}

func capped(v, maxV int) int {
	if v > maxV {
		return maxV
	}
	return v
}
