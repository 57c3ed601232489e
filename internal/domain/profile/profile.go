package profile

import "github.com/google/uuid"

// ExperienceLevel is an ordered enum. The zero value means the level is
// unknown and contributes nothing to matching.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "BEGINNER"
	LevelIntermediate ExperienceLevel = "INTERMEDIATE"
	LevelAdvanced     ExperienceLevel = "ADVANCED"
	LevelExpert       ExperienceLevel = "EXPERT"
)

var levelOrdinal = map[ExperienceLevel]int{
	LevelBeginner:     0,
	LevelIntermediate: 1,
	LevelAdvanced:     2,
	LevelExpert:       3,
}

// Ordinal returns the level's position in the BEGINNER..EXPERT order.
// ok is false for the zero value or an unrecognized level.
func (l ExperienceLevel) Ordinal() (int, bool) {
	v, ok := levelOrdinal[l]
	return v, ok
}

func ParseExperienceLevel(s string) (ExperienceLevel, bool) {
	l := ExperienceLevel(s)
	_, ok := levelOrdinal[l]
	return l, ok
}

type Skill struct {
	ID   uuid.UUID
	Name string
}

// Profile is a fully materialized snapshot of a user's matchable
// attributes. The matching code treats it as read-only and never reaches
// back to storage; repositories are responsible for assembling a complete
// snapshot before handing it to the engine.
type Profile struct {
	ID              uuid.UUID
	FullName        string
	Bio             string
	ExperienceLevel ExperienceLevel
	Interests       []string
	Skills          []Skill
	Timezone        *string
	HoursPerWeek    *int

	// RecentProjects holds up to three project titles, used only as
	// context for AI-generated explanations.
	RecentProjects []string
}

func (p Profile) HasSkill(id uuid.UUID) bool {
	for _, s := range p.Skills {
		if s.ID == id {
			return true
		}
	}
	return false
}

func (p Profile) HasInterest(interest string) bool {
	for _, it := range p.Interests {
		if it == interest {
			return true
		}
	}
	return false
}

func (p Profile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return names
}
