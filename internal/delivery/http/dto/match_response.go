package dto

import (
	"time"

	"devcollab/internal/domain/match"
	"devcollab/internal/domain/matching"
	"devcollab/internal/domain/profile"

	"github.com/google/uuid"
)

type MatchResponse struct {
	ID          uuid.UUID  `json:"id"`
	RequesterID uuid.UUID  `json:"requester_id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	Score       int        `json:"score"`
	Explanation string     `json:"explanation"`
	Status      string     `json:"status"`
	Message     *string    `json:"message,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

func FromMatch(m match.Request) MatchResponse {
	return MatchResponse{
		ID:          m.ID,
		RequesterID: m.RequesterID,
		RecipientID: m.RecipientID,
		ProjectID:   m.ProjectID,
		Score:       m.Score,
		Explanation: m.Explanation,
		Status:      string(m.Status),
		Message:     m.Message,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		RespondedAt: m.RespondedAt,
	}
}

func FromMatches(ms []match.Request) []MatchResponse {
	out := make([]MatchResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMatch(m))
	}
	return out
}

type CandidateResponse struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Bio             string    `json:"bio,omitempty"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	Interests       []string  `json:"interests"`
	Skills          []string  `json:"skills"`
	Timezone        *string   `json:"timezone,omitempty"`
	HoursPerWeek    *int      `json:"hours_per_week,omitempty"`
}

type MatchSuggestionResponse struct {
	Candidate       CandidateResponse `json:"candidate"`
	Score           int               `json:"score"`
	Explanation     string            `json:"explanation"`
	CommonSkills    int               `json:"common_skills"`
	CommonInterests int               `json:"common_interests"`
}

func FromSuggestions(suggestions []matching.Suggestion) []MatchSuggestionResponse {
	out := make([]MatchSuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, MatchSuggestionResponse{
			Candidate:       fromProfile(s.Candidate),
			Score:           s.Score,
			Explanation:     s.Explanation,
			CommonSkills:    s.CommonSkills,
			CommonInterests: s.CommonInterests,
		})
	}
	return out
}

func fromProfile(p profile.Profile) CandidateResponse {
	return CandidateResponse{
		ID:              p.ID,
		FullName:        p.FullName,
		Bio:             p.Bio,
		ExperienceLevel: string(p.ExperienceLevel),
		Interests:       p.Interests,
		Skills:          p.SkillNames(),
		Timezone:        p.Timezone,
		HoursPerWeek:    p.HoursPerWeek,
	}
}

type ScoreResponse struct {
	Score           int `json:"score"`
	CommonSkills    int `json:"common_skills"`
	CommonInterests int `json:"common_interests"`
}
