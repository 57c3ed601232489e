package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"devcollab/internal/domain/match"
	"devcollab/internal/domain/matching"
	"devcollab/internal/domain/profile"
	"devcollab/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrMatchNotFound    = errors.New("match not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrSelfMatch        = errors.New("cannot create a match request to yourself")
	ErrDuplicatePending = errors.New("a pending match request already exists")
	ErrNotRecipient     = errors.New("only the recipient may respond to this match")
	ErrAlreadyResponded = errors.New("this match request has already been responded to")
	ErrInvalidStatus    = errors.New("invalid response status")
	ErrInternal         = errors.New("internal error")
)

type CreateMatchInput struct {
	RecipientID uuid.UUID
	ProjectID   *uuid.UUID
	Message     *string
}

type RespondInput struct {
	Status  match.Status
	Message *string
}

type MatchUsecase interface {
	Create(ctx context.Context, requesterID uuid.UUID, in CreateMatchInput) (match.Request, error)
	Respond(ctx context.Context, matchID, actingUserID uuid.UUID, in RespondInput) (match.Request, error)
	GetByID(ctx context.Context, id uuid.UUID) (match.Request, error)
	Received(ctx context.Context, userID uuid.UUID) ([]match.Request, error)
	Sent(ctx context.Context, userID uuid.UUID) ([]match.Request, error)
	Pending(ctx context.Context, userID uuid.UUID) ([]match.Request, error)
	FindCandidates(ctx context.Context, userID uuid.UUID, spec matching.FilterSpec, limit int) ([]matching.Suggestion, error)
	ScoreBetween(ctx context.Context, userID1, userID2 uuid.UUID) (matching.Breakdown, error)
}

type MatchService struct {
	matches   repository.MatchRepository
	profiles  repository.ProfileRepository
	projects  repository.ProjectRepository
	explainer *Explainer
	logger    *log.Logger

	now func() time.Time
}

func NewMatchService(
	matches repository.MatchRepository,
	profiles repository.ProfileRepository,
	projects repository.ProjectRepository,
	explainer *Explainer,
	logger *log.Logger,
) *MatchService {
	if logger == nil {
		logger = log.Default()
	}
	return &MatchService{
		matches:   matches,
		profiles:  profiles,
		projects:  projects,
		explainer: explainer,
		logger:    logger,
		now:       time.Now,
	}
}

// Create scores the pair, generates the explanation, and persists a new
// PENDING request. Both values are computed exactly once here and never
// recomputed. The duplicate check guards only the ordered (requester,
// recipient) pair; a reverse-direction pending request does not conflict.
func (s *MatchService) Create(ctx context.Context, requesterID uuid.UUID, in CreateMatchInput) (match.Request, error) {
	if requesterID == in.RecipientID {
		return match.Request{}, ErrSelfMatch
	}

	requester, err := s.getProfile(ctx, requesterID)
	if err != nil {
		return match.Request{}, err
	}
	recipient, err := s.getProfile(ctx, in.RecipientID)
	if err != nil {
		return match.Request{}, err
	}

	exists, err := s.matches.ExistsPending(ctx, requesterID, in.RecipientID)
	if err != nil {
		return match.Request{}, ErrInternal
	}
	if exists {
		return match.Request{}, ErrDuplicatePending
	}

	if in.ProjectID != nil {
		project, err := s.projects.FindByID(ctx, *in.ProjectID)
		if err != nil {
			return match.Request{}, ErrInternal
		}
		if project == nil {
			return match.Request{}, ErrProjectNotFound
		}
	}

	bd := matching.Score(requester, recipient)
	explanation := s.explainer.Explain(ctx, requester, recipient, bd)

	now := s.now().UTC()
	m := match.Request{
		ID:          uuid.New(),
		RequesterID: requesterID,
		RecipientID: in.RecipientID,
		ProjectID:   in.ProjectID,
		Score:       bd.Total,
		Explanation: explanation,
		Status:      match.StatusPending,
		Message:     in.Message,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.matches.Create(ctx, m); err != nil {
		if errors.Is(err, match.ErrDuplicatePending) {
			// Lost the race to a concurrent create for the same pair.
			return match.Request{}, ErrDuplicatePending
		}
		return match.Request{}, ErrInternal
	}

	s.logger.Printf("[Match] created id=%s requester=%s recipient=%s score=%d",
		m.ID, m.RequesterID, m.RecipientID, m.Score)
	return m, nil
}

// Respond applies the recipient's decision. Only ACCEPTED and REJECTED are
// valid targets; EXPIRED is written by an external scheduler, not through
// this path.
func (s *MatchService) Respond(ctx context.Context, matchID, actingUserID uuid.UUID, in RespondInput) (match.Request, error) {
	if in.Status != match.StatusAccepted && in.Status != match.StatusRejected {
		return match.Request{}, ErrInvalidStatus
	}

	m, err := s.matches.FindByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return match.Request{}, ErrMatchNotFound
		}
		return match.Request{}, ErrInternal
	}

	if m.RecipientID != actingUserID {
		return match.Request{}, ErrNotRecipient
	}
	if !m.Status.CanTransition(in.Status) {
		return match.Request{}, ErrAlreadyResponded
	}

	now := s.now().UTC()
	m.Status = in.Status
	m.UpdatedAt = now
	m.RespondedAt = &now
	if in.Message != nil {
		m.Message = in.Message
	}

	if err := s.matches.UpdateResponse(ctx, m); err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return match.Request{}, ErrMatchNotFound
		}
		return match.Request{}, ErrInternal
	}

	s.logger.Printf("[Match] responded id=%s status=%s by=%s", m.ID, m.Status, actingUserID)
	return m, nil
}

func (s *MatchService) GetByID(ctx context.Context, id uuid.UUID) (match.Request, error) {
	m, err := s.matches.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return match.Request{}, ErrMatchNotFound
		}
		return match.Request{}, ErrInternal
	}
	return m, nil
}

func (s *MatchService) Received(ctx context.Context, userID uuid.UUID) ([]match.Request, error) {
	out, err := s.matches.FindByRecipient(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *MatchService) Sent(ctx context.Context, userID uuid.UUID) ([]match.Request, error) {
	out, err := s.matches.FindByRequester(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *MatchService) Pending(ctx context.Context, userID uuid.UUID) ([]match.Request, error) {
	out, err := s.matches.FindReceivedByStatus(ctx, userID, match.StatusPending)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// FindCandidates ranks the active pool against the requester's filters.
// Results are ephemeral; nothing is persisted.
func (s *MatchService) FindCandidates(ctx context.Context, userID uuid.UUID, spec matching.FilterSpec, limit int) ([]matching.Suggestion, error) {
	requester, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	pool, err := s.profiles.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	suggestions := matching.Rank(requester, pool, spec, limit,
		func(req, cand profile.Profile, bd matching.Breakdown) string {
			return s.explainer.Explain(ctx, req, cand, bd)
		})

	s.logger.Printf("[Match] ranked candidates user=%s pool=%d results=%d", userID, len(pool), len(suggestions))
	return suggestions, nil
}

func (s *MatchService) ScoreBetween(ctx context.Context, userID1, userID2 uuid.UUID) (matching.Breakdown, error) {
	a, err := s.getProfile(ctx, userID1)
	if err != nil {
		return matching.Breakdown{}, err
	}
	b, err := s.getProfile(ctx, userID2)
	if err != nil {
		return matching.Breakdown{}, err
	}
	return matching.Score(a, b), nil
}

func (s *MatchService) getProfile(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	p, err := s.profiles.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Profile{}, ErrUserNotFound
		}
		return profile.Profile{}, ErrInternal
	}
	return p, nil
}
