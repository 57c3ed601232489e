package handler

import (
	"context"
	"errors"

	"devcollab/internal/delivery/http/dto"
	"devcollab/internal/delivery/http/middleware"
	"devcollab/internal/domain/match"
	"devcollab/internal/domain/matching"
	"devcollab/internal/domain/profile"
	"devcollab/internal/pkg/response"
	"devcollab/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

type createMatchRequest struct {
	RecipientID uuid.UUID  `json:"recipient_id"`
	ProjectID   *uuid.UUID `json:"project_id"`
	Message     *string    `json:"message"`
}

type respondMatchRequest struct {
	Status  string  `json:"status"`
	Message *string `json:"message"`
}

type findMatchesRequest struct {
	SkillIDs        []uuid.UUID `json:"skill_ids"`
	Interests       []string    `json:"interests"`
	ExperienceLevel *string     `json:"experience_level"`
	MinHoursPerWeek *int        `json:"min_hours_per_week"`
	Limit           int         `json:"limit"`
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Post("/find", h.Find)
	r.Get("/received", h.Received)
	r.Get("/sent", h.Sent)
	r.Get("/pending", h.Pending)
	r.Get("/score/:user_id", h.Score)
	r.Get("/:match_id", h.GetByID)
	r.Put("/:match_id/respond", h.Respond)
}

func (h *MatchHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.RecipientID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "recipient_id is required", nil, nil)
	}

	m, err := h.uc.Create(c.Context(), userID, usecase.CreateMatchInput{
		RecipientID: req.RecipientID,
		ProjectID:   req.ProjectID,
		Message:     req.Message,
	})
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Match request created successfully", dto.FromMatch(m))
}

func (h *MatchHandler) Respond(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	matchID, err := uuid.Parse(c.Params("match_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req respondMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	status, ok := match.ParseStatus(req.Status)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", nil, nil)
	}

	m, err := h.uc.Respond(c.Context(), matchID, userID, usecase.RespondInput{
		Status:  status,
		Message: req.Message,
	})
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Match response recorded successfully", dto.FromMatch(m))
}

func (h *MatchHandler) GetByID(c fiber.Ctx) error {
	matchID, err := uuid.Parse(c.Params("match_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	m, err := h.uc.GetByID(c.Context(), matchID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatch(m))
}

func (h *MatchHandler) Received(c fiber.Ctx) error {
	return h.listFor(c, h.uc.Received)
}

func (h *MatchHandler) Sent(c fiber.Ctx) error {
	return h.listFor(c, h.uc.Sent)
}

func (h *MatchHandler) Pending(c fiber.Ctx) error {
	return h.listFor(c, h.uc.Pending)
}

func (h *MatchHandler) listFor(c fiber.Ctx, list func(ctx context.Context, userID uuid.UUID) ([]match.Request, error)) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	ms, err := list(c.Context(), userID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatches(ms))
}

func (h *MatchHandler) Find(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req findMatchesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	spec := matching.FilterSpec{
		SkillIDs:        req.SkillIDs,
		Interests:       req.Interests,
		MinHoursPerWeek: req.MinHoursPerWeek,
	}
	if req.ExperienceLevel != nil {
		lvl, ok := profile.ParseExperienceLevel(*req.ExperienceLevel)
		if !ok {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid experience level", nil, nil)
		}
		spec.ExperienceLevel = &lvl
	}

	suggestions, err := h.uc.FindCandidates(c.Context(), userID, spec, req.Limit)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSuggestions(suggestions))
}

func (h *MatchHandler) Score(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	otherID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	bd, err := h.uc.ScoreBetween(c.Context(), userID, otherID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := dto.ScoreResponse{
		Score:           bd.Total,
		CommonSkills:    bd.CommonSkills,
		CommonInterests: bd.CommonInterests,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapMatchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrMatchNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrSelfMatch):
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot create a match request to yourself", nil, err)
	case errors.Is(err, usecase.ErrDuplicatePending):
		return middleware.NewAppError(fiber.StatusConflict, "A pending match request already exists", nil, err)
	case errors.Is(err, usecase.ErrNotRecipient):
		return middleware.NewAppError(fiber.StatusForbidden, "You are not authorized to respond to this match", nil, err)
	case errors.Is(err, usecase.ErrAlreadyResponded):
		return middleware.NewAppError(fiber.StatusBadRequest, "This match request has already been responded to", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
