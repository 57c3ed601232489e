package match

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("match not found")
	ErrDuplicatePending = errors.New("pending match request already exists")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
	StatusExpired  Status = "EXPIRED"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusRejected, StatusExpired:
		return Status(s), true
	}
	return "", false
}

// Terminal reports whether no further transition may leave the status.
// Every status except PENDING is terminal.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusExpired
}

// CanTransition reports whether a request in status s may move to the
// target status. ACCEPTED and REJECTED come from the recipient's response;
// EXPIRED is written by an external scheduler, never by this service.
func (s Status) CanTransition(to Status) bool {
	if s != StatusPending {
		return false
	}
	return to.Terminal()
}

// Request is a collaboration proposal between two users. Score and
// Explanation are computed exactly once at creation and are immutable
// afterwards; responding never recomputes them.
type Request struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	RecipientID uuid.UUID
	ProjectID   *uuid.UUID
	Score       int
	Explanation string
	Status      Status
	Message     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	RespondedAt *time.Time
}
