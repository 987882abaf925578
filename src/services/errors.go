package services

import (
	"errors"

	"github.com/skillchain-dev/Backend-SkillChain/src/models"
)

// Service-level failure kinds. Controllers translate these into HTTP statuses;
// the services themselves never touch transport concerns.
var (
	// ErrNotFound means a referenced user, edge, or embedded document does
	// not resolve.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest means the operation is malformed, e.g. a
	// self-referential connection request.
	ErrInvalidRequest = errors.New("invalid request")
)

// AlreadyExistsError is returned by connection requests against a counterpart
// that already has an edge, whatever its status. The existing status is
// carried so the caller can surface it.
type AlreadyExistsError struct {
	Status models.ConnectionStatus
}

func (e *AlreadyExistsError) Error() string {
	return "connection already exists with status " + string(e.Status)
}
