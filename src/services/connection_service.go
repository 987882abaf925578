package services

import (
	"context"
	"log"
	"time"

	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the storage surface the connection manager needs. FindByID
// returns (nil, nil) when no user has the given id.
type UserStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	SaveConnections(ctx context.Context, user *models.User) error
}

// NotificationStore persists notifications emitted by connection events.
type NotificationStore interface {
	Insert(ctx context.Context, n *models.Notification) error
}

// ConnectionService owns the symmetric two-sided connection state. Every edge
// mutation goes through here, so call sites can never write one side only.
// The two document writes are intentionally not transactional: under a crash
// between them the relationship is transiently asymmetric and gets repaired
// by retrying the same operation.
type ConnectionService struct {
	users         UserStore
	notifications NotificationStore
}

func NewConnectionService(users UserStore, notifications NotificationStore) *ConnectionService {
	return &ConnectionService{
		users:         users,
		notifications: notifications,
	}
}

// Request appends a pending edge to both participants. Fails with
// ErrInvalidRequest on a self-request, ErrNotFound when either user is
// missing, and AlreadyExistsError when the requester already holds an edge to
// the target. The existence check is what makes caller-level retries safe.
func (s *ConnectionService) Request(ctx context.Context, requesterID, targetID primitive.ObjectID) error {
	if requesterID == targetID {
		return ErrInvalidRequest
	}

	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return err
	}
	if requester == nil {
		return ErrNotFound
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrNotFound
	}

	if edge := requester.FindConnection(targetID); edge != nil {
		return &AlreadyExistsError{Status: edge.Status}
	}

	now := time.Now()
	requester.Connections = append(requester.Connections, models.ConnectionEdge{
		User:      targetID,
		Status:    models.ConnectionStatusPending,
		CreatedAt: now,
	})
	target.Connections = append(target.Connections, models.ConnectionEdge{
		User:      requesterID,
		Status:    models.ConnectionStatusPending,
		CreatedAt: now,
	})

	if err := s.users.SaveConnections(ctx, requester); err != nil {
		return err
	}
	return s.users.SaveConnections(ctx, target)
}

// Accept transitions both edges of a pending request to connected, stamping
// the same connectedAt on each side. Accepting an already-connected pair is a
// no-op success so retries converge. Fails with ErrNotFound when either user
// or either edge is missing.
func (s *ConnectionService) Accept(ctx context.Context, accepterID, requesterID primitive.ObjectID) error {
	accepter, err := s.users.FindByID(ctx, accepterID)
	if err != nil {
		return err
	}
	if accepter == nil {
		return ErrNotFound
	}

	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return err
	}
	if requester == nil {
		return ErrNotFound
	}

	accEdge := accepter.FindConnection(requesterID)
	reqEdge := requester.FindConnection(accepterID)
	if accEdge == nil || reqEdge == nil {
		return ErrNotFound
	}

	if accEdge.Status == models.ConnectionStatusConnected &&
		reqEdge.Status == models.ConnectionStatusConnected {
		return nil
	}

	now := time.Now()
	accEdge.Status = models.ConnectionStatusConnected
	accEdge.ConnectedAt = &now
	reqEdge.Status = models.ConnectionStatusConnected
	reqEdge.ConnectedAt = &now

	if err := s.users.SaveConnections(ctx, accepter); err != nil {
		return err
	}
	if err := s.users.SaveConnections(ctx, requester); err != nil {
		return err
	}

	s.notify(ctx, &models.Notification{
		Recipient:   requesterID,
		Type:        models.NotificationTypeConnectionAccepted,
		RelatedUser: accepterID,
	})

	return nil
}

// Reject removes the edge from both sides whatever its status, doubling as
// "remove connection". Removing an absent edge is a success, so the
// operation is idempotent. Fails with ErrNotFound only when a user is missing.
func (s *ConnectionService) Reject(ctx context.Context, requesterID, targetID primitive.ObjectID) error {
	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return err
	}
	if requester == nil {
		return ErrNotFound
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrNotFound
	}

	removedFromRequester := requester.RemoveConnection(targetID)
	removedFromTarget := target.RemoveConnection(requesterID)

	if removedFromRequester {
		if err := s.users.SaveConnections(ctx, requester); err != nil {
			return err
		}
	}
	if removedFromTarget {
		if err := s.users.SaveConnections(ctx, target); err != nil {
			return err
		}
	}

	return nil
}

// StatusBetween derives the relationship status from the user's own edge
// list, "none" when no edge exists.
func (s *ConnectionService) StatusBetween(ctx context.Context, userID, otherID primitive.ObjectID) (models.ConnectionStatus, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrNotFound
	}
	return user.ConnectionStatusWith(otherID), nil
}

func (s *ConnectionService) notify(ctx context.Context, n *models.Notification) {
	if s.notifications == nil {
		return
	}
	n.Read = false
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	if err := s.notifications.Insert(ctx, n); err != nil {
		// Notifications are not critical, keep going
		log.Printf("Error creating notification: %v", err)
	}
}
