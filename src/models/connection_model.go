package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ConnectionStatus string

const (
	ConnectionStatusPending   ConnectionStatus = "pending"
	ConnectionStatusConnected ConnectionStatus = "connected"
	// ConnectionStatusBlocked is stored but no operation transitions into it yet.
	ConnectionStatusBlocked ConnectionStatus = "blocked"

	// ConnectionStatusNone is the derived status for users with no edge.
	// It is never persisted.
	ConnectionStatusNone ConnectionStatus = "none"
)

// ConnectionEdge is one side of a connection, embedded in the owning user's
// connections array. A relationship between two users is exactly one edge in
// each of their documents, both carrying the same status.
type ConnectionEdge struct {
	User        primitive.ObjectID `json:"user" bson:"user"`
	Status      ConnectionStatus   `json:"status" bson:"status"`
	ConnectedAt *time.Time         `json:"connectedAt,omitempty" bson:"connectedAt,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// FindConnection returns the edge pointing at the given counterpart, or nil.
func (u *User) FindConnection(counterpart primitive.ObjectID) *ConnectionEdge {
	for i := range u.Connections {
		if u.Connections[i].User == counterpart {
			return &u.Connections[i]
		}
	}
	return nil
}

// ConnectionStatusWith derives the status of the relationship with the given
// user, ConnectionStatusNone when no edge exists.
func (u *User) ConnectionStatusWith(counterpart primitive.ObjectID) ConnectionStatus {
	if edge := u.FindConnection(counterpart); edge != nil {
		return edge.Status
	}
	return ConnectionStatusNone
}

// RemoveConnection deletes the edge pointing at the given counterpart and
// reports whether one was present.
func (u *User) RemoveConnection(counterpart primitive.ObjectID) bool {
	for i := range u.Connections {
		if u.Connections[i].User == counterpart {
			u.Connections = append(u.Connections[:i], u.Connections[i+1:]...)
			return true
		}
	}
	return false
}

// IsConnectedWith reports whether the edge to the given user is connected.
func (u *User) IsConnectedWith(counterpart primitive.ObjectID) bool {
	return u.ConnectionStatusWith(counterpart) == ConnectionStatusConnected
}
