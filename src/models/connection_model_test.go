package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestConnectionEdgeHelpers(t *testing.T) {
	bob := primitive.NewObjectID()
	carol := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	now := time.Now()
	user := User{
		Id: primitive.NewObjectID(),
		Connections: []ConnectionEdge{
			{User: bob, Status: ConnectionStatusPending, CreatedAt: now},
			{User: carol, Status: ConnectionStatusConnected, ConnectedAt: &now, CreatedAt: now},
		},
	}

	edge := user.FindConnection(bob)
	require.NotNil(t, edge)
	assert.Equal(t, ConnectionStatusPending, edge.Status)
	assert.Nil(t, user.FindConnection(stranger))

	assert.Equal(t, ConnectionStatusPending, user.ConnectionStatusWith(bob))
	assert.Equal(t, ConnectionStatusConnected, user.ConnectionStatusWith(carol))
	assert.Equal(t, ConnectionStatusNone, user.ConnectionStatusWith(stranger))

	assert.False(t, user.IsConnectedWith(bob))
	assert.True(t, user.IsConnectedWith(carol))
	assert.False(t, user.IsConnectedWith(stranger))
}

func TestConnectionEdgeMutatesThroughFind(t *testing.T) {
	bob := primitive.NewObjectID()
	user := User{
		Connections: []ConnectionEdge{
			{User: bob, Status: ConnectionStatusPending, CreatedAt: time.Now()},
		},
	}

	// FindConnection returns a pointer into the slice so status updates stick
	edge := user.FindConnection(bob)
	require.NotNil(t, edge)
	edge.Status = ConnectionStatusConnected

	assert.True(t, user.IsConnectedWith(bob))
}

func TestRemoveConnection(t *testing.T) {
	bob := primitive.NewObjectID()
	carol := primitive.NewObjectID()

	user := User{
		Connections: []ConnectionEdge{
			{User: bob, Status: ConnectionStatusPending, CreatedAt: time.Now()},
			{User: carol, Status: ConnectionStatusConnected, CreatedAt: time.Now()},
		},
	}

	assert.True(t, user.RemoveConnection(bob))
	assert.Len(t, user.Connections, 1)
	assert.Equal(t, carol, user.Connections[0].User)

	assert.False(t, user.RemoveConnection(bob))
	assert.Len(t, user.Connections, 1)
}

func TestSkillSetLowercases(t *testing.T) {
	user := User{
		KnownSkills: []SkillExperience{
			{Skill: "Python"},
			{Skill: "SQL"},
			{Skill: "sql"},
		},
	}

	set := user.SkillSet()
	assert.Len(t, set, 2)
	assert.True(t, set["python"])
	assert.True(t, set["sql"])
	assert.False(t, set["SQL"])
}

func TestDtoOmitsPassword(t *testing.T) {
	user := User{
		Id:       primitive.NewObjectID(),
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hashed-secret",
	}

	dto := user.Dto()
	assert.Equal(t, user.Id, dto.Id)
	assert.Equal(t, "Alice", dto.Name)
	assert.Equal(t, "alice@example.com", dto.Email)
}
