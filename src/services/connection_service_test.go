package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserStore struct {
	users     map[primitive.ObjectID]*models.User
	saveCalls int
	saveErr   error
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	store := &fakeUserStore{users: make(map[primitive.ObjectID]*models.User)}
	for _, u := range users {
		store.users[u.Id] = u
	}
	return store
}

func (s *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users[id], nil
}

func (s *fakeUserStore) SaveConnections(_ context.Context, _ *models.User) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saveCalls++
	return nil
}

type fakeNotificationStore struct {
	inserted []models.Notification
}

func (s *fakeNotificationStore) Insert(_ context.Context, n *models.Notification) error {
	s.inserted = append(s.inserted, *n)
	return nil
}

func newTestUser(name string) *models.User {
	return &models.User{
		Id:       primitive.NewObjectID(),
		Name:     name,
		IsActive: true,
	}
}

func TestConnectionRequestCreatesBothEdges(t *testing.T) {
	alice := newTestUser("Alice")
	bob := newTestUser("Bob")
	store := newFakeUserStore(alice, bob)
	svc := NewConnectionService(store, nil)

	err := svc.Request(context.Background(), alice.Id, bob.Id)
	require.NoError(t, err)

	aliceEdge := alice.FindConnection(bob.Id)
	bobEdge := bob.FindConnection(alice.Id)
	require.NotNil(t, aliceEdge)
	require.NotNil(t, bobEdge)
	assert.Equal(t, models.ConnectionStatusPending, aliceEdge.Status)
	assert.Equal(t, models.ConnectionStatusPending, bobEdge.Status)
	assert.Equal(t, aliceEdge.CreatedAt, bobEdge.CreatedAt)
	assert.Nil(t, aliceEdge.ConnectedAt)
	assert.Equal(t, 2, store.saveCalls)
}

func TestConnectionRequestToSelfFails(t *testing.T) {
	alice := newTestUser("Alice")
	store := newFakeUserStore(alice)
	svc := NewConnectionService(store, nil)

	err := svc.Request(context.Background(), alice.Id, alice.Id)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Empty(t, alice.Connections)
}

func TestConnectionRequestMissingUsers(t *testing.T) {
	alice := newTestUser("Alice")
	store := newFakeUserStore(alice)
	svc := NewConnectionService(store, nil)

	err := svc.Request(context.Background(), alice.Id, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Request(context.Background(), primitive.NewObjectID(), alice.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConnectionRequestDuplicateReportsStatus(t *testing.T) {
	alice := newTestUser("Alice")
	bob := newTestUser("Bob")
	store := newFakeUserStore(alice, bob)
	svc := NewConnectionService(store, nil)

	require.NoError(t, svc.Request(context.Background(), alice.Id, bob.Id))

	err := svc.Request(context.Background(), alice.Id, bob.Id)
	var exists *AlreadyExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, models.ConnectionStatusPending, exists.Status)

	// No extra edges were appended
	assert.Len(t, alice.Connections, 1)
	assert.Len(t, bob.Connections, 1)

	// After accepting, a repeat request reports the connected status
	require.NoError(t, svc.Accept(context.Background(), bob.Id, alice.Id))
	err = svc.Request(context.Background(), alice.Id, bob.Id)
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, models.ConnectionStatusConnected, exists.Status)
}

func TestAcceptConnectsBothSides(t *testing.T) {
	alice := newTestUser("Alice")
	bob := newTestUser("Bob")
	store := newFakeUserStore(alice, bob)
	notifications := &fakeNotificationStore{}
	svc := NewConnectionService(store, notifications)

	require.NoError(t, svc.Request(context.Background(), alice.Id, bob.Id))
	require.NoError(t, svc.Accept(context.Background(), bob.Id, alice.Id))

	aliceEdge := alice.FindConnection(bob.Id)
	bobEdge := bob.FindConnection(alice.Id)
	require.NotNil(t, aliceEdge)
	require.NotNil(t, bobEdge)
	assert.Equal(t, models.ConnectionStatusConnected, aliceEdge.Status)
	assert.Equal(t, models.ConnectionStatusConnected, bobEdge.Status)

	require.NotNil(t, aliceEdge.ConnectedAt)
	require.NotNil(t, bobEdge.ConnectedAt)
	assert.True(t, aliceEdge.ConnectedAt.Equal(*bobEdge.ConnectedAt))

	// The requester gets notified
	require.Len(t, notifications.inserted, 1)
	assert.Equal(t, alice.Id, notifications.inserted[0].Recipient)
	assert.Equal(t, models.NotificationTypeConnectionAccepted, notifications.inserted[0].Type)
	assert.Equal(t, bob.Id, notifications.inserted[0].RelatedUser)
}

func TestAcceptAlreadyConnectedIsNoOp(t *testing.T) {
	alice := newTestUser("Alice")
	bob := newTestUser("Bob")
	store := newFakeUserStore(alice, bob)
	notifications := &fakeNotificationStore{}
	svc := NewConnectionService(store, notifications)

	require.NoError(t, svc.Request(context.Background(), alice.Id, bob.Id))
	require.NoError(t, svc.Accept(context.Background(), bob.Id, alice.Id))

	stamp := *alice.FindConnection(bob.Id).ConnectedAt
	saves := store.saveCalls

	require.NoError(t, svc.Accept(context.Background(), bob.Id, alice.Id))

	assert.True(t, stamp.Equal(*alice.FindConnection(bob.Id).ConnectedAt))
	assert.Equal(t, saves, store.saveCalls)
	assert.Len(t, notifications.inserted, 1)
}

func TestAcceptWithoutRequestFails(t *testing.T) {
	alice := newTestUser("Alice")
	bob := newTestUser("Bob")
	store := newFakeUserStore(alice, bob)
	svc := NewConnectionService(store, nil)

	err := svc.Accept(context.Background(), bob.Id, alice.Id)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Accept(context.Background(), bob.Id, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRejectRemovesBothEdges(t *testing.T) {
	alice := newTestUser("Alice")
	bob := newTestUser("Bob")
	store := newFakeUserStore(alice, bob)
	svc := NewConnectionService(store, nil)

	require.NoError(t, svc.Request(context.Background(), alice.Id, bob.Id))
	require.NoError(t, svc.Reject(context.Background(), bob.Id, alice.Id))

	assert.Nil(t, alice.FindConnection(bob.Id))
	assert.Nil(t, bob.FindConnection(alice.Id))
}

func TestRejectIsIdempotent(t *testing.T) {
	alice := newTestUser("Alice")
	bob := newTestUser("Bob")
	store := newFakeUserStore(alice, bob)
	svc := NewConnectionService(store, nil)

	require.NoError(t, svc.Request(context.Background(), alice.Id, bob.Id))
	require.NoError(t, svc.Reject(context.Background(), bob.Id, alice.Id))

	saves := store.saveCalls
	require.NoError(t, svc.Reject(context.Background(), bob.Id, alice.Id))
	assert.Equal(t, saves, store.saveCalls)
}

func TestRejectRemovesEstablishedConnection(t *testing.T) {
	alice := newTestUser("Alice")
	bob := newTestUser("Bob")
	store := newFakeUserStore(alice, bob)
	svc := NewConnectionService(store, nil)

	require.NoError(t, svc.Request(context.Background(), alice.Id, bob.Id))
	require.NoError(t, svc.Accept(context.Background(), bob.Id, alice.Id))
	require.NoError(t, svc.Reject(context.Background(), alice.Id, bob.Id))

	assert.Nil(t, alice.FindConnection(bob.Id))
	assert.Nil(t, bob.FindConnection(alice.Id))

	// A fresh request works again after removal
	require.NoError(t, svc.Request(context.Background(), bob.Id, alice.Id))
	edge := bob.FindConnection(alice.Id)
	require.NotNil(t, edge)
	assert.Equal(t, models.ConnectionStatusPending, edge.Status)
}

func TestRequestPropagatesSaveErrors(t *testing.T) {
	alice := newTestUser("Alice")
	bob := newTestUser("Bob")
	store := newFakeUserStore(alice, bob)
	store.saveErr = errors.New("write failed")
	svc := NewConnectionService(store, nil)

	err := svc.Request(context.Background(), alice.Id, bob.Id)
	assert.EqualError(t, err, "write failed")
}

func TestStatusBetween(t *testing.T) {
	alice := newTestUser("Alice")
	bob := newTestUser("Bob")
	store := newFakeUserStore(alice, bob)
	svc := NewConnectionService(store, nil)

	status, err := svc.StatusBetween(context.Background(), alice.Id, bob.Id)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusNone, status)

	require.NoError(t, svc.Request(context.Background(), alice.Id, bob.Id))
	status, err = svc.StatusBetween(context.Background(), alice.Id, bob.Id)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusPending, status)

	require.NoError(t, svc.Accept(context.Background(), bob.Id, alice.Id))
	status, err = svc.StatusBetween(context.Background(), bob.Id, alice.Id)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusConnected, status)

	_, err = svc.StatusBetween(context.Background(), primitive.NewObjectID(), alice.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAcceptStampsRecentConnectedAt(t *testing.T) {
	alice := newTestUser("Alice")
	bob := newTestUser("Bob")
	store := newFakeUserStore(alice, bob)
	svc := NewConnectionService(store, nil)

	before := time.Now()
	require.NoError(t, svc.Request(context.Background(), alice.Id, bob.Id))
	require.NoError(t, svc.Accept(context.Background(), bob.Id, alice.Id))
	after := time.Now()

	stamp := alice.FindConnection(bob.Id).ConnectedAt
	require.NotNil(t, stamp)
	assert.False(t, stamp.Before(before))
	assert.False(t, stamp.After(after))
}
