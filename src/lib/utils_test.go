package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestJWTRoundTrip(t *testing.T) {
	userID := primitive.NewObjectID().Hex()

	token, err := GenerateJWT(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims["userId"])
	assert.NotNil(t, claims["exp"])
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	_, err := VerifyJWT("not-a-token")
	assert.Error(t, err)
}

func TestVerifyJWTRejectsTampered(t *testing.T) {
	token, err := GenerateJWT(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	_, err = VerifyJWT(token + "x")
	assert.Error(t, err)
}

func TestGetEnvDefault(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("DEFINITELY_NOT_SET_ANYWHERE", "fallback"))

	t.Setenv("SOME_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("SOME_TEST_KEY", "fallback"))
}
