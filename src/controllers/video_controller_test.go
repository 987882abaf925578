package controllers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUploadVideoRequiresAllMetadata(t *testing.T) {
	user := models.User{Id: primitive.NewObjectID()}
	app := testApp(user, fiber.MethodPost, "/educator/upload-video", UploadVideo)

	cases := []fiber.Map{
		{"description": "d", "category": "DevOps"},
		{"title": "t", "category": "DevOps"},
		{"title": "t", "description": "d"},
	}
	for _, body := range cases {
		resp, err := app.Test(jsonRequest(fiber.MethodPost, "/educator/upload-video", body))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Title, description, and category are required", decodeBody(t, resp)["message"])
	}
}
