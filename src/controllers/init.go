package controllers

import (
	"github.com/skillchain-dev/Backend-SkillChain/src/lib"
	"github.com/skillchain-dev/Backend-SkillChain/src/repository"
	"github.com/skillchain-dev/Backend-SkillChain/src/services"
)

var (
	userRepo          *repository.UserRepository
	feedRepo          *repository.FeedRepository
	notificationRepo  *repository.NotificationRepository
	connectionService *services.ConnectionService
	videoAnalyzer     *services.VideoAnalyzer
)

// Init wires the repositories and services over the connected database. Must
// run after lib.ConnectDB.
func Init() {
	userRepo = repository.NewUserRepository(lib.DB)
	feedRepo = repository.NewFeedRepository(lib.DB)
	notificationRepo = repository.NewNotificationRepository(lib.DB)
	connectionService = services.NewConnectionService(userRepo, notificationRepo)
	videoAnalyzer = services.NewVideoAnalyzer(nil)
}
