package lib

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var DB *mongo.Database

// ConnectDB initializes the MongoDB connection and sets the global DB variable
func ConnectDB() {
	uri := GetEnv("MONGO_URI", "mongodb://localhost:27017")
	dbName := GetEnv("MONGO_DB", "skillchain")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		panic("Failed to ping database: " + err.Error())
	}

	DB = client.Database(dbName)

	if err := createIndexes(ctx); err != nil {
		log.Printf("Warning: Failed to create database indexes: %v", err)
	}

	log.Println("Connected to MongoDB!")
}

func createIndexes(ctx context.Context) error {
	users := DB.Collection("users")
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "selectedRole", Value: 1}}},
		{Keys: bson.D{{Key: "knownSkills.skill", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "lastActiveAt", Value: -1}}},
	})
	if err != nil {
		return err
	}

	feeds := DB.Collection("feeds")
	_, err = feeds.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "author", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "savedBy", Value: 1}}},
	})
	if err != nil {
		return err
	}

	notifications := DB.Collection("notifications")
	_, err = notifications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}
