// Command seed fills the rooms collection with sample rooms for local
// development.
package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"greenvilla/config"
	"greenvilla/database"
	"greenvilla/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func main() {
	perCategory := flag.Int("per-category", 3, "rooms to generate per room category")
	reset := flag.Bool("reset", false, "delete existing rooms before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.MongoURI())
	if err != nil {
		logger.Fatal("seed: MongoDB unavailable", zap.Error(err))
	}
	defer func() { _ = database.Disconnect(client, 5*time.Second) }()

	roomColl := client.Database(cfg.DatabaseName).Collection(database.RoomsCollection)

	if *reset {
		res, err := roomColl.DeleteMany(ctx, bson.M{})
		if err != nil {
			logger.Fatal("seed: failed to clear rooms", zap.Error(err))
		}
		logger.Info("seed: cleared rooms", zap.Int64("deleted", res.DeletedCount))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rooms := buildRooms(rng, *perCategory, time.Now())

	docs := make([]interface{}, len(rooms))
	for i, room := range rooms {
		docs[i] = room
	}
	result, err := roomColl.InsertMany(ctx, docs)
	if err != nil {
		logger.Fatal("seed: failed to insert rooms", zap.Error(err))
	}
	logger.Info("seed: inserted rooms",
		zap.String("database", cfg.DatabaseName), zap.Int("count", len(result.InsertedIDs)))
}
