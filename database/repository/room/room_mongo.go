package roomRepo

import (
	"context"
	"fmt"

	"greenvilla/database"
	"greenvilla/database/repository"
	"greenvilla/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a RoomRepository backed by the rooms collection of db.
func NewMongoRoomRepo(db *mongo.Database) RoomRepository {
	return &MongoRoomRepo{coll: db.Collection(database.RoomsCollection)}
}

func detailProjection() bson.D {
	proj := make(bson.D, 0, len(models.RoomDetailFields))
	for _, field := range models.RoomDetailFields {
		proj = append(proj, bson.E{Key: field, Value: 1})
	}
	return proj
}

func (r *MongoRoomRepo) GetAll(ctx context.Context) ([]models.Document, error) {
	ctx, cancel := repository.NewContext(ctx, repository.ScanTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	rooms, err := repository.FindAll(ctx, cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to read rooms: %w", err)
	}
	return rooms, nil
}

func (r *MongoRoomRepo) GetByID(ctx context.Context, id string) (models.Document, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := repository.NewContext(ctx, repository.DocumentTimeout)
	defer cancel()

	opts := options.FindOne().SetProjection(detailProjection())
	room, err := repository.FindOne(r.coll.FindOne(ctx, bson.M{"_id": oid}, opts))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room with id %s: %w", id, err)
	}
	return room, nil
}

func (r *MongoRoomRepo) UpdateStatus(ctx context.Context, id string, update models.RoomStatusUpdate) (*models.UpdateResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := repository.NewContext(ctx, repository.DocumentTimeout)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return nil, fmt.Errorf("failed to update status of room %s: %w", id, err)
	}
	return repository.UpdateResult(result), nil
}
