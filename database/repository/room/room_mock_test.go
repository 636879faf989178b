package roomRepo

import (
	"context"
	"testing"

	"greenvilla/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRoomRepo_Commands(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "db.rooms"

	mt.Run("detail view is projected", func(mt *mtest.T) {
		repo := NewMongoRoomRepo(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "roomCategory", Value: "Deluxe"}},
		))

		room, err := repo.GetByID(context.Background(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, "Deluxe", room["roomCategory"])

		evt := mt.GetStartedEvent()
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, id, evt.Command.Lookup("filter", "_id").ObjectID())

		projection := evt.Command.Lookup("projection").Document()
		elems, err := projection.Elements()
		require.NoError(mt, err)
		assert.Len(mt, elems, len(models.RoomDetailFields))
		for _, field := range models.RoomDetailFields {
			_, err := projection.LookupErr(field)
			assert.NoError(mt, err, "projection misses %q", field)
		}
	})

	mt.Run("listing is unprojected", func(mt *mtest.T) {
		repo := NewMongoRoomRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		rooms, err := repo.GetAll(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, rooms)
		assert.Empty(mt, rooms)

		evt := mt.GetStartedEvent()
		_, err = evt.Command.LookupErr("projection")
		assert.Error(mt, err)
	})

	mt.Run("status update sets only status", func(mt *mtest.T) {
		repo := NewMongoRoomRepo(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0},
		))

		res, err := repo.UpdateStatus(context.Background(), id.Hex(), models.RoomStatusUpdate{Status: "booked"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)
		assert.Zero(mt, res.ModifiedCount)

		evt := mt.GetStartedEvent()
		assert.Equal(mt, id, evt.Command.Lookup("updates", "0", "q", "_id").ObjectID())
		set := evt.Command.Lookup("updates", "0", "u", "$set").Document()
		elems, err := set.Elements()
		require.NoError(mt, err)
		assert.Len(mt, elems, 1)
		assert.Equal(mt, "booked", set.Lookup("status").StringValue())
	})
}
