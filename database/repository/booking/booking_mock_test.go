package bookingRepo

import (
	"context"
	"testing"

	"greenvilla/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

func newMockRepo(mt *mtest.T) BookingRepository {
	mt.AddMockResponses(mtest.CreateSuccessResponse())
	repo := NewMongoBookingRepo(context.Background(), mt.DB, zap.NewNop())

	created := mt.GetStartedEvent()
	require.NotNil(mt, created)
	require.Equal(mt, "createIndexes", created.CommandName)
	assert.Equal(mt, "email_idx", created.Command.Lookup("indexes", "0", "name").StringValue())
	mt.ClearEvents()
	return repo
}

func TestMongoBookingRepo_Commands(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "db.bookings"

	mt.Run("list filters by email", func(mt *mtest.T) {
		repo := newMockRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: guest}},
		))

		bookings, err := repo.GetByEmail(context.Background(), guest)
		require.NoError(mt, err)
		assert.Len(mt, bookings, 1)

		evt := mt.GetStartedEvent()
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, "bookings", evt.Command.Lookup("find").StringValue())
		assert.Equal(mt, guest, evt.Command.Lookup("filter", "email").StringValue())
	})

	mt.Run("get is scoped to id and email", func(mt *mtest.T) {
		repo := newMockRepo(mt)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		booking, err := repo.GetByID(context.Background(), id.Hex(), guest)
		require.NoError(mt, err)
		assert.Nil(mt, booking)

		evt := mt.GetStartedEvent()
		assert.Equal(mt, id, evt.Command.Lookup("filter", "_id").ObjectID())
		assert.Equal(mt, guest, evt.Command.Lookup("filter", "email").StringValue())
	})

	mt.Run("update sets only the dates", func(mt *mtest.T) {
		repo := newMockRepo(mt)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.UpdateDates(context.Background(), id.Hex(), guest,
			models.BookingDatesUpdate{CheckingDate: "2026-12-01", CheckOutdate: "2026-12-04"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)
		assert.Equal(mt, int64(1), res.ModifiedCount)

		evt := mt.GetStartedEvent()
		assert.Equal(mt, "update", evt.CommandName)
		assert.Equal(mt, id, evt.Command.Lookup("updates", "0", "q", "_id").ObjectID())
		assert.Equal(mt, guest, evt.Command.Lookup("updates", "0", "q", "email").StringValue())

		set := evt.Command.Lookup("updates", "0", "u", "$set").Document()
		elems, err := set.Elements()
		require.NoError(mt, err)
		assert.Len(mt, elems, 2)
		assert.Equal(mt, "2026-12-01", set.Lookup("checkingDate").StringValue())
		assert.Equal(mt, "2026-12-04", set.Lookup("checkOutdate").StringValue())
	})

	mt.Run("delete is scoped to id and email", func(mt *mtest.T) {
		repo := newMockRepo(mt)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		res, err := repo.Delete(context.Background(), id.Hex(), other)
		require.NoError(mt, err)
		assert.Zero(mt, res.DeletedCount)

		evt := mt.GetStartedEvent()
		assert.Equal(mt, "delete", evt.CommandName)
		assert.Equal(mt, id, evt.Command.Lookup("deletes", "0", "q", "_id").ObjectID())
		assert.Equal(mt, other, evt.Command.Lookup("deletes", "0", "q", "email").StringValue())
	})

	mt.Run("create drops the client id", func(mt *mtest.T) {
		repo := newMockRepo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		res, err := repo.Create(context.Background(), models.Document{"_id": "mine", "email": guest})
		require.NoError(mt, err)
		oid, ok := res.InsertedID.(primitive.ObjectID)
		require.True(mt, ok)

		evt := mt.GetStartedEvent()
		assert.Equal(mt, "insert", evt.CommandName)
		assert.Equal(mt, oid, evt.Command.Lookup("documents", "0", "_id").ObjectID())
		assert.Equal(mt, guest, evt.Command.Lookup("documents", "0", "email").StringValue())
	})

	mt.Run("server error is wrapped", func(mt *mtest.T) {
		repo := newMockRepo(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 11600, Name: "InterruptedAtShutdown", Message: "interrupted at shutdown",
		}))

		_, err := repo.GetByEmail(context.Background(), guest)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "failed to retrieve bookings")
	})
}
