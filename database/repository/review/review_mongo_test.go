package reviewRepo

import (
	"context"
	"testing"

	"greenvilla/database/repository/testutil"
	"greenvilla/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMongoReviewRepo_CreateAndList(t *testing.T) {
	repo := NewMongoReviewRepo(testutil.MongoDatabase(t))
	ctx := context.Background()

	reviews, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)

	res, err := repo.Create(ctx, models.Document{"name": "Ana", "rating": 5, "_id": "mine"})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	id, ok := res.InsertedID.(primitive.ObjectID)
	require.True(t, ok, "store generates the id")

	reviews, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, id, reviews[0]["_id"])
	assert.Equal(t, "Ana", reviews[0]["name"])
}
