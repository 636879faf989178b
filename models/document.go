package models

import "go.mongodb.org/mongo-driver/bson"

// Document is a schema-less record as stored in a collection. Client fields
// round-trip unchanged; "_id" is always server generated.
type Document = bson.M

// InsertResult mirrors the insertOne acknowledgement returned to clients.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateResult mirrors the updateOne acknowledgement returned to clients.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// DeleteResult mirrors the deleteOne acknowledgement returned to clients.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
