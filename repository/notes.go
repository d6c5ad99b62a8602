package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"main/model"
	"main/utils"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("NOTES_COLLECTION", "notes")
	return &NotesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.UserID == "" {
		return errors.New("owner id is required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, note); err != nil {
		utils.TrackError("database", "note_creation_failed")
		return fmt.Errorf("insert note: %w", err)
	}

	return nil
}

// NotesByOwner returns the owner's notes in insertion order.
func (r *NotesRepo) NotesByOwner(ctx context.Context, ownerID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		utils.TrackError("database", "note_query_failed")
		return nil, fmt.Errorf("find notes by owner: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}

// DeleteNote removes the note matching id AND owner in one filter, so
// a note owned by someone else is never in the candidate set. Zero
// deletions report model.ErrNoteNotFound regardless of the reason.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, ownerID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     noteID,
		"user_id": ownerID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "note_delete_failed")
		return fmt.Errorf("delete note: %w", err)
	}

	if result.DeletedCount == 0 {
		return model.ErrNoteNotFound
	}

	return nil
}
