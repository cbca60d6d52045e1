package repository

import (
	"context"

	"eco-quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("results")}
}

// Upsert replaces the (student, quiz) result wholesale, creating it when
// absent. The storage-level upsert is what keeps the pair unique under
// concurrent submissions.
func (r *ResultRepository) Upsert(ctx context.Context, result *models.Result) (*models.Result, error) {
	filter := bson.M{"student": result.Student, "quiz": result.Quiz}
	opts := options.FindOneAndReplace().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.Result
	err := r.Col.FindOneAndReplace(ctx, filter, result, opts).Decode(&saved)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// FindByStudent returns all of a student's results, newest first.
func (r *ResultRepository) FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Result, error) {
	opts := options.Find().SetSort(bson.D{{Key: "attempted_at", Value: -1}})
	return r.find(ctx, bson.M{"student": studentID}, opts)
}

// FindByQuiz returns all results for a quiz, best score first.
func (r *ResultRepository) FindByQuiz(ctx context.Context, quizID primitive.ObjectID) ([]models.Result, error) {
	opts := options.Find().SetSort(bson.D{{Key: "score", Value: -1}})
	return r.find(ctx, bson.M{"quiz": quizID}, opts)
}

func (r *ResultRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Result, error) {
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	results := []models.Result{}
	for cur.Next(ctx) {
		var res models.Result
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, cur.Err()
}
