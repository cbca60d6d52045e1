package repository

import (
	"context"
	"errors"

	"eco-quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

// FindByEmail looks a user up by the lowercased email. Returns (nil, nil)
// when no user exists so callers can distinguish absence from failure.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	res, err := r.Col.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// UpdateProgression overwrites the derived points and level of a student.
func (r *UserRepository) UpdateProgression(ctx context.Context, id primitive.ObjectID, ecoPoints, level int) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"eco_points": ecoPoints,
		"level":      level,
	}})
	return err
}

// TopStudents returns the highest ranked students, points descending with
// level as tiebreak.
func (r *UserRepository) TopStudents(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "eco_points", Value: -1}, {Key: "level", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"name": 1, "email": 1, "eco_points": 1, "level": 1})

	cur, err := r.Col.Find(ctx, bson.M{"role": models.RoleStudent}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := []models.LeaderboardEntry{}
	for cur.Next(ctx) {
		var entry models.LeaderboardEntry
		if err := cur.Decode(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, cur.Err()
}
