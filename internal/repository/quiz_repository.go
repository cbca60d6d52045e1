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

type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

// QuizFilter carries the optional listing filters. Topic and category are
// case-insensitive substring matches; difficulty and creator are exact.
type QuizFilter struct {
	Topic      string
	Category   string
	Difficulty string
	CreatedBy  *primitive.ObjectID
}

func (f QuizFilter) toBson() bson.M {
	filter := bson.M{}
	if f.Topic != "" {
		filter["topic"] = primitive.Regex{Pattern: regexEscape(f.Topic), Options: "i"}
	}
	if f.Category != "" {
		filter["category"] = primitive.Regex{Pattern: regexEscape(f.Category), Options: "i"}
	}
	if f.Difficulty != "" {
		filter["difficulty"] = f.Difficulty
	}
	if f.CreatedBy != nil {
		filter["created_by"] = *f.CreatedBy
	}
	return filter
}

func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	res, err := r.Col.InsertOne(ctx, quiz)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		quiz.ID = oid
	}
	return nil
}

func (r *QuizRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

// FindMeta lists quizzes matching the filter, questions excluded.
func (r *QuizRepository) FindMeta(ctx context.Context, filter QuizFilter) ([]models.QuizMeta, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"questions": 0})

	cur, err := r.Col.Find(ctx, filter.toBson(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	quizzes := []models.QuizMeta{}
	for cur.Next(ctx) {
		var q models.QuizMeta
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, cur.Err()
}

// regexEscape quotes regex metacharacters so user-supplied filter text is
// matched literally.
func regexEscape(s string) string {
	escaped := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '.', '+', '*', '?', '(', ')', '[', ']', '{', '}', '^', '$', '|', '\\':
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, c)
	}
	return string(escaped)
}
