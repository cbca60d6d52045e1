package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Question is the canonical question shape. The id is assigned at creation
// time and is what submissions reference.
type Question struct {
	ID            string      `bson:"_id" json:"id"`
	QuestionText  string      `bson:"question_text" json:"questionText"`
	Options       []string    `bson:"options" json:"options"`
	CorrectAnswer AnswerValue `bson:"correct_answer" json:"correctAnswer"`
	Explanation   string      `bson:"explanation" json:"explanation"`
}

type Quiz struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Topic       string             `bson:"topic" json:"topic"`
	Category    string             `bson:"category" json:"category"`
	Difficulty  string             `bson:"difficulty" json:"difficulty"`
	CreatedBy   primitive.ObjectID `bson:"created_by" json:"createdBy"`
	IsAI        bool               `bson:"is_ai" json:"isAI"`
	Questions   []Question         `bson:"questions" json:"questions"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// QuizMeta is the listing view: everything except the questions.
type QuizMeta struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Topic       string             `bson:"topic" json:"topic"`
	Category    string             `bson:"category" json:"category"`
	Difficulty  string             `bson:"difficulty" json:"difficulty"`
	CreatedBy   primitive.ObjectID `bson:"created_by" json:"createdBy"`
	IsAI        bool               `bson:"is_ai" json:"isAI"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

// AttemptQuestion is a question with the grading material stripped. It is the
// only question shape a participant sees before submitting.
type AttemptQuestion struct {
	ID           string   `json:"id"`
	QuestionText string   `json:"questionText"`
	Options      []string `json:"options"`
}

// AttemptQuiz is the quiz view served for an attempt.
type AttemptQuiz struct {
	ID          primitive.ObjectID `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Topic       string             `json:"topic"`
	Category    string             `json:"category"`
	Difficulty  string             `json:"difficulty"`
	CreatedBy   primitive.ObjectID `json:"createdBy"`
	IsAI        bool               `json:"isAI"`
	Questions   []AttemptQuestion  `json:"questions"`
}

// ForAttempt strips correct answers and explanations from every question.
func (q *Quiz) ForAttempt() AttemptQuiz {
	questions := make([]AttemptQuestion, 0, len(q.Questions))
	for _, question := range q.Questions {
		questions = append(questions, AttemptQuestion{
			ID:           question.ID,
			QuestionText: question.QuestionText,
			Options:      question.Options,
		})
	}
	return AttemptQuiz{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Topic:       q.Topic,
		Category:    q.Category,
		Difficulty:  q.Difficulty,
		CreatedBy:   q.CreatedBy,
		IsAI:        q.IsAI,
		Questions:   questions,
	}
}

func (q *Quiz) Meta() QuizMeta {
	return QuizMeta{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Topic:       q.Topic,
		Category:    q.Category,
		Difficulty:  q.Difficulty,
		CreatedBy:   q.CreatedBy,
		IsAI:        q.IsAI,
		CreatedAt:   q.CreatedAt,
	}
}
