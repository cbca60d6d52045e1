package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnswerRecord is one graded question inside a stored attempt. Selected and
// correct answers are kept in their normalized form for result review.
type AnswerRecord struct {
	QuestionID     string   `bson:"question_id" json:"questionId"`
	SelectedAnswer []string `bson:"selected_answer" json:"selectedAnswer"`
	CorrectAnswer  []string `bson:"correct_answer" json:"correctAnswer"`
	Explanation    string   `bson:"explanation" json:"explanation"`
	IsCorrect      bool     `bson:"is_correct" json:"isCorrect"`
}

// Result is the latest graded attempt of one student for one quiz. There is
// at most one per (student, quiz); a resubmission replaces it wholesale.
type Result struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Quiz        primitive.ObjectID `bson:"quiz" json:"quiz"`
	Student     primitive.ObjectID `bson:"student" json:"student"`
	Score       int                `bson:"score" json:"score"`
	Total       int                `bson:"total" json:"total"`
	Answers     []AnswerRecord     `bson:"answers" json:"answers"`
	AttemptedAt time.Time          `bson:"attempted_at" json:"attemptedAt"`
}

// StudentResult annotates a result with the quiz it belongs to, for the
// "my results" listing.
type StudentResult struct {
	Result
	QuizInfo *ResultQuizInfo `json:"quizInfo,omitempty"`
}

type ResultQuizInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

// QuizResult annotates a result with the student who produced it, carrying
// the student's current progression snapshot.
type QuizResult struct {
	Result
	StudentInfo *ResultStudentInfo `json:"studentInfo,omitempty"`
}

type ResultStudentInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	EcoPoints int    `json:"ecoPoints"`
	Level     int    `json:"level"`
}
