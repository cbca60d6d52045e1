package service

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"eco-quiz-backend/internal/event"
	"eco-quiz-backend/internal/models"
	"eco-quiz-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	pointsPerCorrect = 10
	passThreshold    = 0.7
)

type ResultService struct {
	Results *repository.ResultRepository
	Quizzes *repository.QuizRepository
	Users   *repository.UserRepository
	events  event.Publisher
}

func NewResultService(results *repository.ResultRepository, quizzes *repository.QuizRepository, users *repository.UserRepository, events event.Publisher) *ResultService {
	return &ResultService{Results: results, Quizzes: quizzes, Users: users, events: events}
}

// AnswerSubmission is one submitted answer. SelectedAnswer accepts a single
// string or a list.
type AnswerSubmission struct {
	QuestionID     string             `json:"questionId"`
	SelectedAnswer models.AnswerValue `json:"selectedAnswer"`
}

// AttemptOutcome is what a student gets back after grading.
type AttemptOutcome struct {
	Score     int            `json:"score"`
	Total     int            `json:"total"`
	EcoPoints int            `json:"ecoPoints"`
	Level     int            `json:"level"`
	Result    *models.Result `json:"result"`
}

// normalizeAnswerSet coerces answers to the canonical comparison form:
// whitespace trimmed, uppercased. Duplicates are kept so a padded selection
// cannot fake the cardinality check.
func normalizeAnswerSet(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, v := range values {
		normalized = append(normalized, strings.ToUpper(strings.TrimSpace(v)))
	}
	return normalized
}

// answerSetsEqual is the grading rule: same cardinality and every correct
// element present in the selection. Order never matters; partial or
// over-selection both fail.
func answerSetsEqual(correct, selected []string) bool {
	if len(correct) != len(selected) {
		return false
	}
	for _, want := range correct {
		found := false
		for _, got := range selected {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// gradeQuiz walks the quiz's questions, matching each against the submission
// with the same question id. A question without a matching submission grades
// as an empty selection.
func gradeQuiz(quiz *models.Quiz, submissions []AnswerSubmission) ([]models.AnswerRecord, int) {
	byQuestion := make(map[string]models.AnswerValue, len(submissions))
	for _, sub := range submissions {
		if _, seen := byQuestion[sub.QuestionID]; !seen {
			byQuestion[sub.QuestionID] = sub.SelectedAnswer
		}
	}

	score := 0
	records := make([]models.AnswerRecord, 0, len(quiz.Questions))
	for _, question := range quiz.Questions {
		correct := normalizeAnswerSet(question.CorrectAnswer)
		selected := normalizeAnswerSet(byQuestion[question.ID])

		isCorrect := answerSetsEqual(correct, selected)
		if isCorrect {
			score++
		}

		records = append(records, models.AnswerRecord{
			QuestionID:     question.ID,
			SelectedAnswer: selected,
			CorrectAnswer:  correct,
			Explanation:    question.Explanation,
			IsCorrect:      isCorrect,
		})
	}
	return records, score
}

// passScore is the minimum score that counts a result as passed: 70% of the
// total, rounded up.
func passScore(total int) int {
	return int(math.Ceil(float64(total) * passThreshold))
}

// recomputeProgression derives points and level from a student's complete
// result history. Recomputing from scratch keeps progression idempotent
// under replayed or repeated submissions.
func recomputeProgression(results []models.Result) (ecoPoints, level int) {
	for _, r := range results {
		ecoPoints += r.Score * pointsPerCorrect
		if r.Score >= passScore(r.Total) {
			level++
		}
	}
	return ecoPoints, level
}

// SubmitAttempt grades a submission, replaces the student's previous result
// for the quiz, and recomputes the student's progression from full history.
func (s *ResultService) SubmitAttempt(ctx context.Context, student *models.User, quizID string, submissions []AnswerSubmission) (*AttemptOutcome, error) {
	if submissions == nil {
		return nil, validationError("answers are required in an array format")
	}

	id, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return nil, ErrNotFound
	}
	quiz, err := s.Quizzes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, ErrNotFound
	}

	records, score := gradeQuiz(quiz, submissions)

	saved, err := s.Results.Upsert(ctx, &models.Result{
		Quiz:        quiz.ID,
		Student:     student.ID,
		Score:       score,
		Total:       len(quiz.Questions),
		Answers:     records,
		AttemptedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	allResults, err := s.Results.FindByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	ecoPoints, level := recomputeProgression(allResults)
	if err := s.Users.UpdateProgression(ctx, student.ID, ecoPoints, level); err != nil {
		return nil, err
	}

	if s.events != nil {
		if err := s.events.Publish("attempt.submitted", map[string]interface{}{
			"studentId": student.ID.Hex(),
			"quizId":    quiz.ID.Hex(),
			"score":     score,
			"total":     len(quiz.Questions),
		}); err != nil {
			log.Printf("Warning: failed to publish attempt submitted event: %v", err)
		}
	}

	return &AttemptOutcome{
		Score:     score,
		Total:     len(quiz.Questions),
		EcoPoints: ecoPoints,
		Level:     level,
		Result:    saved,
	}, nil
}

// GetMyResults lists a student's results newest first, each annotated with
// the quiz it belongs to.
func (s *ResultService) GetMyResults(ctx context.Context, studentID primitive.ObjectID) ([]models.StudentResult, error) {
	results, err := s.Results.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	quizzes := map[primitive.ObjectID]*models.Quiz{}
	annotated := make([]models.StudentResult, 0, len(results))
	for _, res := range results {
		quiz, cached := quizzes[res.Quiz]
		if !cached {
			quiz, err = s.Quizzes.FindByID(ctx, res.Quiz)
			if err != nil {
				return nil, err
			}
			quizzes[res.Quiz] = quiz
		}

		entry := models.StudentResult{Result: res}
		if quiz != nil {
			entry.QuizInfo = &models.ResultQuizInfo{
				Title:       quiz.Title,
				Description: quiz.Description,
				Difficulty:  quiz.Difficulty,
			}
		}
		annotated = append(annotated, entry)
	}
	return annotated, nil
}

// GetQuizResults lists every student's result for a quiz, best score first,
// annotated with the student's identity and current progression snapshot.
func (s *ResultService) GetQuizResults(ctx context.Context, quizID string) ([]models.QuizResult, error) {
	id, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return nil, ErrNotFound
	}

	results, err := s.Results.FindByQuiz(ctx, id)
	if err != nil {
		return nil, err
	}

	students := map[primitive.ObjectID]*models.User{}
	annotated := make([]models.QuizResult, 0, len(results))
	for _, res := range results {
		student, cached := students[res.Student]
		if !cached {
			student, err = s.Users.FindByID(ctx, res.Student)
			if err != nil {
				return nil, err
			}
			students[res.Student] = student
		}

		entry := models.QuizResult{Result: res}
		if student != nil {
			entry.StudentInfo = &models.ResultStudentInfo{
				Name:      student.Name,
				Email:     student.Email,
				EcoPoints: student.EcoPoints,
				Level:     student.Level,
			}
		}
		annotated = append(annotated, entry)
	}
	return annotated, nil
}

// GetLeaderboard returns the top 10 students by points, level as tiebreak.
func (s *ResultService) GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return s.Users.TopStudents(ctx, 10)
}
