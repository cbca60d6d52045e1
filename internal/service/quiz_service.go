package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"eco-quiz-backend/internal/event"
	"eco-quiz-backend/internal/llm"
	"eco-quiz-backend/internal/models"
	"eco-quiz-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultAIQuestionCount = 5

type QuizService struct {
	Repo      *repository.QuizRepository
	Generator *llm.Client
	events    event.Publisher
}

func NewQuizService(repo *repository.QuizRepository, generator *llm.Client, events event.Publisher) *QuizService {
	return &QuizService{Repo: repo, Generator: generator, events: events}
}

// QuestionInput accepts either the canonical question shape or the legacy one
// with discrete option fields and a scalar question text.
type QuestionInput struct {
	QuestionText  string             `json:"questionText"`
	Options       []string           `json:"options"`
	Question      string             `json:"question"`
	OptionA       string             `json:"optionA"`
	OptionB       string             `json:"optionB"`
	OptionC       string             `json:"optionC"`
	OptionD       string             `json:"optionD"`
	CorrectAnswer models.AnswerValue `json:"correctAnswer"`
	Explanation   string             `json:"explanation"`
}

type CreateQuizInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Topic       string          `json:"topic"`
	Category    string          `json:"category"`
	Difficulty  string          `json:"difficulty"`
	Questions   []QuestionInput `json:"questions"`
}

type AIQuizInput struct {
	Topic        string `json:"topic"`
	Category     string `json:"category"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"numQuestions"`
}

// normalizeQuestions converts every input question into the canonical shape
// and assigns the stable ids submissions will reference. Legacy inputs have
// their non-empty optionA..D fields collected in order; a scalar correct
// answer is already widened to a one-element set by AnswerValue decoding.
func normalizeQuestions(inputs []QuestionInput) []models.Question {
	questions := make([]models.Question, 0, len(inputs))
	for _, in := range inputs {
		q := models.Question{
			ID:            primitive.NewObjectID().Hex(),
			CorrectAnswer: in.CorrectAnswer,
			Explanation:   in.Explanation,
		}
		if in.QuestionText != "" && len(in.Options) > 0 {
			q.QuestionText = in.QuestionText
			q.Options = in.Options
		} else {
			q.QuestionText = in.Question
			for _, opt := range []string{in.OptionA, in.OptionB, in.OptionC, in.OptionD} {
				if opt != "" {
					q.Options = append(q.Options, opt)
				}
			}
		}
		questions = append(questions, q)
	}
	return questions
}

func (s *QuizService) CreateQuiz(ctx context.Context, teacherID primitive.ObjectID, input CreateQuizInput) (*models.Quiz, error) {
	if input.Title == "" || input.Topic == "" || len(input.Questions) == 0 {
		return nil, validationError("title, topic and questions are required")
	}

	quiz := buildQuiz(teacherID, input, false)
	if err := s.Repo.Create(ctx, quiz); err != nil {
		return nil, err
	}
	s.publish("quiz.created", quiz)
	return quiz, nil
}

// CreateAIQuiz builds a quiz from generated questions. Generation failures
// are absorbed: the quiz is created from the deterministic sample set
// instead, and the request still succeeds.
func (s *QuizService) CreateAIQuiz(ctx context.Context, teacherID primitive.ObjectID, input AIQuizInput) (*models.Quiz, error) {
	if input.Topic == "" || input.Difficulty == "" {
		return nil, validationError("topic and difficulty are required for an AI quiz")
	}

	count := input.NumQuestions
	if count <= 0 {
		count = defaultAIQuestionCount
	}

	questions := s.generateQuestions(ctx, input.Topic, input.Difficulty, count)

	quiz := buildQuiz(teacherID, CreateQuizInput{
		Title:       fmt.Sprintf("%s - AI Quiz", input.Topic),
		Description: fmt.Sprintf("AI generated quiz on %s", input.Topic),
		Topic:       input.Topic,
		Category:    input.Category,
		Difficulty:  input.Difficulty,
		Questions:   questions,
	}, true)
	if err := s.Repo.Create(ctx, quiz); err != nil {
		return nil, err
	}
	s.publish("quiz.generated", quiz)
	return quiz, nil
}

func (s *QuizService) generateQuestions(ctx context.Context, topic, difficulty string, count int) []QuestionInput {
	if s.Generator != nil {
		generated, err := s.Generator.GenerateQuestions(ctx, topic, difficulty, count)
		if err == nil && len(generated) > 0 {
			questions := make([]QuestionInput, 0, len(generated))
			for _, g := range generated {
				questions = append(questions, QuestionInput{
					QuestionText:  g.QuestionText,
					Options:       g.Options,
					CorrectAnswer: models.AnswerValue{g.CorrectAnswer},
					Explanation:   g.Explanation,
				})
			}
			return questions
		}
		log.Printf("Warning: question generation failed, using fallback set: %v", err)
	}
	return fallbackQuestions(topic, count)
}

// fallbackQuestions produces the clearly-marked sample set used when the
// generator is unavailable or returns garbage.
func fallbackQuestions(topic string, count int) []QuestionInput {
	questions := make([]QuestionInput, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, QuestionInput{
			QuestionText:  fmt.Sprintf("Sample question about %s?", topic),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: models.AnswerValue{"Option A"},
			Explanation:   "This is a sample explanation since generation failed.",
		})
	}
	return questions
}

func buildQuiz(teacherID primitive.ObjectID, input CreateQuizInput, isAI bool) *models.Quiz {
	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	category := input.Category
	if category == "" {
		category = "General"
	}

	now := time.Now()
	return &models.Quiz{
		Title:       input.Title,
		Description: input.Description,
		Topic:       input.Topic,
		Category:    category,
		Difficulty:  difficulty,
		CreatedBy:   teacherID,
		IsAI:        isAI,
		Questions:   normalizeQuestions(input.Questions),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *QuizService) ListQuizzes(ctx context.Context, filter repository.QuizFilter) ([]models.QuizMeta, error) {
	return s.Repo.FindMeta(ctx, filter)
}

// GetQuizForAttempt returns the quiz with grading material stripped from
// every question. A malformed id is treated the same as an unknown one.
func (s *QuizService) GetQuizForAttempt(ctx context.Context, id string) (*models.AttemptQuiz, error) {
	quizID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	quiz, err := s.Repo.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, ErrNotFound
	}
	view := quiz.ForAttempt()
	return &view, nil
}

func (s *QuizService) publish(eventType string, quiz *models.Quiz) {
	if s.events == nil {
		return
	}
	err := s.events.Publish(eventType, map[string]string{
		"quizId":  quiz.ID.Hex(),
		"topic":   quiz.Topic,
		"teacher": quiz.CreatedBy.Hex(),
	})
	if err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
