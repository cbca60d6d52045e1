package service

import (
	"context"
	"testing"

	"eco-quiz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeQuestionsCanonicalShape(t *testing.T) {
	inputs := []QuestionInput{
		{
			QuestionText:  "Which gas do plants absorb?",
			Options:       []string{"CO2", "O2", "N2"},
			CorrectAnswer: models.AnswerValue{"CO2"},
			Explanation:   "Photosynthesis",
		},
	}

	questions := normalizeQuestions(inputs)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}

	q := questions[0]
	if q.ID == "" {
		t.Error("expected a generated question id")
	}
	if q.QuestionText != "Which gas do plants absorb?" {
		t.Errorf("unexpected question text %q", q.QuestionText)
	}
	if len(q.Options) != 3 {
		t.Errorf("expected 3 options, got %d", len(q.Options))
	}
	if len(q.CorrectAnswer) != 1 || q.CorrectAnswer[0] != "CO2" {
		t.Errorf("unexpected correct answer %v", q.CorrectAnswer)
	}
}

func TestNormalizeQuestionsLegacyShape(t *testing.T) {
	inputs := []QuestionInput{
		{
			Question:      "What is recycling?",
			OptionA:       "Reuse",
			OptionB:       "Burn",
			OptionD:       "Bury", // C intentionally empty
			CorrectAnswer: models.AnswerValue{"Reuse"},
		},
	}

	questions := normalizeQuestions(inputs)
	q := questions[0]

	if q.QuestionText != "What is recycling?" {
		t.Errorf("legacy question text not carried over, got %q", q.QuestionText)
	}
	if len(q.Options) != 3 {
		t.Fatalf("expected empty option fields to be dropped, got %v", q.Options)
	}
	if q.Options[0] != "Reuse" || q.Options[1] != "Burn" || q.Options[2] != "Bury" {
		t.Errorf("options out of order: %v", q.Options)
	}
}

func TestNormalizeQuestionsUniqueIDs(t *testing.T) {
	inputs := make([]QuestionInput, 5)
	questions := normalizeQuestions(inputs)

	seen := map[string]bool{}
	for _, q := range questions {
		if seen[q.ID] {
			t.Fatalf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestFallbackQuestions(t *testing.T) {
	questions := fallbackQuestions("climate change", 5)

	if len(questions) != 5 {
		t.Fatalf("expected 5 fallback questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.QuestionText != "Sample question about climate change?" {
			t.Errorf("question %d: unexpected text %q", i, q.QuestionText)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d: expected 4 options, got %d", i, len(q.Options))
		}
		if len(q.CorrectAnswer) != 1 || q.CorrectAnswer[0] != "Option A" {
			t.Errorf("question %d: unexpected correct answer %v", i, q.CorrectAnswer)
		}
	}
}

func TestCreateQuizValidation(t *testing.T) {
	svc := NewQuizService(nil, nil, nil)
	teacherID := primitive.NewObjectID()

	testCases := []struct {
		name  string
		input CreateQuizInput
	}{
		{"missing title", CreateQuizInput{Topic: "eco", Questions: []QuestionInput{{}}}},
		{"missing topic", CreateQuizInput{Title: "t", Questions: []QuestionInput{{}}}},
		{"no questions", CreateQuizInput{Title: "t", Topic: "eco"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateQuiz(context.Background(), teacherID, tc.input)
			if !IsValidation(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestCreateAIQuizValidation(t *testing.T) {
	svc := NewQuizService(nil, nil, nil)
	teacherID := primitive.NewObjectID()

	_, err := svc.CreateAIQuiz(context.Background(), teacherID, AIQuizInput{Topic: "eco"})
	if !IsValidation(err) {
		t.Errorf("expected a validation error for missing difficulty, got %v", err)
	}

	_, err = svc.CreateAIQuiz(context.Background(), teacherID, AIQuizInput{Difficulty: "easy"})
	if !IsValidation(err) {
		t.Errorf("expected a validation error for missing topic, got %v", err)
	}
}

func TestBuildQuizDefaults(t *testing.T) {
	quiz := buildQuiz(primitive.NewObjectID(), CreateQuizInput{
		Title:     "t",
		Topic:     "eco",
		Questions: []QuestionInput{{}},
	}, false)

	if quiz.Difficulty != models.DifficultyMedium {
		t.Errorf("expected default difficulty medium, got %q", quiz.Difficulty)
	}
	if quiz.Category != "General" {
		t.Errorf("expected default category General, got %q", quiz.Category)
	}
	if quiz.IsAI {
		t.Error("manual quiz must not be flagged as AI generated")
	}
}
