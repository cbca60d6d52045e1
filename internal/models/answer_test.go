package models

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestAnswerValueUnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"single string", `"A"`, []string{"A"}, false},
		{"array", `["A","C"]`, []string{"A", "C"}, false},
		{"empty array", `[]`, []string{}, false},
		{"null", `null`, nil, false},
		{"number", `42`, nil, true},
		{"object", `{"a":1}`, nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v AnswerValue
			err := json.Unmarshal([]byte(tc.input), &v)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %s", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(v) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, v)
			}
			for i := range tc.want {
				if v[i] != tc.want[i] {
					t.Errorf("element %d: expected %q, got %q", i, tc.want[i], v[i])
				}
			}
		})
	}
}

func TestAnswerValueUnmarshalJSONInsideStruct(t *testing.T) {
	var payload struct {
		QuestionID     string      `json:"questionId"`
		SelectedAnswer AnswerValue `json:"selectedAnswer"`
	}

	if err := json.Unmarshal([]byte(`{"questionId":"q1","selectedAnswer":"B"}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload.SelectedAnswer) != 1 || payload.SelectedAnswer[0] != "B" {
		t.Errorf("scalar answer not widened to a set: %v", payload.SelectedAnswer)
	}
}

func TestAnswerValueBSONRoundTrip(t *testing.T) {
	type doc struct {
		Answer AnswerValue `bson:"answer"`
	}

	raw, err := bson.Marshal(doc{Answer: AnswerValue{"A", "C"}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded doc
	if err := bson.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(decoded.Answer) != 2 || decoded.Answer[0] != "A" || decoded.Answer[1] != "C" {
		t.Errorf("round trip mismatch: %v", decoded.Answer)
	}
}

func TestAnswerValueBSONScalar(t *testing.T) {
	// Documents written with a scalar correct answer decode like the array
	// form. Grading never has to care which shape was stored.
	raw, err := bson.Marshal(bson.M{"answer": "Option A"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded struct {
		Answer AnswerValue `bson:"answer"`
	}
	if err := bson.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(decoded.Answer) != 1 || decoded.Answer[0] != "Option A" {
		t.Errorf("scalar answer not widened: %v", decoded.Answer)
	}
}
