package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// AnswerValue holds an answer that may arrive as a single string or as a list
// of strings. Both forms decode into the list representation; grading only
// ever sees the list.
type AnswerValue []string

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*v = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(trimmed, &single); err == nil {
		*v = AnswerValue{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(trimmed, &list); err == nil {
		*v = AnswerValue(list)
		return nil
	}

	return fmt.Errorf("answer must be a string or an array of strings")
}

func (v *AnswerValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*v = nil
		return nil
	case bson.TypeString:
		var single string
		if err := bson.UnmarshalValue(t, data, &single); err != nil {
			return err
		}
		*v = AnswerValue{single}
		return nil
	case bson.TypeArray:
		var list []string
		if err := bson.UnmarshalValue(t, data, &list); err != nil {
			return err
		}
		*v = AnswerValue(list)
		return nil
	default:
		return fmt.Errorf("cannot decode %s into an answer value", t)
	}
}

func (v AnswerValue) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue([]string(v))
}
