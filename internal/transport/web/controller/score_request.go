package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ScoreRequest is the JSON body of POST /comment/{comment_id}/rating.
type ScoreRequest struct {
	UserID *int64 `json:"userId"`
	Score  *int   `json:"score"`
}

// Validate checks that both fields are present. The score range is checked
// when the vote is built.
func (s ScoreRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.UserID, validation.Required, validation.Min(int64(1))),
		validation.Field(&s.Score, validation.NotNil),
	)
}

// decodeScoreRequest reads and validates the request body, returning one
// message per invalid field.
func decodeScoreRequest(body io.Reader) (ScoreRequest, []string) {
	var req ScoreRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return ScoreRequest{}, []string{fmt.Sprintf("Invalid JSON body: %v", err)}
	}

	if err := req.Validate(); err != nil {
		return ScoreRequest{}, validationMessages(err)
	}

	return req, nil
}

func validationMessages(err error) []string {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		messages = append(messages, fmt.Sprintf("%s: %v", field, fieldErr))
	}
	slices.Sort(messages)
	return messages
}
