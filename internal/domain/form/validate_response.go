package form

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSubmission = errors.New("invalid submission")

type SubmissionError struct {
	Problems []string
}

func (e *SubmissionError) Error() string {
	return "invalid submission: " + strings.Join(e.Problems, "; ")
}

func (e *SubmissionError) Unwrap() error { return ErrInvalidSubmission }

// ValidateSubmission checks answers against the form's questions: required
// questions must be answered, answers must fit the question type, and
// choice answers must name one of the options by id or text.
func ValidateSubmission(f Form, sub Submission) error {
	var problems []string

	if sub.TimeTaken < 0 {
		problems = append(problems, "timeTaken must not be negative")
	}

	byID := make(map[string]Question, len(f.Questions))
	for _, q := range f.Questions {
		byID[q.ID] = q
	}

	answered := make(map[string]bool, len(sub.Responses))
	for _, rec := range sub.Responses {
		q, ok := byID[rec.QuestionID]
		if !ok {
			problems = append(problems, fmt.Sprintf("unknown question %q", rec.QuestionID))
			continue
		}
		if answered[q.ID] {
			problems = append(problems, fmt.Sprintf("question %q answered twice", q.ID))
			continue
		}
		if isEmpty(rec.Answer) {
			continue
		}
		answered[q.ID] = true
		if msg := checkAnswer(q, rec.Answer); msg != "" {
			problems = append(problems, fmt.Sprintf("question %q: %s", q.ID, msg))
		}
	}

	for _, q := range f.Questions {
		if q.Required && !answered[q.ID] {
			problems = append(problems, fmt.Sprintf("question %q is required", q.ID))
		}
	}

	if len(problems) > 0 {
		return &SubmissionError{Problems: problems}
	}
	return nil
}

func isEmpty(a Answer) bool {
	switch a.Kind {
	case AnswerNone:
		return true
	case AnswerText:
		return strings.TrimSpace(a.Text) == ""
	case AnswerChoices:
		return len(a.Choices) == 0
	}
	return false
}

func checkAnswer(q Question, a Answer) string {
	switch q.Type {
	case QuestionShort, QuestionLong:
		if a.Kind != AnswerText {
			return "expected a text answer"
		}
	case QuestionMCQ, QuestionDropdown:
		if a.Kind != AnswerText {
			return "expected a single choice"
		}
		if !hasOption(q, a.Text) {
			return fmt.Sprintf("%q is not an option", a.Text)
		}
	case QuestionCheckbox:
		if a.Kind != AnswerChoices {
			return "expected a list of choices"
		}
		for _, c := range a.Choices {
			if !hasOption(q, c) {
				return fmt.Sprintf("%q is not an option", c)
			}
		}
	case QuestionRating:
		if a.Kind != AnswerNumber {
			return "expected a numeric rating"
		}
		if a.Number < 1 || a.Number > float64(q.EffectiveMaxRating()) {
			return fmt.Sprintf("rating must be between 1 and %d", q.EffectiveMaxRating())
		}
	}
	return ""
}

func hasOption(q Question, v string) bool {
	for _, o := range q.Options {
		if o.ID == v || o.Text == v {
			return true
		}
	}
	return false
}
