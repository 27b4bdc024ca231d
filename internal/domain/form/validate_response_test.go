package form

import (
	"errors"
	"reflect"
	"testing"
)

func submissionForm() Form {
	return Form{
		ID: "f1",
		Questions: []Question{
			{ID: "name", Type: QuestionShort, Required: true},
			{ID: "pick", Type: QuestionDropdown, Options: []Option{{ID: "a", Text: "Alpha"}, {ID: "b", Text: "Beta"}}},
			{ID: "many", Type: QuestionCheckbox, Options: []Option{{ID: "x", Text: "X"}, {ID: "y", Text: "Y"}}},
			{ID: "score", Type: QuestionRating, Required: true},
		},
	}
}

func TestValidateSubmissionOK(t *testing.T) {
	err := ValidateSubmission(submissionForm(), Submission{
		SurveyID: "f1",
		Responses: []AnswerRecord{
			{QuestionID: "name", Answer: TextAnswer("Ada")},
			{QuestionID: "pick", Answer: TextAnswer("Beta")},
			{QuestionID: "many", Answer: ChoicesAnswer("x", "Y")},
			{QuestionID: "score", Answer: NumberAnswer(5)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateSubmissionOptionalMayBeBlank(t *testing.T) {
	err := ValidateSubmission(submissionForm(), Submission{
		Responses: []AnswerRecord{
			{QuestionID: "name", Answer: TextAnswer("Ada")},
			{QuestionID: "pick", Answer: TextAnswer("  ")},
			{QuestionID: "score", Answer: NumberAnswer(1)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateSubmissionProblems(t *testing.T) {
	err := ValidateSubmission(submissionForm(), Submission{
		TimeTaken: -1,
		Responses: []AnswerRecord{
			{QuestionID: "ghost", Answer: TextAnswer("boo")},
			{QuestionID: "pick", Answer: TextAnswer("Gamma")},
			{QuestionID: "many", Answer: TextAnswer("x")},
			{QuestionID: "score", Answer: NumberAnswer(9)},
		},
	})
	if !errors.Is(err, ErrInvalidSubmission) {
		t.Fatalf("expected ErrInvalidSubmission, got %v", err)
	}

	var serr *SubmissionError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SubmissionError, got %T", err)
	}
	want := []string{
		"timeTaken must not be negative",
		`unknown question "ghost"`,
		`question "pick": "Gamma" is not an option`,
		`question "many": expected a list of choices`,
		`question "score": rating must be between 1 and 5`,
		`question "name" is required`,
	}
	if !reflect.DeepEqual(serr.Problems, want) {
		t.Fatalf("expected problems %v, got %v", want, serr.Problems)
	}
}

func TestValidateSubmissionDuplicateAnswer(t *testing.T) {
	err := ValidateSubmission(submissionForm(), Submission{
		Responses: []AnswerRecord{
			{QuestionID: "name", Answer: TextAnswer("Ada")},
			{QuestionID: "name", Answer: TextAnswer("Bob")},
			{QuestionID: "score", Answer: NumberAnswer(3)},
		},
	})
	var serr *SubmissionError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SubmissionError, got %v", err)
	}
	if want := []string{`question "name" answered twice`}; !reflect.DeepEqual(serr.Problems, want) {
		t.Fatalf("expected problems %v, got %v", want, serr.Problems)
	}
}
