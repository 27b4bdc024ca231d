package form

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusLive     Status = "live"
	StatusUpcoming Status = "upcoming"
	StatusClosed   Status = "closed"
)

// Statuses lists every lifecycle status in display order.
var Statuses = []Status{StatusDraft, StatusLive, StatusUpcoming, StatusClosed}

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusLive, StatusUpcoming, StatusClosed:
		return true
	}
	return false
}

type QuestionType string

const (
	QuestionShort    QuestionType = "short"
	QuestionLong     QuestionType = "long"
	QuestionMCQ      QuestionType = "mcq"
	QuestionRating   QuestionType = "rating"
	QuestionCheckbox QuestionType = "checkbox"
	QuestionDropdown QuestionType = "dropdown"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionShort, QuestionLong, QuestionMCQ, QuestionRating, QuestionCheckbox, QuestionDropdown:
		return true
	}
	return false
}

// HasOptions reports whether questions of this type carry a choice list.
func (t QuestionType) HasOptions() bool {
	return t == QuestionMCQ || t == QuestionCheckbox || t == QuestionDropdown
}

const DefaultMaxRating = 5

type Form struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Author          string           `json:"author"`
	Headline        string           `json:"headline"`
	StartDate       string           `json:"startDate"`
	EndDate         string           `json:"endDate"`
	Status          Status           `json:"status"`
	Responses       int              `json:"responses"`
	Views           int              `json:"views"`
	CreatedDate     string           `json:"createdDate"`
	LastModified    string           `json:"lastModified"`
	Category        string           `json:"category"`
	ScheduledDate   string           `json:"scheduledDate,omitempty"`
	Tags            []string         `json:"tags"`
	Questions       []Question       `json:"questions"`
	SurveyResponses []SurveyResponse `json:"surveyResponses,omitempty"`
}

type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Required    bool         `json:"required"`
	Options     []Option     `json:"options,omitempty"`
	MaxRating   int          `json:"maxRating,omitempty"`
}

// EffectiveMaxRating returns the rating scale upper bound, defaulting to 5.
func (q Question) EffectiveMaxRating() int {
	if q.MaxRating <= 0 {
		return DefaultMaxRating
	}
	return q.MaxRating
}

type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type SurveyResponse struct {
	ID           string         `json:"id"`
	SurveyID     string         `json:"surveyId"`
	RespondentID string         `json:"respondentId,omitempty"`
	Responses    []AnswerRecord `json:"responses"`
	SubmittedAt  time.Time      `json:"submittedAt"`
	TimeTaken    int            `json:"timeTaken"`
}

type AnswerRecord struct {
	QuestionID string `json:"questionId"`
	Answer     Answer `json:"answer"`
}

type AnswerKind int

const (
	AnswerNone AnswerKind = iota
	AnswerText
	AnswerChoices
	AnswerNumber
)

// Answer holds one of a text value, a list of selected choices or a number.
type Answer struct {
	Kind    AnswerKind
	Text    string
	Choices []string
	Number  float64
}

func TextAnswer(s string) Answer       { return Answer{Kind: AnswerText, Text: s} }
func ChoicesAnswer(c ...string) Answer { return Answer{Kind: AnswerChoices, Choices: c} }
func NumberAnswer(n float64) Answer    { return Answer{Kind: AnswerNumber, Number: n} }

var errInvalidAnswer = errors.New("answer must be a string, a list of strings or a number")

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerText:
		return json.Marshal(a.Text)
	case AnswerChoices:
		if a.Choices == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.Choices)
	case AnswerNumber:
		return json.Marshal(a.Number)
	default:
		return []byte("null"), nil
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Answer{}
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = TextAnswer(s)
	case '[':
		var c []string
		if err := json.Unmarshal(data, &c); err != nil {
			return errInvalidAnswer
		}
		*a = ChoicesAnswer(c...)
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return errInvalidAnswer
		}
		*a = NumberAnswer(n)
	}
	return nil
}

// Draft carries the caller-supplied fields of a new form.
type Draft struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Author        string     `json:"author"`
	Headline      string     `json:"headline"`
	StartDate     string     `json:"startDate"`
	EndDate       string     `json:"endDate"`
	Category      string     `json:"category"`
	ScheduledDate string     `json:"scheduledDate,omitempty"`
	Tags          []string   `json:"tags"`
	Questions     []Question `json:"questions"`
}

// Patch lists the fields an update may overwrite. Nil fields are left untouched.
type Patch struct {
	Title         *string     `json:"title,omitempty"`
	Description   *string     `json:"description,omitempty"`
	Author        *string     `json:"author,omitempty"`
	Headline      *string     `json:"headline,omitempty"`
	StartDate     *string     `json:"startDate,omitempty"`
	EndDate       *string     `json:"endDate,omitempty"`
	Status        *Status     `json:"status,omitempty"`
	Responses     *int        `json:"responses,omitempty"`
	Views         *int        `json:"views,omitempty"`
	CreatedDate   *string     `json:"createdDate,omitempty"`
	Category      *string     `json:"category,omitempty"`
	ScheduledDate *string     `json:"scheduledDate,omitempty"`
	Tags          *[]string   `json:"tags,omitempty"`
	Questions     *[]Question `json:"questions,omitempty"`
}

// Submission is one respondent's answer set before the store stamps it.
type Submission struct {
	SurveyID     string         `json:"surveyId"`
	RespondentID string         `json:"respondentId,omitempty"`
	Responses    []AnswerRecord `json:"responses"`
	TimeTaken    int            `json:"timeTaken"`
}
