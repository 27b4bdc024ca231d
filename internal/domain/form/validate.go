package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CategoryOther means the caller supplied a free-text category.
const CategoryOther = "Others"

const maxRatingLimit = 10

var ErrInvalidDraft = errors.New("invalid form")

// ValidationError lists every problem found in a draft.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid form: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidDraft }

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("formdate", func(fl validator.FieldLevel) bool {
		_, ok := ParseDate(fl.Field().String())
		return ok
	})
	_ = validate.RegisterValidation("questiontype", func(fl validator.FieldLevel) bool {
		return QuestionType(fl.Field().String()).Valid()
	})
}

// DraftInput is a draft as entered in the form builder, before the custom
// category is folded in.
type DraftInput struct {
	Title          string          `json:"title" validate:"required"`
	Description    string          `json:"description"`
	Author         string          `json:"author" validate:"required"`
	Headline       string          `json:"headline"`
	Category       string          `json:"category" validate:"required"`
	CustomCategory string          `json:"customCategory"`
	StartDate      string          `json:"startDate" validate:"required,formdate"`
	EndDate        string          `json:"endDate" validate:"required,formdate"`
	Questions      []QuestionInput `json:"questions" validate:"dive"`
}

type QuestionInput struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type" validate:"required,questiontype"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Required    bool         `json:"required"`
	Options     []Option     `json:"options"`
	MaxRating   int          `json:"maxRating" validate:"gte=0,lte=10"`
}

// ValidateDraft checks the builder rules and returns the normalized Draft.
// Tags are regenerated from category and title on every save.
func ValidateDraft(in DraftInput) (Draft, error) {
	var problems []string

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Draft{}, err
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	category := in.Category
	if category == CategoryOther {
		category = strings.TrimSpace(in.CustomCategory)
		if category == "" {
			problems = append(problems, "customCategory is required when category is Others")
		}
	}

	if start, ok := ParseDate(in.StartDate); ok {
		if end, ok := ParseDate(in.EndDate); ok && !end.After(start) {
			problems = append(problems, "endDate must be after startDate")
		}
	}

	questions := make([]Question, 0, len(in.Questions))
	for i, qi := range in.Questions {
		if qi.Type.HasOptions() && len(qi.Options) < 2 {
			problems = append(problems, fmt.Sprintf("questions[%d] needs at least 2 options", i))
		}
		questions = append(questions, qi.toQuestion())
	}

	if len(problems) > 0 {
		return Draft{}, &ValidationError{Problems: problems}
	}

	return Draft{
		Title:       in.Title,
		Description: in.Description,
		Author:      in.Author,
		Headline:    in.Headline,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Category:    category,
		Tags:        GenerateTags(in.Category, in.Title),
		Questions:   questions,
	}, nil
}

func (qi QuestionInput) toQuestion() Question {
	q := Question{
		ID:          qi.ID,
		Type:        qi.Type,
		Title:       qi.Title,
		Description: qi.Description,
		Required:    qi.Required,
	}
	if q.ID == "" {
		q.ID = NewQuestion(qi.Type).ID
	}
	if qi.Type.HasOptions() {
		q.Options = append([]Option(nil), qi.Options...)
	}
	if qi.Type == QuestionRating {
		q.MaxRating = qi.MaxRating
		if q.MaxRating == 0 {
			q.MaxRating = DefaultMaxRating
		}
	}
	return q
}

func describe(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "formdate":
		return field + " is not a valid date"
	case "questiontype":
		return fmt.Sprintf("%s %q is not a known question type", field, fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %d", field, maxRatingLimit)
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
