package form

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const maxTags = 5

var categoryTags = map[string][]string{
	"Food and Beverages":    {"food", "beverages", "dining"},
	"Entertainment":         {"entertainment", "media", "leisure"},
	"Luxury":                {"luxury", "premium", "lifestyle"},
	"Logistics":             {"logistics", "transportation", "supply"},
	"Vehicles":              {"vehicles", "automotive", "transport"},
	"NGO's":                 {"ngo", "nonprofit", "social"},
	"Retail":                {"retail", "shopping", "commerce"},
	"Education":             {"education", "learning", "academic"},
	"Fashion and Lifestyle": {"fashion", "lifestyle", "style"},
}

var titleKeywords = []string{"customer", "product", "feedback"}

// Categories returns the categories that have predefined tags, sorted by name.
func Categories() []string {
	return []string{
		"Education",
		"Entertainment",
		"Fashion and Lifestyle",
		"Food and Beverages",
		"Logistics",
		"Luxury",
		"NGO's",
		"Retail",
		"Vehicles",
	}
}

// GenerateTags combines the category's base tags with keywords found in the title.
func GenerateTags(category, title string) []string {
	base, ok := categoryTags[category]
	if !ok {
		base = []string{"survey", "custom"}
	}
	tags := append([]string{}, base...)

	lower := strings.ToLower(title)
	for _, kw := range titleKeywords {
		if strings.Contains(lower, kw) {
			tags = append(tags, kw)
		}
	}
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}

// NewQuestion returns a blank question of type t with its type defaults applied.
func NewQuestion(t QuestionType) Question {
	q := Question{
		ID:   uuid.NewString(),
		Type: t,
	}
	if t.HasOptions() {
		q.Options = []Option{
			{ID: "1", Text: "Option 1"},
			{ID: "2", Text: "Option 2"},
		}
	}
	if t == QuestionRating {
		q.MaxRating = DefaultMaxRating
	}
	return q
}

// AddOption appends "Option N" to a choice question.
func AddOption(q Question) Question {
	if !q.Type.HasOptions() {
		return q
	}
	n := len(q.Options) + 1
	q.Options = append(append([]Option(nil), q.Options...), Option{
		ID:   uuid.NewString(),
		Text: "Option " + strconv.Itoa(n),
	})
	return q
}
