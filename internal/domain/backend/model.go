package backend

import (
	"context"
	"encoding/json"
	"time"
)

// FormRecord is a form as stored by the persistence backend. The full form
// document travels as Payload so the backend does not need to track the
// form builder's schema.
type FormRecord struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Category  string          `json:"category"`
	Status    string          `json:"status"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type ResponseRecord struct {
	ID          string          `json:"id"`
	SurveyID    string          `json:"survey_id"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	ListForms(ctx context.Context) ([]FormRecord, error)
	CreateForm(ctx context.Context, f *FormRecord) error
	ListResponses(ctx context.Context, surveyID string) ([]ResponseRecord, error)
	CreateResponse(ctx context.Context, r *ResponseRecord) error
	ListCategories(ctx context.Context) ([]Category, error)
	ListUsers(ctx context.Context) ([]User, error)
	Ping(ctx context.Context) error
}

// Availability is resolved once at startup and handed to whoever needs to
// know whether the persistence backend can be reached.
type Availability struct {
	Available bool   `json:"available"`
	Driver    string `json:"driver"`
}

// Mode is the human readable label reported by the health endpoints.
func (a Availability) Mode() string {
	if a.Available {
		return "Connected"
	}
	return "Demo Mode"
}
