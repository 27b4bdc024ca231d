package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"survey-builder/internal/domain/backend"
)

const (
	formsCollection      = "forms"
	responsesCollection  = "responses"
	categoriesCollection = "categories"
	usersCollection      = "users"
)

type formDoc struct {
	ID        string    `bson:"_id"`
	Title     string    `bson:"title"`
	Category  string    `bson:"category"`
	Status    string    `bson:"status"`
	Payload   string    `bson:"payload,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

type responseDoc struct {
	ID          string    `bson:"_id"`
	SurveyID    string    `bson:"survey_id"`
	Payload     string    `bson:"payload,omitempty"`
	SubmittedAt time.Time `bson:"submitted_at"`
}

type categoryDoc struct {
	ID   any    `bson:"_id"`
	Name string `bson:"name"`
}

type userDoc struct {
	ID        any       `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Role      string    `bson:"role"`
	CreatedAt time.Time `bson:"created_at"`
}

// Repo implements backend.Repository on MongoDB collections.
type Repo struct {
	db *mongo.Database
}

// NewRepo wraps db and ensures the survey_id index on responses.
func NewRepo(ctx context.Context, db *mongo.Database) (*Repo, error) {
	r := &Repo{db: db}
	_, err := db.Collection(responsesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "survey_id", Value: 1}, {Key: "submitted_at", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repo) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

func (r *Repo) CreateForm(ctx context.Context, f *backend.FormRecord) error {
	_, err := r.db.Collection(formsCollection).InsertOne(ctx, formDoc{
		ID:        f.ID,
		Title:     f.Title,
		Category:  f.Category,
		Status:    f.Status,
		Payload:   string(f.Payload),
		CreatedAt: f.CreatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return backend.ErrDuplicate
	}
	return err
}

func (r *Repo) ListForms(ctx context.Context) ([]backend.FormRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.db.Collection(formsCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []formDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	res := make([]backend.FormRecord, 0, len(docs))
	for _, d := range docs {
		res = append(res, backend.FormRecord{
			ID:        d.ID,
			Title:     d.Title,
			Category:  d.Category,
			Status:    d.Status,
			Payload:   rawOrNil(d.Payload),
			CreatedAt: d.CreatedAt,
		})
	}
	return res, nil
}

func (r *Repo) CreateResponse(ctx context.Context, rr *backend.ResponseRecord) error {
	_, err := r.db.Collection(responsesCollection).InsertOne(ctx, responseDoc{
		ID:          rr.ID,
		SurveyID:    rr.SurveyID,
		Payload:     string(rr.Payload),
		SubmittedAt: rr.SubmittedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return backend.ErrDuplicate
	}
	return err
}

func (r *Repo) ListResponses(ctx context.Context, surveyID string) ([]backend.ResponseRecord, error) {
	filter := bson.D{}
	if surveyID != "" {
		filter = bson.D{{Key: "survey_id", Value: surveyID}}
	}
	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: 1}})
	cur, err := r.db.Collection(responsesCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []responseDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	res := make([]backend.ResponseRecord, 0, len(docs))
	for _, d := range docs {
		res = append(res, backend.ResponseRecord{
			ID:          d.ID,
			SurveyID:    d.SurveyID,
			Payload:     rawOrNil(d.Payload),
			SubmittedAt: d.SubmittedAt,
		})
	}
	return res, nil
}

func (r *Repo) ListCategories(ctx context.Context) ([]backend.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.db.Collection(categoriesCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []categoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	res := make([]backend.Category, 0, len(docs))
	for _, d := range docs {
		res = append(res, backend.Category{ID: idString(d.ID), Name: d.Name})
	}
	return res, nil
}

func (r *Repo) ListUsers(ctx context.Context) ([]backend.User, error) {
	cur, err := r.db.Collection(usersCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	res := make([]backend.User, 0, len(docs))
	for _, d := range docs {
		res = append(res, backend.User{
			ID:        idString(d.ID),
			Name:      d.Name,
			Email:     d.Email,
			Role:      d.Role,
			CreatedAt: d.CreatedAt,
		})
	}
	return res, nil
}

// SeedCategories inserts missing category names.
func (r *Repo) SeedCategories(ctx context.Context, names []string) error {
	col := r.db.Collection(categoriesCollection)
	for _, name := range names {
		_, err := col.UpdateOne(ctx,
			bson.D{{Key: "name", Value: name}},
			bson.D{{Key: "$setOnInsert", Value: bson.D{{Key: "name", Value: name}}}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
