package form

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the in-memory source of truth for forms and their responses.
//
// Lookups by an unknown id are silent no-ops: mutations report found=false and
// queries return empty results. Status is computed once in AddForm and only
// changes through UpdateForm or a forward AdvanceStatus.
type Store struct {
	mu    sync.RWMutex
	forms []*Form
	now   func() time.Time
	newID func() string
}

type StoreOption func(*Store)

// WithClock overrides the wall clock, mainly for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides uuid-based identifiers.
func WithIDGenerator(gen func() string) StoreOption {
	return func(s *Store) { s.newID = gen }
}

// WithForms preloads the store. Forms are copied in order.
func WithForms(forms []Form) StoreOption {
	return func(s *Store) {
		for i := range forms {
			f := cloneForm(forms[i])
			s.forms = append(s.forms, &f)
		}
	}
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) AddForm(d Draft) Form {
	now := s.now()
	status := DeriveStatus(d.StartDate, d.EndDate, now)
	today := formatDay(now)

	f := Form{
		ID:            s.newID(),
		Title:         d.Title,
		Description:   d.Description,
		Author:        d.Author,
		Headline:      d.Headline,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Status:        status,
		CreatedDate:   today,
		LastModified:  today,
		Category:      d.Category,
		ScheduledDate: d.ScheduledDate,
		Tags:          cloneStrings(d.Tags),
		Questions:     cloneQuestions(d.Questions),
	}
	if status == StatusUpcoming {
		f.ScheduledDate = d.StartDate
	}
	if f.Tags == nil {
		f.Tags = []string{}
	}
	if f.Questions == nil {
		f.Questions = []Question{}
	}

	s.mu.Lock()
	s.forms = append(s.forms, &f)
	s.mu.Unlock()

	return cloneForm(f)
}

// UpdateForm merges the set fields of p into the form and stamps LastModified.
func (s *Store) UpdateForm(id string, p Patch) (Form, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.find(id)
	if f == nil {
		return Form{}, false
	}
	applyPatch(f, p)
	f.LastModified = formatDay(s.now())
	return cloneForm(*f), true
}

var scheduleOrder = map[Status]int{
	StatusUpcoming: 1,
	StatusLive:     2,
	StatusClosed:   3,
}

// AdvanceStatus moves a form from one scheduled status to a later one
// (upcoming, live, closed). It reports false and changes nothing when the
// stored status is no longer from or when to does not come after from.
func (s *Store) AdvanceStatus(id string, from, to Status) (Form, bool) {
	fr, ok := scheduleOrder[from]
	if !ok || scheduleOrder[to] <= fr {
		return Form{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.find(id)
	if f == nil || f.Status != from {
		return Form{}, false
	}
	f.Status = to
	f.LastModified = formatDay(s.now())
	return cloneForm(*f), true
}

func (s *Store) DeleteForm(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.forms {
		if f.ID == id {
			s.forms = append(s.forms[:i], s.forms[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Get(id string) (Form, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f := s.find(id)
	if f == nil {
		return Form{}, false
	}
	return cloneForm(*f), true
}

// List returns every form in insertion order.
func (s *Store) List() []Form {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]Form, 0, len(s.forms))
	for _, f := range s.forms {
		res = append(res, cloneForm(*f))
	}
	return res
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.forms)
}

func (s *Store) FormsByStatus(status Status) []Form {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := []Form{}
	for _, f := range s.forms {
		if f.Status == status {
			res = append(res, cloneForm(*f))
		}
	}
	return res
}

// SubmitResponse appends a response and bumps the counter in one critical section.
func (s *Store) SubmitResponse(sub Submission) (SurveyResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.find(sub.SurveyID)
	if f == nil {
		return SurveyResponse{}, false
	}
	return s.appendResponse(f, sub), true
}

// SubmitChecked is SubmitResponse with check run against the stored form
// under the same lock, so the answers are judged against the questions they
// are saved with. check must not modify the form. A check error leaves the
// store untouched.
func (s *Store) SubmitChecked(sub Submission, check func(Form, Submission) error) (SurveyResponse, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.find(sub.SurveyID)
	if f == nil {
		return SurveyResponse{}, false, nil
	}
	if err := check(*f, sub); err != nil {
		return SurveyResponse{}, true, err
	}
	return s.appendResponse(f, sub), true, nil
}

func (s *Store) appendResponse(f *Form, sub Submission) SurveyResponse {
	now := s.now()
	resp := SurveyResponse{
		ID:           s.newID(),
		SurveyID:     sub.SurveyID,
		RespondentID: sub.RespondentID,
		Responses:    cloneAnswers(sub.Responses),
		SubmittedAt:  now.UTC(),
		TimeTaken:    sub.TimeTaken,
	}
	if resp.Responses == nil {
		resp.Responses = []AnswerRecord{}
	}

	f.SurveyResponses = append(f.SurveyResponses, resp)
	f.Responses++
	f.LastModified = formatDay(now)

	return cloneResponse(resp)
}

func (s *Store) Responses(surveyID string) []SurveyResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f := s.find(surveyID)
	if f == nil {
		return []SurveyResponse{}
	}
	res := make([]SurveyResponse, 0, len(f.SurveyResponses))
	for _, r := range f.SurveyResponses {
		res = append(res, cloneResponse(r))
	}
	return res
}

// IncrementViews bumps the view counter. Deduplication is the caller's job.
func (s *Store) IncrementViews(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.find(id)
	if f == nil {
		return 0, false
	}
	f.Views++
	return f.Views, true
}

type Filter struct {
	Status   Status
	Category string
	Query    string
}

// Search filters by status, category and a case-insensitive match against
// title, description and tags. Empty or "all" criteria match everything.
func (s *Store) Search(flt Filter) []Form {
	q := strings.ToLower(strings.TrimSpace(flt.Query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	res := []Form{}
	for _, f := range s.forms {
		if flt.Status != "" && flt.Status != "all" && f.Status != flt.Status {
			continue
		}
		if flt.Category != "" && flt.Category != "all" && f.Category != flt.Category {
			continue
		}
		if q != "" && !matchesQuery(f, q) {
			continue
		}
		res = append(res, cloneForm(*f))
	}
	return res
}

func matchesQuery(f *Form, q string) bool {
	if strings.Contains(strings.ToLower(f.Title), q) || strings.Contains(strings.ToLower(f.Description), q) {
		return true
	}
	for _, tag := range f.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func (s *Store) find(id string) *Form {
	for _, f := range s.forms {
		if f.ID == id {
			return f
		}
	}
	return nil
}

func applyPatch(f *Form, p Patch) {
	if p.Title != nil {
		f.Title = *p.Title
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.Author != nil {
		f.Author = *p.Author
	}
	if p.Headline != nil {
		f.Headline = *p.Headline
	}
	if p.StartDate != nil {
		f.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		f.EndDate = *p.EndDate
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.Responses != nil {
		f.Responses = *p.Responses
	}
	if p.Views != nil {
		f.Views = *p.Views
	}
	if p.CreatedDate != nil {
		f.CreatedDate = *p.CreatedDate
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.ScheduledDate != nil {
		f.ScheduledDate = *p.ScheduledDate
	}
	if p.Tags != nil {
		f.Tags = cloneStrings(*p.Tags)
	}
	if p.Questions != nil {
		f.Questions = cloneQuestions(*p.Questions)
	}
}

func cloneForm(f Form) Form {
	f.Tags = cloneStrings(f.Tags)
	f.Questions = cloneQuestions(f.Questions)
	if f.SurveyResponses != nil {
		rs := make([]SurveyResponse, len(f.SurveyResponses))
		for i, r := range f.SurveyResponses {
			rs[i] = cloneResponse(r)
		}
		f.SurveyResponses = rs
	}
	return f
}

func cloneQuestions(qs []Question) []Question {
	if qs == nil {
		return nil
	}
	out := make([]Question, len(qs))
	for i, q := range qs {
		if q.Options != nil {
			q.Options = append([]Option(nil), q.Options...)
		}
		out[i] = q
	}
	return out
}

func cloneResponse(r SurveyResponse) SurveyResponse {
	r.Responses = cloneAnswers(r.Responses)
	return r
}

func cloneAnswers(as []AnswerRecord) []AnswerRecord {
	if as == nil {
		return nil
	}
	out := make([]AnswerRecord, len(as))
	for i, a := range as {
		a.Answer.Choices = cloneStrings(a.Answer.Choices)
		out[i] = a
	}
	return out
}

func cloneStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	return append([]string(nil), ss...)
}
