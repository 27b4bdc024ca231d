package form

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestStore(opts ...StoreOption) *Store {
	var n int
	base := []StoreOption{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	}
	return NewStore(append(base, opts...)...)
}

func day(offset int) string {
	return fixedNow.AddDate(0, 0, offset).Format(time.RFC3339)
}

func TestAddFormDerivesStatus(t *testing.T) {
	cases := []struct {
		name   string
		start  string
		end    string
		status Status
	}{
		{"live", day(-1), day(1), StatusLive},
		{"upcoming", day(1), day(2), StatusUpcoming},
		{"closed", day(-2), day(-1), StatusClosed},
		{"missing start", "", day(1), StatusDraft},
		{"missing end", day(-1), "", StatusDraft},
		{"malformed", "next tuesday", day(1), StatusDraft},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore()
			f := s.AddForm(Draft{Title: "T", StartDate: tc.start, EndDate: tc.end})
			if f.Status != tc.status {
				t.Fatalf("expected status %s, got %s", tc.status, f.Status)
			}
			if f.Responses != 0 || f.Views != 0 {
				t.Fatalf("expected zero counters, got %d responses %d views", f.Responses, f.Views)
			}
			if f.CreatedDate != "2026-03-10" || f.LastModified != "2026-03-10" {
				t.Fatalf("unexpected dates: created %q modified %q", f.CreatedDate, f.LastModified)
			}
			wantScheduled := ""
			if tc.status == StatusUpcoming {
				wantScheduled = tc.start
			}
			if f.ScheduledDate != wantScheduled {
				t.Fatalf("expected scheduled date %q, got %q", wantScheduled, f.ScheduledDate)
			}
		})
	}
}

func TestAddFormBoundariesAreLive(t *testing.T) {
	s := newTestStore()
	now := fixedNow.Format(time.RFC3339)

	if got := s.AddForm(Draft{StartDate: now, EndDate: day(1)}).Status; got != StatusLive {
		t.Fatalf("start == now: expected live, got %s", got)
	}
	if got := s.AddForm(Draft{StartDate: day(-1), EndDate: now}).Status; got != StatusLive {
		t.Fatalf("end == now: expected live, got %s", got)
	}
}

func TestAddFormGeneratesDistinctIDs(t *testing.T) {
	s := NewStore()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		f := s.AddForm(Draft{Title: "rapid"})
		if seen[f.ID] {
			t.Fatalf("duplicate id %s", f.ID)
		}
		seen[f.ID] = true
	}
}

func TestUpcomingThenExplicitLive(t *testing.T) {
	s := newTestStore()
	questions := []Question{NewQuestion(QuestionMCQ), NewQuestion(QuestionShort)}

	f := s.AddForm(Draft{
		Title:     "Launch survey",
		Category:  "Retail",
		StartDate: day(1),
		EndDate:   day(2),
		Questions: questions,
	})
	if f.Status != StatusUpcoming || f.ScheduledDate != day(1) {
		t.Fatalf("expected upcoming scheduled for %s, got %s / %q", day(1), f.Status, f.ScheduledDate)
	}

	live := StatusLive
	updated, ok := s.UpdateForm(f.ID, Patch{Status: &live})
	if !ok {
		t.Fatalf("expected update to succeed")
	}
	if updated.Status != StatusLive {
		t.Fatalf("expected live, got %s", updated.Status)
	}
	if updated.Title != "Launch survey" || updated.Category != "Retail" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
	if !reflect.DeepEqual(updated.Questions, questions) {
		t.Fatalf("questions changed: %+v", updated.Questions)
	}
}

func TestUpdateFormStampsLastModified(t *testing.T) {
	now := fixedNow
	s := newTestStore(WithClock(func() time.Time { return now }))
	f := s.AddForm(Draft{Title: "Old", Description: "keep me", Tags: []string{"a"}})

	now = fixedNow.AddDate(0, 0, 3)
	title := "New"
	updated, ok := s.UpdateForm(f.ID, Patch{Title: &title})
	if !ok {
		t.Fatalf("expected update to succeed")
	}

	if updated.LastModified != "2026-03-13" {
		t.Fatalf("expected lastModified 2026-03-13, got %q", updated.LastModified)
	}
	if updated.Title != "New" || updated.Description != "keep me" {
		t.Fatalf("unexpected title/description: %q / %q", updated.Title, updated.Description)
	}
	if !reflect.DeepEqual(updated.Tags, []string{"a"}) {
		t.Fatalf("tags changed: %v", updated.Tags)
	}
	if updated.CreatedDate != f.CreatedDate || updated.Status != f.Status {
		t.Fatalf("createdDate or status changed: %+v", updated)
	}
}

func TestUpdateFormDoesNotRecomputeStatus(t *testing.T) {
	s := newTestStore()
	f := s.AddForm(Draft{StartDate: day(1), EndDate: day(2)})

	start := day(-5)
	updated, ok := s.UpdateForm(f.ID, Patch{StartDate: &start})
	if !ok {
		t.Fatalf("expected update to succeed")
	}
	if updated.Status != StatusUpcoming {
		t.Fatalf("expected status to stay upcoming, got %s", updated.Status)
	}
}

func TestUpdateFormReplacesQuestionsWholesale(t *testing.T) {
	s := newTestStore()
	f := s.AddForm(Draft{Questions: []Question{NewQuestion(QuestionShort), NewQuestion(QuestionLong)}})

	replacement := []Question{NewQuestion(QuestionRating)}
	updated, ok := s.UpdateForm(f.ID, Patch{Questions: &replacement})
	if !ok {
		t.Fatalf("expected update to succeed")
	}
	if len(updated.Questions) != 1 || updated.Questions[0].Type != QuestionRating {
		t.Fatalf("expected a single rating question, got %+v", updated.Questions)
	}
}

func TestUpdateUnknownIDLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore()
	s.AddForm(Draft{Title: "A"})
	s.AddForm(Draft{Title: "B"})
	before := s.List()

	title := "X"
	if _, ok := s.UpdateForm("missing", Patch{Title: &title}); ok {
		t.Fatalf("expected update of unknown id to fail")
	}
	if !reflect.DeepEqual(before, s.List()) {
		t.Fatalf("store changed after failed update")
	}
}

func TestAdvanceStatusMovesForward(t *testing.T) {
	now := fixedNow
	s := newTestStore(WithClock(func() time.Time { return now }))
	f := s.AddForm(Draft{StartDate: day(1), EndDate: day(2)})

	now = fixedNow.AddDate(0, 0, 1)
	live, ok := s.AdvanceStatus(f.ID, StatusUpcoming, StatusLive)
	if !ok || live.Status != StatusLive {
		t.Fatalf("expected upcoming -> live, got %s (ok=%v)", live.Status, ok)
	}
	if live.LastModified != "2026-03-11" {
		t.Fatalf("expected lastModified 2026-03-11, got %q", live.LastModified)
	}

	closed, ok := s.AdvanceStatus(f.ID, StatusLive, StatusClosed)
	if !ok || closed.Status != StatusClosed {
		t.Fatalf("expected live -> closed, got %s (ok=%v)", closed.Status, ok)
	}

	other := s.AddForm(Draft{StartDate: day(1), EndDate: day(2)})
	if got, ok := s.AdvanceStatus(other.ID, StatusUpcoming, StatusClosed); !ok || got.Status != StatusClosed {
		t.Fatalf("expected upcoming -> closed, got %s (ok=%v)", got.Status, ok)
	}
}

func TestAdvanceStatusRefusesBackwardAndStaleMoves(t *testing.T) {
	s := newTestStore()
	f := s.AddForm(Draft{StartDate: day(1), EndDate: day(2)})

	live := StatusLive
	if _, ok := s.UpdateForm(f.ID, Patch{Status: &live}); !ok {
		t.Fatalf("expected explicit status update to succeed")
	}
	before := s.List()

	cases := []struct {
		name     string
		id       string
		from, to Status
	}{
		{"stale from", f.ID, StatusUpcoming, StatusLive},
		{"backward", f.ID, StatusLive, StatusUpcoming},
		{"same status", f.ID, StatusLive, StatusLive},
		{"from draft", f.ID, StatusDraft, StatusLive},
		{"to draft", f.ID, StatusLive, StatusDraft},
		{"unknown id", "missing", StatusUpcoming, StatusLive},
	}
	for _, tc := range cases {
		if _, ok := s.AdvanceStatus(tc.id, tc.from, tc.to); ok {
			t.Fatalf("%s: expected AdvanceStatus(%s -> %s) to be refused", tc.name, tc.from, tc.to)
		}
	}
	if !reflect.DeepEqual(before, s.List()) {
		t.Fatalf("store changed after refused moves")
	}
}

func TestDeleteForm(t *testing.T) {
	s := newTestStore()
	a := s.AddForm(Draft{Title: "A"})
	s.AddForm(Draft{Title: "B"})

	if s.DeleteForm("missing") {
		t.Fatalf("expected delete of unknown id to fail")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 forms, got %d", s.Len())
	}

	if !s.DeleteForm(a.ID) {
		t.Fatalf("expected delete to succeed")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 form, got %d", s.Len())
	}
	if _, ok := s.Get(a.ID); ok {
		t.Fatalf("deleted form still readable")
	}
}

func TestFormsByStatus(t *testing.T) {
	s := newTestStore()
	s.AddForm(Draft{Title: "draft"})
	s.AddForm(Draft{Title: "live", StartDate: day(-1), EndDate: day(1)})
	s.AddForm(Draft{Title: "live2", StartDate: day(-2), EndDate: day(2)})

	live := s.FormsByStatus(StatusLive)
	if len(live) != 2 || live[0].Title != "live" || live[1].Title != "live2" {
		t.Fatalf("unexpected live forms: %+v", live)
	}
	closed := s.FormsByStatus(StatusClosed)
	if closed == nil || len(closed) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", closed)
	}
}

func TestSubmitResponse(t *testing.T) {
	s := NewStore()
	f := s.AddForm(Draft{Title: "S"})
	before := time.Now()

	resp, ok := s.SubmitResponse(Submission{
		SurveyID:  f.ID,
		TimeTaken: 3,
		Responses: []AnswerRecord{{QuestionID: "q1", Answer: TextAnswer("hi")}},
	})
	if !ok {
		t.Fatalf("expected submit to succeed")
	}
	if resp.SurveyID != f.ID || resp.ID == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.SubmittedAt.Before(before.UTC().Truncate(time.Second)) {
		t.Fatalf("submittedAt %v is before the call", resp.SubmittedAt)
	}

	got, _ := s.Get(f.ID)
	if got.Responses != 1 || len(got.SurveyResponses) != 1 {
		t.Fatalf("expected one stored response, got %d / %d", got.Responses, len(got.SurveyResponses))
	}
	if got.SurveyResponses[0].ID != resp.ID {
		t.Fatalf("stored response id %q, want %q", got.SurveyResponses[0].ID, resp.ID)
	}
}

func TestSubmitResponseUnknownForm(t *testing.T) {
	s := newTestStore()
	s.AddForm(Draft{Title: "S"})
	before := s.List()

	if _, ok := s.SubmitResponse(Submission{SurveyID: "missing"}); ok {
		t.Fatalf("expected submit to unknown form to fail")
	}
	if !reflect.DeepEqual(before, s.List()) {
		t.Fatalf("store changed after failed submit")
	}
}

func TestSubmitCheckedUsesCurrentQuestions(t *testing.T) {
	s := newTestStore()
	f := s.AddForm(Draft{Title: "S", Questions: []Question{{ID: "name", Type: QuestionShort}}})

	replacement := []Question{{ID: "score", Type: QuestionRating, MaxRating: 5, Required: true}}
	if _, ok := s.UpdateForm(f.ID, Patch{Questions: &replacement}); !ok {
		t.Fatalf("expected update to succeed")
	}

	stale := Submission{SurveyID: f.ID, Responses: []AnswerRecord{{QuestionID: "name", Answer: TextAnswer("Ada")}}}
	_, ok, err := s.SubmitChecked(stale, ValidateSubmission)
	if !ok {
		t.Fatalf("expected form to be found")
	}
	if !errors.Is(err, ErrInvalidSubmission) {
		t.Fatalf("expected ErrInvalidSubmission, got %v", err)
	}
	if got, _ := s.Get(f.ID); got.Responses != 0 || len(got.SurveyResponses) != 0 {
		t.Fatalf("rejected submission was stored: %+v", got)
	}

	fresh := Submission{SurveyID: f.ID, Responses: []AnswerRecord{{QuestionID: "score", Answer: NumberAnswer(4)}}}
	resp, ok, err := s.SubmitChecked(fresh, ValidateSubmission)
	if !ok || err != nil {
		t.Fatalf("expected submit to succeed, got ok=%v err=%v", ok, err)
	}
	got, _ := s.Get(f.ID)
	if got.Responses != 1 || got.SurveyResponses[0].ID != resp.ID {
		t.Fatalf("expected the accepted response to be stored, got %+v", got)
	}
}

func TestSubmitCheckedUnknownForm(t *testing.T) {
	s := newTestStore()
	called := false
	check := func(Form, Submission) error {
		called = true
		return nil
	}
	if _, ok, err := s.SubmitChecked(Submission{SurveyID: "missing"}, check); ok || err != nil {
		t.Fatalf("expected not found, got ok=%v err=%v", ok, err)
	}
	if called {
		t.Fatalf("check must not run for an unknown form")
	}
}

func TestResponsesInSubmissionOrder(t *testing.T) {
	s := newTestStore()
	f := s.AddForm(Draft{Title: "S"})

	if rs := s.Responses(f.ID); rs == nil || len(rs) != 0 {
		t.Fatalf("expected empty non-nil responses, got %#v", rs)
	}
	if rs := s.Responses("missing"); len(rs) != 0 {
		t.Fatalf("expected no responses for unknown form, got %d", len(rs))
	}

	for i := 0; i < 5; i++ {
		s.SubmitResponse(Submission{SurveyID: f.ID, TimeTaken: i})
	}
	rs := s.Responses(f.ID)
	if len(rs) != 5 {
		t.Fatalf("expected 5 responses, got %d", len(rs))
	}
	for i, r := range rs {
		if r.TimeTaken != i {
			t.Fatalf("response %d out of order: timeTaken %d", i, r.TimeTaken)
		}
	}

	got, _ := s.Get(f.ID)
	if got.Responses != len(rs) {
		t.Fatalf("counter %d out of sync with %d responses", got.Responses, len(rs))
	}
}

func TestIncrementViews(t *testing.T) {
	s := newTestStore()
	f := s.AddForm(Draft{Title: "S"})

	views, ok := s.IncrementViews(f.ID)
	if !ok || views != 1 {
		t.Fatalf("expected 1 view, got %d (ok=%v)", views, ok)
	}
	if views, _ = s.IncrementViews(f.ID); views != 2 {
		t.Fatalf("expected 2 views, got %d", views)
	}
	if _, ok = s.IncrementViews("missing"); ok {
		t.Fatalf("expected increment of unknown id to fail")
	}
}

func TestReturnedFormsDoNotAliasStore(t *testing.T) {
	s := newTestStore()
	f := s.AddForm(Draft{Tags: []string{"a"}, Questions: []Question{NewQuestion(QuestionMCQ)}})

	f.Tags[0] = "mutated"
	f.Questions[0].Options[0].Text = "mutated"

	got, _ := s.Get(f.ID)
	if got.Tags[0] != "a" {
		t.Fatalf("tags aliased: %v", got.Tags)
	}
	if got.Questions[0].Options[0].Text != "Option 1" {
		t.Fatalf("options aliased: %+v", got.Questions[0].Options)
	}
}

func TestConcurrentSubmissionsKeepCounterInSync(t *testing.T) {
	s := NewStore()
	f := s.AddForm(Draft{Title: "busy"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.SubmitResponse(Submission{SurveyID: f.ID})
			s.IncrementViews(f.ID)
		}()
	}
	wg.Wait()

	got, _ := s.Get(f.ID)
	if got.Responses != 50 || len(got.SurveyResponses) != 50 || got.Views != 50 {
		t.Fatalf("expected 50/50/50, got %d responses %d stored %d views",
			got.Responses, len(got.SurveyResponses), got.Views)
	}
}

func TestSearch(t *testing.T) {
	s := newTestStore(WithForms(DemoForms()))

	counts := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"no filter", Filter{}, 6},
		{"all", Filter{Status: "all", Category: "all"}, 6},
		{"upcoming", Filter{Status: StatusUpcoming}, 2},
		{"retail", Filter{Category: "Retail"}, 1},
	}
	for _, c := range counts {
		if got := len(s.Search(c.filter)); got != c.want {
			t.Fatalf("%s: expected %d forms, got %d", c.name, c.want, got)
		}
	}

	byTag := s.Search(Filter{Query: "YOUTH"})
	if len(byTag) != 1 || byTag[0].ID != "5" {
		t.Fatalf("tag search: unexpected result %+v", byTag)
	}

	byDescription := s.Search(Filter{Query: "wellbeing"})
	if len(byDescription) != 1 || byDescription[0].ID != "4" {
		t.Fatalf("description search: unexpected result %+v", byDescription)
	}
}
