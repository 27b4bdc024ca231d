package form

import "time"

type Stats struct {
	TotalForms       int            `json:"totalForms"`
	ActiveForms      int            `json:"activeForms"`
	LiveForms        int            `json:"liveForms"`
	UpcomingForms    int            `json:"upcomingForms"`
	TotalResponses   int            `json:"totalResponses"`
	TotalViews       int            `json:"totalViews"`
	CreatedThisMonth int            `json:"createdThisMonth"`
	ByStatus         map[Status]int `json:"byStatus"`
	ByCategory       map[string]int `json:"byCategory"`
}

// Stats aggregates the dashboard counters. Active means live or upcoming.
func (s *Store) Stats(now time.Time) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		ByStatus:   make(map[Status]int, len(Statuses)),
		ByCategory: make(map[string]int),
	}
	for _, status := range Statuses {
		st.ByStatus[status] = 0
	}

	year, month, _ := now.UTC().Date()
	for _, f := range s.forms {
		st.TotalForms++
		st.TotalResponses += f.Responses
		st.TotalViews += f.Views
		st.ByStatus[f.Status]++
		if f.Category != "" {
			st.ByCategory[f.Category]++
		}
		switch f.Status {
		case StatusLive:
			st.LiveForms++
			st.ActiveForms++
		case StatusUpcoming:
			st.UpcomingForms++
			st.ActiveForms++
		}
		if created, ok := ParseDate(f.CreatedDate); ok {
			y, m, _ := created.Date()
			if y == year && m == month {
				st.CreatedThisMonth++
			}
		}
	}
	return st
}
