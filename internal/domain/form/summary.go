package form

type OptionTally struct {
	OptionID   string  `json:"optionId"`
	Text       string  `json:"text"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type QuestionSummary struct {
	QuestionID    string        `json:"questionId"`
	Title         string        `json:"title"`
	Type          QuestionType  `json:"type"`
	Answered      int           `json:"answered"`
	Options       []OptionTally `json:"options,omitempty"`
	AverageRating *float64      `json:"averageRating,omitempty"`
}

type Summary struct {
	SurveyID         string            `json:"surveyId"`
	TotalResponses   int               `json:"totalResponses"`
	Views            int               `json:"views"`
	AverageTimeTaken float64           `json:"averageTimeTaken"`
	Questions        []QuestionSummary `json:"questions"`
}

// Summarize tallies answers per question. Options are matched by text for
// text and choice answers, and percentages are relative to the answer count.
func Summarize(f Form, responses []SurveyResponse) Summary {
	sum := Summary{
		SurveyID:       f.ID,
		TotalResponses: len(responses),
		Views:          f.Views,
		Questions:      make([]QuestionSummary, 0, len(f.Questions)),
	}

	answers := make(map[string][]Answer, len(f.Questions))
	var minutes int
	for _, r := range responses {
		minutes += r.TimeTaken
		for _, rec := range r.Responses {
			answers[rec.QuestionID] = append(answers[rec.QuestionID], rec.Answer)
		}
	}
	if len(responses) > 0 {
		sum.AverageTimeTaken = float64(minutes) / float64(len(responses))
	}

	for _, q := range f.Questions {
		qs := QuestionSummary{
			QuestionID: q.ID,
			Title:      q.Title,
			Type:       q.Type,
		}
		given := answers[q.ID]
		for _, a := range given {
			if a.Kind != AnswerNone {
				qs.Answered++
			}
		}

		switch {
		case q.Type.HasOptions():
			qs.Options = tallyOptions(q.Options, given, qs.Answered)
		case q.Type == QuestionRating:
			var total float64
			var n int
			for _, a := range given {
				if a.Kind == AnswerNumber {
					total += a.Number
					n++
				}
			}
			if n > 0 {
				avg := total / float64(n)
				qs.AverageRating = &avg
			}
		}
		sum.Questions = append(sum.Questions, qs)
	}
	return sum
}

func tallyOptions(opts []Option, given []Answer, answered int) []OptionTally {
	counts := make(map[string]int, len(opts))
	for _, a := range given {
		switch a.Kind {
		case AnswerText:
			counts[a.Text]++
		case AnswerChoices:
			for _, c := range a.Choices {
				counts[c]++
			}
		}
	}

	res := make([]OptionTally, 0, len(opts))
	for _, o := range opts {
		c := counts[o.Text]
		if o.ID != o.Text {
			c += counts[o.ID]
		}
		var p float64
		if answered > 0 {
			p = float64(c) * 100.0 / float64(answered)
		}
		res = append(res, OptionTally{
			OptionID:   o.ID,
			Text:       o.Text,
			Count:      c,
			Percentage: p,
		})
	}
	return res
}
