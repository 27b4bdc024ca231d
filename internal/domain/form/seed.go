package form

// DemoForms returns the sample forms shown in demo mode.
func DemoForms() []Form {
	return []Form{
		{
			ID:           "1",
			Title:        "Customer Satisfaction Survey",
			Description:  "Comprehensive feedback collection for our latest product launch",
			Author:       "Sudhansu Kumar",
			Headline:     "Help us improve our service",
			StartDate:    "2024-01-15T09:00",
			EndDate:      "2024-02-15T18:00",
			Status:       StatusLive,
			Responses:    156,
			Views:        1240,
			CreatedDate:  "2024-01-15",
			LastModified: "2024-01-20",
			Category:     "Retail",
			Tags:         []string{"customer", "satisfaction", "feedback"},
			Questions:    []Question{},
		},
		{
			ID:            "2",
			Title:         "Product Feedback Form",
			Description:   "Quarterly customer satisfaction and loyalty assessment",
			Author:        "Sudhansu Kumar",
			Headline:      "Share your thoughts on our products",
			StartDate:     "2024-01-25T10:00",
			EndDate:       "2024-02-25T17:00",
			Status:        StatusUpcoming,
			Views:         45,
			CreatedDate:   "2024-01-10",
			LastModified:  "2024-01-18",
			Category:      "Technology",
			ScheduledDate: "2024-01-25",
			Tags:          []string{"product", "feedback", "development"},
			Questions:     []Question{},
		},
		{
			ID:           "3",
			Title:        "Brand Awareness Campaign Survey",
			Description:  "Measuring brand recognition and market positioning",
			Author:       "Sudhansu Kumar",
			Headline:     "How well do you know our brand?",
			StartDate:    "2023-12-01T08:00",
			EndDate:      "2024-01-05T20:00",
			Status:       StatusClosed,
			Responses:    892,
			Views:        3420,
			CreatedDate:  "2023-12-01",
			LastModified: "2024-01-05",
			Category:     "Marketing",
			Tags:         []string{"brand", "awareness", "marketing"},
			Questions:    []Question{},
		},
		{
			ID:           "4",
			Title:        "Employee Wellness Check",
			Description:  "Internal survey for employee satisfaction and wellbeing",
			Author:       "Sudhansu Kumar",
			Headline:     "Tell us about your workplace experience",
			StartDate:    "2024-01-30T09:00",
			EndDate:      "2024-02-28T17:00",
			Status:       StatusDraft,
			Views:        12,
			CreatedDate:  "2024-01-18",
			LastModified: "2024-01-19",
			Category:     "HR",
			Tags:         []string{"wellness", "internal", "hr"},
			Questions:    []Question{},
		},
		{
			ID:           "5",
			Title:        "Market Research - Fashion Trends",
			Description:  "Understanding youth preferences in fashion and lifestyle",
			Author:       "Sudhansu Kumar",
			Headline:     "What fashion trends interest you?",
			StartDate:    "2024-01-12T11:00",
			EndDate:      "2024-03-12T19:00",
			Status:       StatusLive,
			Responses:    234,
			Views:        890,
			CreatedDate:  "2024-01-12",
			LastModified: "2024-01-17",
			Category:     "Fashion & Lifestyle",
			Tags:         []string{"fashion", "trends", "youth"},
			Questions:    []Question{},
		},
		{
			ID:            "6",
			Title:         "Food Delivery Preferences",
			Description:   "Survey about food ordering habits and preferences",
			Author:        "Sudhansu Kumar",
			Headline:      "Share your food delivery preferences",
			StartDate:     "2024-01-28T12:00",
			EndDate:       "2024-02-28T22:00",
			Status:        StatusUpcoming,
			Views:         67,
			CreatedDate:   "2024-01-16",
			LastModified:  "2024-01-19",
			Category:      "Food & Beverages",
			ScheduledDate: "2024-01-28",
			Tags:          []string{"food", "delivery", "preferences"},
			Questions:     []Question{},
		},
	}
}
