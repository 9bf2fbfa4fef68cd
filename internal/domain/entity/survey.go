package entity

import "time"

// Survey is a poll with a fixed set of answers.
type Survey struct {
	ID       string
	Question string
	Answers  []SurveyAnswer
	Date     time.Time
}

type SurveyAnswer struct {
	Image  string
	Answer string
}

// AddSurveyInput is consumed by the add-survey use case.
type AddSurveyInput struct {
	Question string
	Answers  []SurveyAnswer
	Date     time.Time
}
