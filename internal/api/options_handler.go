// internal/api/options_handler.go
package api

import "net/http"

// Option is one dropdown entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DifficultyOption carries the extra presentation hints the client uses
// for the difficulty selector.
type DifficultyOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type CountOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type OptionsResponse struct {
	Subjects         []Option           `json:"subjects"`
	ClassLevels      []Option           `json:"classLevels"`
	DifficultyLevels []DifficultyOption `json:"difficultyLevels"`
	QuestionCounts   []CountOption      `json:"questionCounts"`
}

var studyOptions = OptionsResponse{
	Subjects: []Option{
		{Value: "mathematics", Label: "Mathematics"},
		{Value: "science", Label: "Science"},
		{Value: "history", Label: "History"},
		{Value: "geography", Label: "Geography"},
		{Value: "literature", Label: "Literature"},
		{Value: "computer_science", Label: "Computer Science"},
	},
	ClassLevels: []Option{
		{Value: "1", Label: "1st Class"},
		{Value: "5", Label: "5th Class"},
		{Value: "9", Label: "9th Class"},
		{Value: "12", Label: "12th Class"},
		{Value: "college", Label: "College Level"},
	},
	DifficultyLevels: []DifficultyOption{
		{Value: "easy", Label: "Easy", Color: "success", Icon: "battery-quarter"},
		{Value: "medium", Label: "Medium", Color: "warning", Icon: "battery-half"},
		{Value: "hard", Label: "Hard", Color: "error", Icon: "battery-full"},
	},
	QuestionCounts: []CountOption{
		{Value: 5, Label: "5"},
		{Value: 10, Label: "10"},
		{Value: 15, Label: "15"},
	},
}

// GET /options
func (h *Handler) getOptions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, studyOptions)
}
