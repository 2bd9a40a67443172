package studysession

import "time"

// RoundResult is a single card outcome submitted by the client at the end
// of a round.
type RoundResult struct {
	FlashcardID int64
	IsCorrect   bool
}

// Session aggregates all recorded rounds for one study attempt. Round
// numbers are 1-based; resubmitting a round overwrites it.
type Session struct {
	ID        string
	Rounds    map[int][]RoundResult
	StartTime time.Time
}

// IncorrectIDs returns the flashcard ids answered incorrectly in the given
// results, preserving submission order.
func IncorrectIDs(results []RoundResult) []int64 {
	var ids []int64
	for _, r := range results {
		if !r.IsCorrect {
			ids = append(ids, r.FlashcardID)
		}
	}
	return ids
}
