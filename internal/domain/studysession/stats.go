package studysession

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Shadab-Akram/FlashCard/internal/domain/flashcard"
)

// NoDifficultSubject is reported when a session has no incorrect answers,
// so no subject stood out.
const NoDifficultSubject = "None identified"

// RoundStats is the per-round slice of a session summary.
type RoundStats struct {
	Round    int `json:"round"`
	Total    int `json:"total"`
	Correct  int `json:"correct"`
	Accuracy int `json:"accuracy"`
}

// Stats summarizes a completed (or in-progress) session.
type Stats struct {
	TotalCards           int          `json:"totalCards"`
	CorrectCount         int          `json:"correctCount"`
	IncorrectCount       int          `json:"incorrectCount"`
	Accuracy             int          `json:"accuracy"`
	TimeSpent            string       `json:"timeSpent"`
	RoundResults         []RoundStats `json:"roundResults"`
	MostDifficultSubject string       `json:"mostDifficultSubject"`
}

// SubjectResolver looks up flashcards for subject attribution. Unknown ids
// must be dropped, not reported as errors.
type SubjectResolver func(ids []int64) []flashcard.Flashcard

// ComputeStats aggregates every recorded round of a session. It never
// fails: a session with no rounds yields zero counts, 0 accuracy, and the
// NoDifficultSubject sentinel. Apart from the elapsed-time component the
// output is identical for identical input.
func ComputeStats(sess *Session, now time.Time, resolve SubjectResolver) Stats {
	rounds := make([]int, 0, len(sess.Rounds))
	for n := range sess.Rounds {
		rounds = append(rounds, n)
	}
	sort.Ints(rounds)

	var (
		totalCards   int
		correctCount int
		perRound     = make([]RoundStats, 0, len(rounds))
		incorrectIDs []int64
	)

	for _, n := range rounds {
		results := sess.Rounds[n]
		roundCorrect := 0
		for _, r := range results {
			if r.IsCorrect {
				roundCorrect++
			} else {
				incorrectIDs = append(incorrectIDs, r.FlashcardID)
			}
		}
		totalCards += len(results)
		correctCount += roundCorrect
		perRound = append(perRound, RoundStats{
			Round:    n,
			Total:    len(results),
			Correct:  roundCorrect,
			Accuracy: percentage(roundCorrect, len(results)),
		})
	}

	return Stats{
		TotalCards:           totalCards,
		CorrectCount:         correctCount,
		IncorrectCount:       totalCards - correctCount,
		Accuracy:             percentage(correctCount, totalCards),
		TimeSpent:            formatElapsed(now.Sub(sess.StartTime)),
		RoundResults:         perRound,
		MostDifficultSubject: mostDifficultSubject(incorrectIDs, resolve),
	}
}

// percentage returns round(100*part/total), guarding empty input.
func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// formatElapsed renders a duration as "m:ss".
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// mostDifficultSubject counts every incorrect result against its card's
// subject and returns the subject with the highest count. Ids that no
// longer resolve are skipped. Ties keep the subject that first reached the
// winning count, which makes the result deterministic for a given session.
func mostDifficultSubject(incorrectIDs []int64, resolve SubjectResolver) string {
	if len(incorrectIDs) == 0 || resolve == nil {
		return NoDifficultSubject
	}

	subjects := make(map[int64]string)
	for _, card := range resolve(incorrectIDs) {
		subjects[card.ID] = card.Subject
	}

	counts := make(map[string]int)
	best := ""
	bestCount := 0
	for _, id := range incorrectIDs {
		subject, ok := subjects[id]
		if !ok {
			continue
		}
		counts[subject]++
		if counts[subject] > bestCount {
			best = subject
			bestCount = counts[subject]
		}
	}

	if best == "" {
		return NoDifficultSubject
	}
	return best
}
