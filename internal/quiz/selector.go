package quiz

import (
	"math/rand"
	"sync"
	"time"

	"pathfinder-backend-V1.0/utilities"
)

// Question is a quiz question as served to a student, options already
// shuffled with the answer index pointing at the correct option's new slot.
type Question struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
}

// QuestionSet is one assembled quiz, ten questions per section.
type QuestionSet struct {
	Quantitative []Question `json:"quantitative"`
	Logical      []Question `json:"logical"`
	Verbal       []Question `json:"verbal"`
}

// AttemptRecord remembers which questions a student was shown and when.
type AttemptRecord struct {
	StudentID   string
	Timestamp   time.Time
	QuestionIDs []string
}

// AttemptStore keeps per-student attempt history in memory. All reads and
// writes go through a single mutex so concurrent quiz requests for the same
// student cannot interleave their exclusion checks and appends.
type AttemptStore struct {
	mu       sync.Mutex
	attempts map[string][]AttemptRecord
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{attempts: make(map[string][]AttemptRecord)}
}

// Selector assembles quizzes from a question source while avoiding questions
// the student has seen recently.
type Selector struct {
	source          QuestionSource
	store           *AttemptStore
	perSection      int
	exclusionWindow time.Duration
	retention       time.Duration
	now             func() time.Time
}

func NewSelector(source QuestionSource, store *AttemptStore, perSection, exclusionHours, retentionDays int) *Selector {
	if perSection <= 0 {
		perSection = 10
	}
	if exclusionHours <= 0 {
		exclusionHours = 24
	}
	if retentionDays <= 0 {
		retentionDays = 7
	}
	return &Selector{
		source:          source,
		store:           store,
		perSection:      perSection,
		exclusionWindow: time.Duration(exclusionHours) * time.Hour,
		retention:       time.Duration(retentionDays) * 24 * time.Hour,
		now:             time.Now,
	}
}

// Select assembles a quiz for the student. Questions shown to the same
// student within the exclusion window are avoided; if excluding them would
// leave fewer candidates than a full section needs, the exclusion is waived
// for that section rather than serving a short quiz.
func (s *Selector) Select(studentID, classLevel string) QuestionSet {
	// Sourcing may hit the network (generative source), so it happens
	// before the store lock is taken.
	pools := s.source.Questions(classLevel)

	now := s.now()
	rng := rand.New(rand.NewSource(now.UnixNano()))

	s.store.mu.Lock()
	s.prune(now)
	recent := s.recentIDs(studentID, now)

	quant := s.pickSection(pools.Quantitative, recent, rng)
	logical := s.pickSection(pools.Logical, recent, rng)
	verbal := s.pickSection(pools.Verbal, recent, rng)

	shown := make([]string, 0, len(quant)+len(logical)+len(verbal))
	for _, q := range quant {
		shown = append(shown, q.ID)
	}
	for _, q := range logical {
		shown = append(shown, q.ID)
	}
	for _, q := range verbal {
		shown = append(shown, q.ID)
	}
	s.store.attempts[studentID] = append(s.store.attempts[studentID], AttemptRecord{
		StudentID:   studentID,
		Timestamp:   now,
		QuestionIDs: shown,
	})
	s.store.mu.Unlock()

	return QuestionSet{
		Quantitative: presentSection(quant, rng),
		Logical:      presentSection(logical, rng),
		Verbal:       presentSection(verbal, rng),
	}
}

// ResetHistory drops all attempt records for the student.
func (s *Selector) ResetHistory(studentID string) {
	s.store.mu.Lock()
	delete(s.store.attempts, studentID)
	s.store.mu.Unlock()
}

// SetClock overrides the time source. Tests use this to step through the
// exclusion and retention windows.
func (s *Selector) SetClock(now func() time.Time) {
	s.now = now
}

// recentIDs collects question IDs shown to the student within the exclusion
// window. Caller holds the store lock.
func (s *Selector) recentIDs(studentID string, now time.Time) map[string]bool {
	cutoff := now.Add(-s.exclusionWindow)
	recent := make(map[string]bool)
	for _, rec := range s.store.attempts[studentID] {
		if rec.Timestamp.Before(cutoff) {
			continue
		}
		for _, id := range rec.QuestionIDs {
			recent[id] = true
		}
	}
	return recent
}

// prune drops attempt records older than the retention window for every
// student. Caller holds the store lock.
func (s *Selector) prune(now time.Time) {
	cutoff := now.Add(-s.retention)
	for id, recs := range s.store.attempts {
		kept := recs[:0]
		for _, rec := range recs {
			if !rec.Timestamp.Before(cutoff) {
				kept = append(kept, rec)
			}
		}
		if len(kept) == 0 {
			delete(s.store.attempts, id)
		} else {
			s.store.attempts[id] = kept
		}
	}
}

// pickSection draws perSection questions without replacement, preferring
// candidates the student has not seen recently.
func (s *Selector) pickSection(pool []QuestionBankEntry, recent map[string]bool, rng *rand.Rand) []QuestionBankEntry {
	candidates := make([]QuestionBankEntry, 0, len(pool))
	for _, q := range pool {
		if !recent[q.ID] {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) < s.perSection {
		utilities.Debug("Question pool too small after exclusion (%d left), falling back to full pool of %d", len(candidates), len(pool))
		candidates = append([]QuestionBankEntry(nil), pool...)
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > s.perSection {
		candidates = candidates[:s.perSection]
	}
	return candidates
}

// presentSection converts bank entries into served questions with shuffled
// options. The answer index is recomputed so it still points at the correct
// option after the shuffle.
func presentSection(entries []QuestionBankEntry, rng *rand.Rand) []Question {
	out := make([]Question, 0, len(entries))
	for _, e := range entries {
		opts := append([]string(nil), e.Options...)
		answer := e.AnswerIndex
		rng.Shuffle(len(opts), func(i, j int) {
			opts[i], opts[j] = opts[j], opts[i]
			switch answer {
			case i:
				answer = j
			case j:
				answer = i
			}
		})
		out = append(out, Question{
			ID:          e.ID,
			Question:    e.Question,
			Options:     opts,
			AnswerIndex: answer,
		})
	}
	return out
}
