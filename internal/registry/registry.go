// Package registry owns the in-memory enrollment model: the workshop
// collection keyed by title, the participant list in registration order,
// and every operation that reads or mutates them.
package registry

import (
	"strings"
	"sync"
	"time"

	"github.com/devfest-vale/workshop-enrollment/internal/models"
)

// DefaultWorkshopTitles is the fixed set created when no persisted state
// exists, in display order.
var DefaultWorkshopTitles = []string{
	"jQuery",
	"Arduino",
	"Desenvolvimento para Android",
	"Layout Responsivo com HTML5 e CSS3",
	"C++: Desenvolvimento para iOS",
	"Google Apps",
}

// Registry holds both collections. All operations take the mutex so the
// check-then-commit registration transaction stays atomic even if a
// future caller drives the registry from more than one goroutine.
type Registry struct {
	mu           sync.Mutex
	workshops    map[string]*models.Workshop
	participants []*models.Participant
}

// New adopts state produced by the storage adapters.
func New(workshops map[string]*models.Workshop, participants []*models.Participant) *Registry {
	if workshops == nil {
		workshops = make(map[string]*models.Workshop)
	}
	return &Registry{workshops: workshops, participants: participants}
}

// DefaultWorkshops builds the default workshop set, each with the given
// seat count and nobody enrolled. Callers that fall back to defaults for
// workshops alone pass the result to New together with whatever
// participants loaded independently.
func DefaultWorkshops(seats int) map[string]*models.Workshop {
	workshops := make(map[string]*models.Workshop, len(DefaultWorkshopTitles))
	for _, title := range DefaultWorkshopTitles {
		workshops[title] = models.NewWorkshop(title, seats)
	}
	return workshops
}

// NewWithDefaults builds an empty registry holding the default workshop set.
func NewWithDefaults(seats int) *Registry {
	return New(DefaultWorkshops(seats), nil)
}

// Register runs the enrollment transaction: every check happens before
// any write, so a rejection leaves both collections untouched.
func (r *Registry) Register(p *models.Participant, titles []string, ref time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.participants {
		if existing.NationalID == p.NationalID {
			return ErrDuplicateIdentity
		}
	}

	if len(titles) < 1 || len(titles) > 3 {
		return ErrInvalidSelectionSize
	}

	seen := make(map[string]bool, len(titles))
	for _, title := range titles {
		if seen[title] {
			return ErrDuplicateSelection
		}
		seen[title] = true

		w, ok := r.workshops[title]
		if !ok {
			return &UnknownWorkshopError{Title: title}
		}
		if w.IsFull() {
			return &WorkshopFullError{Title: title, MaxSeats: w.MaxSeats}
		}
	}

	// All checks passed; commit.
	for _, title := range titles {
		r.workshops[title].Enroll(p.NationalID)
		p.Workshops = append(p.Workshops, title)
	}
	r.participants = append(r.participants, p)

	return nil
}

// AvailableSeats reports remaining seats per workshop title.
func (r *Registry) AvailableSeats() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	seats := make(map[string]int, len(r.workshops))
	for title, w := range r.workshops {
		seats[title] = w.Available()
	}
	return seats
}

// EnrollmentSummary is the lookup result for a single participant.
type EnrollmentSummary struct {
	Name      string
	Sex       string
	Bracket   models.Bracket
	Workshops []string
}

// FindByIdentity looks a participant up by national ID. The second
// return value is false when nobody matches; that is an ordinary
// outcome, not an error.
func (r *Registry) FindByIdentity(nationalID string, ref time.Time) (*EnrollmentSummary, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.participants {
		if p.NationalID == nationalID {
			return &EnrollmentSummary{
				Name:      p.Name,
				Sex:       p.Sex,
				Bracket:   p.AgeBracket(ref),
				Workshops: append([]string(nil), p.Workshops...),
			}, true
		}
	}
	return nil, false
}

// MinorsIn lists the names of minors enrolled in the given workshop, in
// enrollment order. An unknown title yields an empty list.
func (r *Registry) MinorsIn(title string, ref time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	minors := []string{}
	w, ok := r.workshops[title]
	if !ok {
		return minors
	}

	for _, id := range w.Enrolled {
		p := r.findParticipant(id)
		if p != nil && p.AgeBracket(ref) == models.BracketMinor {
			minors = append(minors, p.Name)
		}
	}
	return minors
}

// StatsBySex reports the percentage of participants per sex. Only the
// two recognized categories get a percentage; anything else still counts
// toward the total. An empty registry yields an empty map.
func (r *Registry) StatsBySex() map[string]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := make(map[string]float64)
	total := len(r.participants)
	if total == 0 {
		return stats
	}

	var male, female int
	for _, p := range r.participants {
		switch {
		case strings.EqualFold(p.Sex, "Masculino"):
			male++
		case strings.EqualFold(p.Sex, "Feminino"):
			female++
		}
	}

	stats["Masculino"] = float64(male) / float64(total) * 100
	stats["Feminino"] = float64(female) / float64(total) * 100
	return stats
}

// StatsByWorkshop reports occupied seats per workshop title.
func (r *Registry) StatsByWorkshop() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := make(map[string]int, len(r.workshops))
	for title, w := range r.workshops {
		stats[title] = w.Occupied()
	}
	return stats
}

// StatsByAgeBracket reports, per workshop, the percentage of minors and
// adults among its enrollees. Empty workshops report 0.0 for both. The
// adult share is derived from the complementary count so the two always
// sum to exactly 100 when anyone is enrolled.
func (r *Registry) StatsByAgeBracket(ref time.Time) map[string]map[string]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := make(map[string]map[string]float64, len(r.workshops))
	for title, w := range r.workshops {
		total := len(w.Enrolled)
		if total == 0 {
			stats[title] = map[string]float64{
				models.BracketMinor.String(): 0.0,
				models.BracketAdult.String(): 0.0,
			}
			continue
		}

		var minors int
		for _, id := range w.Enrolled {
			p := r.findParticipant(id)
			if p != nil && p.AgeBracket(ref) == models.BracketMinor {
				minors++
			}
		}

		// The adult share is the complement of the minor share so the
		// pair sums to exactly 100, with no independent rounding.
		minorPct := float64(minors) / float64(total) * 100
		stats[title] = map[string]float64{
			models.BracketMinor.String(): minorPct,
			models.BracketAdult.String(): 100 - minorPct,
		}
	}
	return stats
}

// Workshops snapshots the workshop collection for the save boundary.
func (r *Registry) Workshops() map[string]*models.Workshop {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]*models.Workshop, len(r.workshops))
	for title, w := range r.workshops {
		cp := *w
		cp.Enrolled = append([]string(nil), w.Enrolled...)
		out[title] = &cp
	}
	return out
}

// Participants snapshots the participant list for the save boundary, in
// registration order.
func (r *Registry) Participants() []*models.Participant {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Participant, 0, len(r.participants))
	for _, p := range r.participants {
		cp := *p
		cp.Workshops = append([]string(nil), p.Workshops...)
		out = append(out, &cp)
	}
	return out
}

func (r *Registry) findParticipant(nationalID string) *models.Participant {
	for _, p := range r.participants {
		if p.NationalID == nationalID {
			return p
		}
	}
	return nil
}
