package registry

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/devfest-vale/workshop-enrollment/internal/models"
)

// TestRegisterInvariants is a property-based test using rapid. It drives
// random registration sequences against a small registry and checks,
// after every attempt, that no workshop exceeds its capacity, that a
// rejected registration changes nothing, and that the workshop and
// participant collections stay consistent with each other.
func TestRegisterInvariants(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		seats := rapid.IntRange(1, 4).Draw(r, "seats")
		reg := NewWithDefaults(seats)
		ref := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		numAttempts := rapid.IntRange(1, 40).Draw(r, "numAttempts")
		for i := 0; i < numAttempts; i++ {
			// Overlapping IDs provoke duplicate rejections; the bogus
			// title in the pool provokes unknown-workshop rejections.
			id := fmt.Sprintf("id-%d", rapid.IntRange(0, 25).Draw(r, "id"))
			titlePool := append([]string{"Fortran"}, DefaultWorkshopTitles...)
			count := rapid.IntRange(0, 4).Draw(r, "count")
			titles := make([]string, count)
			for j := range titles {
				titles[j] = rapid.SampledFrom(titlePool).Draw(r, "title")
			}

			year := rapid.IntRange(1960, 2020).Draw(r, "birthYear")
			p := &models.Participant{
				Name:       "P " + id,
				NationalID: id,
				Sex:        rapid.SampledFrom([]string{"Masculino", "Feminino", ""}).Draw(r, "sex"),
				BirthDate:  time.Date(year, 3, 15, 0, 0, 0, 0, time.UTC),
			}

			before := snapshot(reg)
			if err := reg.Register(p, titles, ref); err != nil {
				// Rejections must leave the registry untouched.
				if !reflect.DeepEqual(before, snapshot(reg)) {
					r.Fatalf("state changed on rejected registration: %v", err)
				}
			}

			checkInvariants(r, reg)
		}
	})
}

type registrySnapshot struct {
	workshops    map[string][]string
	participants []string
}

func snapshot(reg *Registry) registrySnapshot {
	snap := registrySnapshot{workshops: make(map[string][]string)}
	for title, w := range reg.Workshops() {
		snap.workshops[title] = w.Enrolled
	}
	for _, p := range reg.Participants() {
		snap.participants = append(snap.participants, p.NationalID)
	}
	return snap
}

func checkInvariants(r *rapid.T, reg *Registry) {
	workshops := reg.Workshops()
	participants := reg.Participants()

	byID := make(map[string]*models.Participant)
	for _, p := range participants {
		if _, dup := byID[p.NationalID]; dup {
			r.Fatalf("duplicate national ID registered: %q", p.NationalID)
		}
		byID[p.NationalID] = p
	}

	for title, w := range workshops {
		if w.Occupied() > w.MaxSeats {
			r.Fatalf("workshop %q over capacity: %d/%d", title, w.Occupied(), w.MaxSeats)
		}

		// Every enrolled ID resolves to a participant listing this title.
		for _, id := range w.Enrolled {
			p, ok := byID[id]
			if !ok {
				r.Fatalf("workshop %q holds unknown ID %q", title, id)
			}
			if !contains(p.Workshops, title) {
				r.Fatalf("workshop %q holds %q, but participant does not list it", title, id)
			}
		}
	}

	for _, p := range participants {
		if len(p.Workshops) < 1 || len(p.Workshops) > 3 {
			r.Fatalf("participant %q enrolled in %d workshops", p.NationalID, len(p.Workshops))
		}
		for _, title := range p.Workshops {
			if !contains(workshops[title].Enrolled, p.NationalID) {
				r.Fatalf("participant %q lists %q but is not enrolled there", p.NationalID, title)
			}
		}
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

// TestAgeBracketStatsSumTo100 checks that any workshop with at least one
// enrollee reports minor and adult percentages summing to exactly 100.
func TestAgeBracketStatsSumTo100(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		reg := NewWithDefaults(50)
		ref := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		n := rapid.IntRange(1, 30).Draw(r, "n")
		for i := 0; i < n; i++ {
			year := rapid.IntRange(1970, 2020).Draw(r, "birthYear")
			p := &models.Participant{
				Name:       fmt.Sprintf("P%d", i),
				NationalID: fmt.Sprintf("%d", i),
				BirthDate:  time.Date(year, 7, 20, 0, 0, 0, 0, time.UTC),
			}
			title := rapid.SampledFrom(DefaultWorkshopTitles).Draw(r, "title")
			if err := reg.Register(p, []string{title}, ref); err != nil {
				r.Fatalf("registration failed: %v", err)
			}
		}

		occupancy := reg.StatsByWorkshop()
		for title, brackets := range reg.StatsByAgeBracket(ref) {
			if occupancy[title] == 0 {
				continue
			}
			sum := brackets[models.BracketMinor.String()] + brackets[models.BracketAdult.String()]
			if sum != 100.0 {
				r.Fatalf("workshop %q: percentages sum to %v, want exactly 100", title, sum)
			}
		}
	})
}
