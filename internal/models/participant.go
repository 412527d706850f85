package models

import (
	"time"
)

// DateLayout is the day/month/year layout used everywhere a birth or
// reference date crosses a text boundary (participant file, CLI flags).
const DateLayout = "02/01/2006"

type Participant struct {
	Name       string
	NationalID string
	Sex        string
	BirthDate  time.Time
	// Workshops holds the titles the participant is enrolled in,
	// in enrollment order.
	Workshops []string
}

type Bracket int

const (
	BracketMinor Bracket = iota
	BracketAdult
)

func (b Bracket) String() string {
	if b == BracketMinor {
		return "Menor de Idade"
	}
	return "Maior de Idade"
}

// AgeBracket classifies the participant by whole-year age at ref.
// Under 18 is a minor; exactly 18 on ref counts as an adult.
func (p *Participant) AgeBracket(ref time.Time) Bracket {
	if p.ageAt(ref) < 18 {
		return BracketMinor
	}
	return BracketAdult
}

func (p *Participant) ageAt(ref time.Time) int {
	years := ref.Year() - p.BirthDate.Year()
	// Birthday not reached yet this year.
	anniversary := p.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(ref) {
		years--
	}
	return years
}
