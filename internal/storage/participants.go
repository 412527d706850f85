package storage

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/devfest-vale/workshop-enrollment/internal/models"
)

// ParticipantFile persists participants as one semicolon-delimited line
// per record: name;nationalId;sex;dd/mm/yyyy;title1,title2,...
// The trailing titles field is optional.
type ParticipantFile struct {
	Path string
}

// Load reads the participant file. A missing file yields an empty list.
// Malformed lines are skipped with a warning; the rest of the file still
// loads.
func (f *ParticipantFile) Load() ([]*models.Participant, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var participants []*models.Participant
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		p, err := parseLine(line)
		if err != nil {
			log.Printf("Skipping participant line %d: %v", lineNo, err)
			continue
		}
		participants = append(participants, p)
	}
	if err := scanner.Err(); err != nil {
		return participants, err
	}

	return participants, nil
}

func parseLine(line string) (*models.Participant, error) {
	parts := strings.Split(line, ";")
	if len(parts) < 4 {
		return nil, fmt.Errorf("expected at least 4 fields, got %d", len(parts))
	}

	birth, err := time.Parse(models.DateLayout, parts[3])
	if err != nil {
		return nil, fmt.Errorf("bad birth date %q: %w", parts[3], err)
	}

	p := &models.Participant{
		Name:       parts[0],
		NationalID: parts[1],
		Sex:        parts[2],
		BirthDate:  birth,
	}

	if len(parts) >= 5 && parts[4] != "" {
		p.Workshops = strings.Split(parts[4], ",")
	}

	return p, nil
}

// Save writes every participant back in the same line format,
// registration order preserved.
func (f *ParticipantFile) Save(participants []*models.Participant) error {
	file, err := os.Create(f.Path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, p := range participants {
		line := fmt.Sprintf("%s;%s;%s;%s;%s\n",
			p.Name,
			p.NationalID,
			p.Sex,
			p.BirthDate.Format(models.DateLayout),
			strings.Join(p.Workshops, ","),
		)
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	return w.Flush()
}
