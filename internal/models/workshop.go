package models

type Workshop struct {
	Title    string
	MaxSeats int
	// Enrolled holds the national IDs of enrolled participants, in
	// enrollment order. Uniqueness is guaranteed by the registration
	// transaction, never by this type.
	Enrolled []string
}

func NewWorkshop(title string, maxSeats int) *Workshop {
	return &Workshop{Title: title, MaxSeats: maxSeats}
}

func (w *Workshop) Occupied() int {
	return len(w.Enrolled)
}

func (w *Workshop) Available() int {
	return w.MaxSeats - len(w.Enrolled)
}

func (w *Workshop) IsFull() bool {
	return len(w.Enrolled) >= w.MaxSeats
}

func (w *Workshop) Enroll(nationalID string) {
	w.Enrolled = append(w.Enrolled, nationalID)
}
