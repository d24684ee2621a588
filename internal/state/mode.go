package state

// Mode is the top-level view the application is displaying.
type Mode int

const (
	ModeBooks Mode = iota
	ModeAddBook
	ModeReviews
)

// Modes lists every mode in tab order.
var Modes = []Mode{ModeBooks, ModeAddBook, ModeReviews}

func (m Mode) String() string {
	switch m {
	case ModeBooks:
		return "books"
	case ModeAddBook:
		return "add-book"
	case ModeReviews:
		return "reviews"
	default:
		return "unknown"
	}
}

// Title is the tab label for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeBooks:
		return "Books"
	case ModeAddBook:
		return "Add Book"
	case ModeReviews:
		return "Reviews"
	default:
		return "Unknown"
	}
}
