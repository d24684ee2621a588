package ui

// FocusManager tracks and rotates focus across form fields.
type FocusManager struct {
	Current  string   // ID of the currently focused field
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// NewFocusManager focuses the first ID in order and reports it through onChange.
func NewFocusManager(onChange func(from, to string), order ...string) *FocusManager {
	f := &FocusManager{Order: order, OnChange: onChange}
	if len(order) > 0 {
		f.SetFocus(order[0])
	}
	return f
}

// Next advances focus to the next field in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.move(1)
}

// Prev moves focus to the previous field in order.
func (f *FocusManager) Prev() string {
	return f.move(-1)
}

func (f *FocusManager) move(step int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := 0
	for i, id := range f.Order {
		if id == f.Current {
			idx = i
			break
		}
	}
	next := (idx + step + len(f.Order)) % len(f.Order)
	f.change(f.Order[next])
	return f.Current
}

// SetFocus sets focus to the given field ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.change(id)
			return true
		}
	}
	return false
}

// Is reports whether id currently has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

func (f *FocusManager) change(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
