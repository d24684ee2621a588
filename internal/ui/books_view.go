package ui

import (
	"fmt"
	"strings"

	"bookreview/internal/api"
	"bookreview/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// bookItem implements list.Item for api.Book.
type bookItem struct {
	book  api.Book
	width int
}

func (b bookItem) FilterValue() string { return b.book.Title }
func (b bookItem) Title() string       { return textutil.Truncate(b.book.Title, b.width) }
func (b bookItem) Description() string {
	return textutil.Truncate("by "+b.book.Author, b.width) + "  " + Styles.Hint.Render("Enter to view reviews")
}

// BooksView lists the catalog as cards.
type BooksView struct {
	list  list.Model
	Books []api.Book
}

var _ View = (*BooksView)(nil)

// NewBooksView creates an empty list. Books arrive through SetBooks.
func NewBooksView() *BooksView {
	l := list.New(nil, NewBookListDelegate(), 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return &BooksView{list: l}
}

// SetBooks replaces the listed books, keeping the cursor when it is still in range.
func (v *BooksView) SetBooks(books []api.Book) {
	v.Books = books
	width := max(v.list.Width()-4, 10)
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = bookItem{book: b, width: width}
	}
	v.list.SetItems(items)
	if v.list.Index() >= len(books) && len(books) > 0 {
		v.list.Select(len(books) - 1)
	}
}

// SelectedBook returns the book under the cursor.
func (v *BooksView) SelectedBook() (api.Book, bool) {
	i := v.list.Index()
	if i < 0 || i >= len(v.Books) {
		return api.Book{}, false
	}
	return v.Books[i], true
}

// Init implements View.
func (v *BooksView) Init() tea.Cmd {
	return nil
}

// Update implements View. Enter is handled by the shell.
func (v *BooksView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.list.SetSize(msg.Width, max(msg.Height-chromeHeight, 4))
		v.SetBooks(v.Books)
		return v, nil
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *BooksView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Heading.Render(fmt.Sprintf("Books (%d)", len(v.Books))) + "\n\n")
	if len(v.Books) == 0 {
		b.WriteString(Styles.Empty.Render("No books available. Please add a new book."))
		return b.String()
	}
	b.WriteString(v.list.View())
	return b.String()
}
