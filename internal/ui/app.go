package ui

import (
	"log/slog"
	"strconv"
	"strings"

	"bookreview/internal/state"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeHeight is the number of lines taken by header, tabs and footer.
const chromeHeight = 9

// AppModel is the application shell. It owns the store and the three tab
// views, and is the only place store operations are called from.
type AppModel struct {
	Store      *state.Store
	Books      *BooksView
	AddBook    *AddBookView
	Reviews    *ReviewsView
	KeyHandler *KeyHandler

	// Status is a one-line message under the body (e.g. "Add book failed").
	Status        string
	StatusIsError bool

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the shell over client in books mode.
func NewAppModel(client state.BookAPI, logger *slog.Logger) *AppModel {
	store := state.NewStore(client, logger)
	return &AppModel{
		Store:      store,
		Books:      NewBooksView(),
		AddBook:    NewAddBookView(),
		Reviews:    NewReviewsView(store),
		KeyHandler: NewKeyHandler(newKeybindRegistry()),
	}
}

func newKeybindRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	for i, m := range state.Modes {
		reg.BindWithDesc(strconv.Itoa(i+1), switchMode(m), m.Title())
	}
	reg.BindWithDesc("SPC t b", switchMode(state.ModeBooks), state.ModeBooks.Title())
	reg.BindWithDesc("SPC t a", switchMode(state.ModeAddBook), state.ModeAddBook.Title())
	reg.BindWithDesc("SPC t r", switchMode(state.ModeReviews), state.ModeReviews.Title())
	reg.Bind("tab", send(CycleTabMsg{Step: 1}))
	reg.Bind("shift+tab", send(CycleTabMsg{Step: -1}))
	reg.BindWithDesc("r", send(RefreshMsg{}), "Refresh")
	reg.BindWithDesc("SPC g", send(RefreshMsg{}), "Refresh")
	reg.BindWithDescForMode("a", send(ToggleReviewFormMsg{}), "Review form", state.ModeReviews)
	reg.BindWithDescForMode("SPC n", send(ToggleReviewFormMsg{}), "Review form", state.ModeReviews)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model: the initial book fetch.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Store.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Books.Update(msg)
		a.Reviews.Update(msg)
		return a, nil
	case state.BooksLoadedMsg, state.ReviewsLoadedMsg, state.BookCreatedMsg, state.ReviewCreatedMsg:
		return a, a.handleResult(msg)
	case SwitchModeMsg:
		return a, a.handleSwitchMode(msg.Mode)
	case CycleTabMsg:
		return a, a.handleCycleTab(msg.Step)
	case SelectBookMsg:
		return a, a.handleSelectBook(msg)
	case SubmitBookMsg:
		return a, a.Store.CreateBook()
	case SubmitReviewMsg:
		return a, a.Store.CreateReview()
	case ToggleReviewFormMsg:
		return a, a.handleToggleReviewForm()
	case RefreshMsg:
		return a, a.handleRefresh()
	case spinner.TickMsg:
		_, cmd := a.Reviews.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}
	return a, a.updateCurrentView(msg)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("📚 Book Review Service") + "\n")
	b.WriteString(Styles.Tagline.Render("Discover, review, and share your favorite books") + "\n\n")
	b.WriteString(renderTabs(a.Store.Mode) + "\n\n")
	b.WriteString(a.currentView().View() + "\n")
	if a.Status != "" {
		style := Styles.Status
		if a.StatusIsError {
			style = Styles.StatusErr
		}
		b.WriteString("\n" + style.Render(a.Status) + "\n")
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString(RenderKeybindHelp(a.KeyHandler, a.Store.Mode))
	} else {
		b.WriteString("\n" + Styles.Hint.Render(footerHint(a.Store.Mode, a.editing())))
	}
	return b.String()
}

func (a *AppModel) currentView() View {
	switch a.Store.Mode {
	case state.ModeAddBook:
		return a.AddBook
	case state.ModeReviews:
		return a.Reviews
	default:
		return a.Books
	}
}

func (a *AppModel) updateCurrentView(msg tea.Msg) tea.Cmd {
	_, cmd := a.currentView().Update(msg)
	return cmd
}

// editing reports whether keys belong to a form rather than to navigation.
func (a *AppModel) editing() bool {
	switch a.Store.Mode {
	case state.ModeAddBook:
		return true
	case state.ModeReviews:
		return a.Store.ShowReviewForm && a.Store.HasSelection()
	}
	return false
}

func renderTabs(active state.Mode) string {
	tabs := make([]string, 0, len(state.Modes))
	for i, m := range state.Modes {
		label := strconv.Itoa(i+1) + " " + m.Title()
		if m == active {
			tabs = append(tabs, Styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, Styles.TabInactive.Render(label))
		}
	}
	return strings.Join(tabs, Styles.Muted.Render("│"))
}

func footerHint(mode state.Mode, editing bool) string {
	switch {
	case editing:
		return "ctrl+c: quit"
	case mode == state.ModeBooks:
		return "j/k: move  enter: view reviews  1-3: tabs  r: refresh  SPC: commands  q: quit"
	case mode == state.ModeReviews:
		return "a: review form  esc: back  1-3: tabs  r: refresh  SPC: commands  q: quit"
	default:
		return "1-3: tabs  SPC: commands  q: quit"
	}
}
