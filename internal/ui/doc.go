// Package ui is the Bubble Tea front end of the book review client.
//
// Core pieces:
//   - AppModel: the application shell. Owns a state.Store, routes keys and
//     result messages, and renders header, tabs, body and status line.
//   - View: a screen or major UI region with its own update and view
//     (BooksView, AddBookView, ReviewsView, ReviewForm).
//   - ReviewListView: a standalone read-only reviews screen for one book.
//   - KeybindRegistry / KeyHandler: SPC-leader and single-key bindings.
//   - FocusManager: tab order across form fields.
package ui
