package tui

// Deck is one pluggable dashboard panel. Decks are stateless renderers over
// the snapshot handed to them in ViewContext; all pipeline state lives on
// the dashboard model.
type Deck interface {
	ID() string
	Title() string
	Render(ctx ViewContext, width int, active bool) string
}
