package render

import (
	"Conexoes/pkg/content"
	"Conexoes/pkg/dom"
	"Conexoes/pkg/screens"
	"Conexoes/pkg/state"

	"go.uber.org/zap"
)

// App bundles a store, a document with the root mounted, and a subscribed
// renderer.
type App struct {
	Store    *state.Store
	Doc      *dom.Document
	Renderer *Renderer
}

// NewApp builds an App seeded with initial and renders it once.
func NewApp(initial state.UIState, c content.Catalog, log *zap.SugaredLogger) *App {
	store := state.NewStore(initial, log)
	doc := dom.NewDocument(NewRoot())
	r := New(doc, store, screens.NewBuilder(store, c), log).Attach()
	r.Render()
	return &App{Store: store, Doc: doc, Renderer: r}
}

// Root returns the mounted root.
func (a *App) Root() *dom.Node {
	return a.Renderer.Root()
}
