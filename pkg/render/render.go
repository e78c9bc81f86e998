// Package render rebuilds the mounted element tree from the current state.
package render

import (
	"Conexoes/pkg/dom"
	"Conexoes/pkg/screens"
	"Conexoes/pkg/state"

	"go.uber.org/zap"
)

// RootID is the id of the container the app renders into.
const RootID = "app"

// Renderer tears down and rebuilds the root's children on every call.
type Renderer struct {
	doc     *dom.Document
	store   *state.Store
	builder *screens.Builder
	log     *zap.SugaredLogger
	passes  int
}

// New wires a renderer to doc and store. It does not subscribe itself; call
// Attach for that.
func New(doc *dom.Document, store *state.Store, builder *screens.Builder, log *zap.SugaredLogger) *Renderer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Renderer{doc: doc, store: store, builder: builder, log: log}
}

// Attach subscribes the renderer to the store so every SetState re-renders.
func (r *Renderer) Attach() *Renderer {
	r.store.Subscribe(r.Render)
	return r
}

// Render clears the root and appends the onboarding view or the main layout.
// A missing root makes it a no-op.
func (r *Renderer) Render() {
	root := r.doc.GetElementByID(RootID)
	if root == nil {
		r.log.Warnw("render skipped: mount point missing", "id", RootID)
		return
	}

	root.RemoveChildren()

	s := r.store.State()
	if !s.Authenticated {
		root.AppendChild(r.builder.Onboarding())
	} else {
		root.AppendChild(r.builder.MainLayout(s)...)
	}

	r.passes++
	r.log.Debugw("rendered", "pass", r.passes, "screen", s.Screen, "view", s.View, "authenticated", s.Authenticated)
}

// Passes reports how many renders reached the root.
func (r *Renderer) Passes() int {
	return r.passes
}

// Root returns the mounted root, or nil.
func (r *Renderer) Root() *dom.Node {
	return r.doc.GetElementByID(RootID)
}

// NewRoot creates an empty mount point with the expected id.
func NewRoot() *dom.Node {
	return dom.New("div").SetID(RootID)
}
