package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/philipparndt/stlquote/pkg/mesh"
	"github.com/philipparndt/stlquote/pkg/pricing"
)

// ErrNoModel is returned when a quote is requested before a model was loaded
var ErrNoModel = errors.New("no model loaded")

// ErrEmptyModel is returned when the loaded model encloses no volume, such
// as an open surface or a file without triangles
var ErrEmptyModel = errors.New("model encloses no volume")

// LoadedModel is the model currently being quoted
type LoadedModel struct {
	Path   string
	Format mesh.Format
	Mesh   *mesh.Mesh
}

// Session holds at most one parsed model and the user's pricing selection.
// A model only replaces the previous one after it parsed successfully, so
// quotes are never computed from a partially parsed file.
type Session struct {
	parser     *mesh.Parser
	calculator *pricing.Calculator

	mu        sync.Mutex
	model     *LoadedModel
	selection pricing.Selection
}

// NewSession creates a session with the default selection
func NewSession(parser *mesh.Parser, calculator *pricing.Calculator) *Session {
	return &Session{
		parser:     parser,
		calculator: calculator,
		selection:  pricing.DefaultSelection(),
	}
}

// Model returns the loaded model, or nil
func (s *Session) Model() *LoadedModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

// Selection returns the current pricing selection
func (s *Session) Selection() pricing.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// SetSelection replaces the pricing selection. An invalid selection is
// rejected and the previous one kept.
func (s *Session) SetSelection(sel pricing.Selection) error {
	if err := sel.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = sel
	return nil
}

// Quote prices the loaded model with the current selection
func (s *Session) Quote() (pricing.Quote, error) {
	s.mu.Lock()
	model, sel := s.model, s.selection
	s.mu.Unlock()

	if model == nil {
		return pricing.Quote{}, ErrNoModel
	}
	if !(model.Mesh.Volume > 0) {
		return pricing.Quote{}, fmt.Errorf("%w: %s", ErrEmptyModel, model.Path)
	}
	return s.calculator.Calculate(model.Mesh.Volume, sel)
}
