package app

import (
	"fmt"
)

// LoadFile parses a .stl or .obj file and makes it the session's model.
// On failure the previously loaded model stays in place.
func (s *Session) LoadFile(path string) (*LoadedModel, error) {
	m, format, err := s.parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not parse file, check format: %w", err)
	}

	loaded := &LoadedModel{
		Path:   path,
		Format: format,
		Mesh:   m,
	}

	s.mu.Lock()
	s.model = loaded
	s.mu.Unlock()

	return loaded, nil
}
