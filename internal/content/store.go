package content

import (
	"sync/atomic"
)

// Store serves the current catalog to concurrent renders and swaps it
// atomically on reload.
type Store struct {
	current atomic.Pointer[Catalog]
	path    string
}

// NewStore starts from the default catalog, overridden by path when set.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	s.current.Store(Default())

	if path != "" {
		if err := s.Reload(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Current returns the catalog in effect. Callers must not modify it.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Path returns the override file, or "".
func (s *Store) Path() string {
	return s.path
}

// Replace validates c and makes it current. An invalid catalog leaves the
// current one in place.
func (s *Store) Replace(c *Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.current.Store(c.Clone())
	return nil
}

// Reload re-reads the override file.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	cat, err := LoadFile(s.path)
	if err != nil {
		return err
	}
	s.current.Store(cat)
	return nil
}
