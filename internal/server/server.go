// Package server exposes a tile board over HTTP for interactive clients.
//
// The server is one of the interaction layers the engine is designed to
// be driven by: it owns a single in-memory board, serializes every
// mutation commit behind a mutex (the engine itself provides no
// locking), and maps the engine's silent no-op policy onto plain 200
// responses so racing clients never see an error for a tile that
// disappeared mid-gesture.
package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridkit/pkg/board"
	"github.com/matzehuels/gridkit/pkg/grid"
	"github.com/matzehuels/gridkit/pkg/observability"
)

// Server holds the HTTP harness state: one board, one writer at a time.
type Server struct {
	logger *log.Logger
	eng    grid.Engine

	mu    sync.Mutex
	items []*grid.Item
}

// New creates a server around an initial (possibly empty) sequence. The
// sequence is repacked on startup so clients always observe packed
// state.
func New(logger *log.Logger, cfg grid.Config, items []*grid.Item) *Server {
	eng := grid.New(cfg)
	return &Server{
		logger: logger,
		eng:    eng,
		items:  eng.Pack(items),
	}
}

// Handler returns the routed HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

// snapshot returns the current board under the lock.
func (s *Server) snapshot() board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return board.FromItems(s.eng.Config(), s.items)
}

// commit runs a mutation against the current sequence under the lock
// and stores the result. It returns the new board and whether the
// mutation changed anything (the engine's identity contract makes this
// a length-and-pointer check, not a deep comparison).
func (s *Server) commit(op, itemID string, r *http.Request, fn func([]*grid.Item) []*grid.Item) board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	next := fn(s.items)
	changed := len(next) != len(s.items) || (len(next) > 0 && &next[0] != &s.items[0])
	s.items = next

	if changed {
		observability.Board().OnMutation(r.Context(), op, itemID)
		s.logger.Debug("committed mutation", "op", op, "item", itemID, "took", time.Since(start))
	} else {
		observability.Board().OnNoop(r.Context(), op, itemID)
		s.logger.Debug("mutation was a no-op", "op", op, "item", itemID)
	}
	return board.FromItems(s.eng.Config(), s.items)
}
