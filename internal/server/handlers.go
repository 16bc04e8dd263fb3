package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/grid"
)

// appendRequest is the body for POST /board/tiles. Size is optional:
// zero values fall back to the default single-cell size.
type appendRequest struct {
	ID      string  `json:"id"`
	Content string  `json:"content"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// sizeRequest is the body for PUT /board/tiles/{id}/size.
type sizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// dropRequest is the body for POST /board/tiles/{id}/reorder: the pixel
// point where the drag was released.
type dropRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// heightResponse is the body for GET /board/height.
type heightResponse struct {
	Height float64 `json:"height"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot())
}

func (s *Server) handlePack(w http.ResponseWriter, r *http.Request) {
	b := s.commit("pack", "", r, s.eng.Pack)
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleHeight(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	h := s.eng.ContentHeight(s.items)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, heightResponse{Height: h})
}

func (s *Server) handleAppend(w http.ResponseWriter, r *http.Request) {
	var req appendRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := errors.ValidateItemID(req.ID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Width != 0 || req.Height != 0 {
		if err := errors.ValidateSize(req.Width, req.Height); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	b := s.commit("append", req.ID, r, func(items []*grid.Item) []*grid.Item {
		if grid.HasItem(items, req.ID) {
			// Duplicate appends are a replayed gesture: keep the board.
			return items
		}
		it := s.eng.NewItem(req.ID, req.Content)
		if req.Width != 0 {
			it.Width = req.Width
		}
		if req.Height != 0 {
			it.Height = req.Height
		}
		return s.eng.Append(items, it)
	})
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b := s.commit("remove", id, r, func(items []*grid.Item) []*grid.Item {
		return s.eng.Remove(items, id)
	})
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req sizeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := errors.ValidateSize(req.Width, req.Height); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	b := s.commit("resize", id, r, func(items []*grid.Item) []*grid.Item {
		return s.eng.Resize(items, id, req.Width, req.Height)
	})
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleReorder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dropRequest
	if !decodeBody(w, r, &req) {
		return
	}

	b := s.commit("reorder", id, r, func(items []*grid.Item) []*grid.Item {
		return s.eng.Reorder(items, id, req.X, req.Y)
	})
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleBringToFront(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b := s.commit("front", id, r, func(items []*grid.Item) []*grid.Item {
		return s.eng.BringToFront(items, id)
	})
	writeJSON(w, http.StatusOK, b)
}

// decodeBody decodes a JSON request body, writing a 400 and returning
// false on malformed input.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}
