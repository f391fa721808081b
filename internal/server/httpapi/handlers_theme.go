package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/linkfolio/internal/server/theme"
)

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	t, err := s.theme.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleUpdateTheme(w http.ResponseWriter, r *http.Request) {
	var params theme.UpdateParams
	if err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}

	t, err := s.theme.Update(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}
