package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/linkfolio/internal/server/links"
)

func (s *Server) handleListLinks(w http.ResponseWriter, r *http.Request) {
	items, err := s.links.ListVisible(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateLink(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string `json:"title"`
		URL      string `json:"url"`
		Icon     string `json:"icon"`
		Order    int    `json:"order"`
		IsActive *bool  `json:"isActive"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	link, err := s.links.Create(r.Context(), links.CreateParams{
		Title:    req.Title,
		URL:      req.URL,
		Icon:     req.Icon,
		Order:    req.Order,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, link)
}

func (s *Server) handleUpdateLink(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    *string `json:"title"`
		URL      *string `json:"url"`
		Icon     *string `json:"icon"`
		Order    *int    `json:"order"`
		IsActive *bool   `json:"isActive"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	link, err := s.links.Update(r.Context(), r.PathValue("id"), links.UpdateParams{
		Title:    req.Title,
		URL:      req.URL,
		Icon:     req.Icon,
		Order:    req.Order,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, link)
}

func (s *Server) handleDeleteLink(w http.ResponseWriter, r *http.Request) {
	if err := s.links.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Link deleted successfully"})
}

// handleReorderLinks accepts the full ordering as a list of link ids; links
// absent from the list keep their stored order.
func (s *Server) handleReorderLinks(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Links []struct {
			ID string `json:"id"`
		} `json:"links"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	ids := make([]string, 0, len(req.Links))
	for _, l := range req.Links {
		ids = append(ids, l.ID)
	}

	reordered, err := s.links.Reorder(r.Context(), ids)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reordered)
}
