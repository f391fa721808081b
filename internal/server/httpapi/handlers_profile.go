package httpapi

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/linkfolio/internal/common"
	"github.com/dmitrijs2005/linkfolio/internal/server/profile"
)

const maxUploadBytes = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var params profile.UpdateParams
	if err := decodeBody(r, &params); err != nil {
		writeError(w, err)
		return
	}

	p, err := s.profile.Update(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// handlePublicProfile serves another user's page data by username. The
// projection is narrower than the account's own view: no email, no hash.
func (s *Server) handlePublicProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"username": user.Username,
		"name":     user.Name,
		"bio":      user.Bio,
		"avatar":   user.Avatar,
	})
}

func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "Image exceeds the 5MB limit")
			return
		}
		writeMessage(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		writeMessage(w, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	suffix, err := common.MakeRandHexString(8)
	if err != nil {
		writeError(w, err)
		return
	}
	name := "profile-" + suffix + ext

	dst, err := os.Create(filepath.Join(s.uploadsDir, name))
	if err != nil {
		s.logger.Error(r.Context(), "upload destination create failed", "error", err)
		writeError(w, err)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		s.logger.Error(r.Context(), "upload write failed", "error", err)
		writeError(w, err)
		return
	}

	imageURL := "/uploads/" + name
	if _, err := s.profile.SetImageURL(r.Context(), imageURL); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"imageUrl": imageURL})
}
