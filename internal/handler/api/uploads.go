// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"net/http"

	"alumni-go/internal/imaging"
	"alumni-go/internal/middleware"
	"alumni-go/internal/model"
	"alumni-go/internal/service"
)

// maxUploadRequestSize bounds the whole multipart request body.
const maxUploadRequestSize = 50 * 1024 * 1024 // 50MB

// UploadFavicon handles POST /api/upload/favicon. Exactly one file is
// expected; an invalid file aborts the whole request and nothing is stored.
func (h *Handler) UploadFavicon(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadRequestSize)
	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		WriteBadRequest(w, "Permintaan multipart tidak valid")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteBadRequest(w, "File tidak ditemukan pada permintaan")
		return
	}
	defer file.Close()

	saved, err := h.media.SaveFavicon(file, header)
	if err != nil {
		slog.Warn("favicon upload rejected", "filename", header.Filename, "error", err)
		WriteBadRequest(w, "File bukan gambar atau ikon yang valid")
		return
	}

	h.events.LogInfo(r.Context(), model.EventCategoryUpload, "Favicon diperbarui",
		middleware.GetUserIDPtr(r), map[string]any{"path": saved.PublicPath})

	WriteSuccess(w, "Favicon berhasil diunggah", saved)
}

type heroUploadResult struct {
	Uploaded []*service.SavedFile `json:"uploaded"`
	Skipped  []string             `json:"skipped,omitempty"`
}

// UploadHeroImages handles POST /api/upload/herohome. Multiple files are
// accepted; invalid files are skipped and reported back while the valid
// ones are stored, resized to the hero display width.
func (h *Handler) UploadHeroImages(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadRequestSize)
	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		WriteBadRequest(w, "Permintaan multipart tidak valid")
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		WriteBadRequest(w, "Tidak ada file pada permintaan")
		return
	}

	result := heroUploadResult{Uploaded: []*service.SavedFile{}}
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			result.Skipped = append(result.Skipped, header.Filename)
			continue
		}

		saved, err := h.media.SaveImage(file, header, "herohome", imaging.HeroMaxWidth)
		file.Close()
		if err != nil {
			slog.Warn("hero image skipped", "filename", header.Filename, "error", err)
			result.Skipped = append(result.Skipped, header.Filename)
			continue
		}
		result.Uploaded = append(result.Uploaded, saved)
	}

	if len(result.Uploaded) == 0 {
		WriteBadRequest(w, "Tidak ada file gambar yang valid")
		return
	}

	h.events.LogInfo(r.Context(), model.EventCategoryUpload, "Gambar hero diunggah",
		middleware.GetUserIDPtr(r), map[string]any{
			"uploaded": len(result.Uploaded),
			"skipped":  len(result.Skipped),
		})

	WriteSuccess(w, "Gambar berhasil diunggah", result)
}
