// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"alumni-go/internal/imaging"
)

// Upload limits
const (
	MaxUploadSize    = 10 * 1024 * 1024 // 10MB
	DefaultUploadDir = "./uploads"
)

// SavedFile describes a stored upload.
type SavedFile struct {
	Filename   string `json:"filename"`
	PublicPath string `json:"path"`
	Size       int64  `json:"size"`
	MimeType   string `json:"mimeType"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
}

// MediaService stores uploaded images under the upload directory.
type MediaService struct {
	uploadDir string
}

// NewMediaService creates a media service rooted at uploadDir.
func NewMediaService(uploadDir string) *MediaService {
	if uploadDir == "" {
		uploadDir = DefaultUploadDir
	}
	return &MediaService{uploadDir: uploadDir}
}

// SaveImage validates, processes, and stores a single uploaded image under
// the given subdirectory. maxWidth > 0 scales wide images down. The
// returned public path is relative to the uploads mount (/uploads/...).
func (s *MediaService) SaveImage(file multipart.File, header *multipart.FileHeader, subdir string, maxWidth int) (*SavedFile, error) {
	if header.Size > MaxUploadSize {
		return nil, fmt.Errorf("file %s exceeds maximum size (%d bytes)", header.Filename, MaxUploadSize)
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload %s: %w", header.Filename, err)
	}
	if int64(len(data)) > MaxUploadSize {
		return nil, fmt.Errorf("file %s exceeds maximum size (%d bytes)", header.Filename, MaxUploadSize)
	}

	if imaging.DetectFormat(data) == "" {
		return nil, fmt.Errorf("file %s is not a supported image", header.Filename)
	}

	result, err := imaging.Process(data, maxWidth)
	if err != nil {
		return nil, fmt.Errorf("processing %s: %w", header.Filename, err)
	}

	filename := uniqueFilename(header.Filename, result.MimeType)

	dir := filepath.Join(s.uploadDir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}

	dest := filepath.Join(dir, filename)
	if err := os.WriteFile(dest, result.Data, 0644); err != nil {
		return nil, fmt.Errorf("storing %s: %w", header.Filename, err)
	}

	return &SavedFile{
		Filename:   filename,
		PublicPath: "/uploads/" + subdir + "/" + filename,
		Size:       int64(len(result.Data)),
		MimeType:   result.MimeType,
		Width:      result.Width,
		Height:     result.Height,
	}, nil
}

// SaveFavicon stores a favicon upload under the favicon subdirectory. ICO
// files are stored as-is since they cannot be re-encoded; any other upload
// must be a decodable image and is processed like a normal image.
func (s *MediaService) SaveFavicon(file multipart.File, header *multipart.FileHeader) (*SavedFile, error) {
	if header.Size > MaxUploadSize {
		return nil, fmt.Errorf("file %s exceeds maximum size (%d bytes)", header.Filename, MaxUploadSize)
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload %s: %w", header.Filename, err)
	}
	if int64(len(data)) > MaxUploadSize {
		return nil, fmt.Errorf("file %s exceeds maximum size (%d bytes)", header.Filename, MaxUploadSize)
	}

	if isIconContent(data) {
		filename := uniqueFilename(header.Filename, "image/x-icon")
		filename = strings.TrimSuffix(filename, ".bin") + ".ico"

		dir := filepath.Join(s.uploadDir, "favicon")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating upload directory: %w", err)
		}
		if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
			return nil, fmt.Errorf("storing %s: %w", header.Filename, err)
		}
		return &SavedFile{
			Filename:   filename,
			PublicPath: "/uploads/favicon/" + filename,
			Size:       int64(len(data)),
			MimeType:   "image/x-icon",
		}, nil
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding upload %s: %w", header.Filename, err)
	}
	return s.SaveImage(file, header, "favicon", 512)
}

// isIconContent sniffs for the ICO magic (00 00 01 00); the format is not
// recognized by http.DetectContentType. Extension alone is never trusted.
func isIconContent(data []byte) bool {
	return len(data) >= 4 && data[0] == 0 && data[1] == 0 && data[2] == 1 && data[3] == 0
}

// Remove deletes a previously saved file by its public path. Paths outside
// the uploads mount are rejected.
func (s *MediaService) Remove(publicPath string) error {
	rel, ok := strings.CutPrefix(publicPath, "/uploads/")
	if !ok || rel == "" || strings.Contains(rel, "..") {
		return fmt.Errorf("invalid upload path %q", publicPath)
	}
	return os.Remove(filepath.Join(s.uploadDir, filepath.FromSlash(rel)))
}

// uniqueFilename builds a collision-free name from the original filename,
// a timestamp, and a short UUID. The extension follows the stored MIME
// type, not the client-supplied name.
func uniqueFilename(original, mimeType string) string {
	base := sanitizeFilename(original)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = "upload"
	}
	if len(base) > 64 {
		base = base[:64]
	}

	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s-%d-%s%s", base, time.Now().UnixMilli(), suffix, extensionForMimeType(mimeType))
}

func sanitizeFilename(filename string) string {
	filename = filepath.Base(filename)

	replacer := strings.NewReplacer(
		" ", "-",
		"'", "",
		"\"", "",
		"<", "",
		">", "",
		"&", "",
		"#", "",
		"?", "",
		"%", "",
	)
	return strings.ToLower(replacer.Replace(filename))
}

func extensionForMimeType(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
