// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content stores standalone page content as flat JSON documents on
// disk. Each document is a single {"content": "..."} blob read and written
// wholesale; there is no merge and no revision history.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/microcosm-cc/bluemonday"

	"alumni-go/internal/util"
)

// Document is the on-disk shape of a content blob.
type Document struct {
	Content string `json:"content"`
}

// Store reads and writes named content documents under a base directory.
type Store struct {
	dir       string
	sanitizer *bluemonday.Policy
}

// NewStore creates a content store rooted at dir. The directory is created
// if missing.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating content directory: %w", err)
	}
	return &Store{
		dir:       dir,
		sanitizer: bluemonday.UGCPolicy(),
	}, nil
}

// path resolves a document name to its file path. Names are restricted to
// slugs so a caller can never escape the base directory.
func (s *Store) path(name string) (string, error) {
	if !util.IsValidSlug(name) {
		return "", fmt.Errorf("invalid document name %q", name)
	}
	return filepath.Join(s.dir, name+".json"), nil
}

// Read returns the document with the given name.
func (s *Store) Read(name string) (Document, error) {
	var doc Document

	p, err := s.path(name)
	if err != nil {
		return doc, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return doc, fmt.Errorf("reading content %q: %w", name, err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parsing content %q: %w", name, err)
	}
	return doc, nil
}

// Write replaces the document with the given name. The content is sanitized
// and the file swapped in atomically (write to temp, then rename) so a
// failed write never leaves a truncated document behind.
func (s *Store) Write(name, content string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}

	doc := Document{Content: s.sanitizer.Sanitize(content)}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding content %q: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing content %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, p); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing content %q: %w", name, err)
	}
	return nil
}
