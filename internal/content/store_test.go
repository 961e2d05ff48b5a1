// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestWriteAndRead(t *testing.T) {
	s := newTestStore(t)

	if err := s.Write("reuni-2026", "<p>Selamat datang peserta reuni</p>"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	doc, err := s.Read("reuni-2026")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if doc.Content != "<p>Selamat datang peserta reuni</p>" {
		t.Errorf("Content = %q", doc.Content)
	}
}

func TestWrite_ReplacesWholeDocument(t *testing.T) {
	s := newTestStore(t)

	if err := s.Write("reuni-2026", "first version"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Write("reuni-2026", "second version"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	doc, err := s.Read("reuni-2026")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if doc.Content != "second version" {
		t.Errorf("Content = %q, want full replacement", doc.Content)
	}
}

func TestWrite_SanitizesScript(t *testing.T) {
	s := newTestStore(t)

	if err := s.Write("reuni-2026", `<p>ok</p><script>alert(1)</script>`); err != nil {
		t.Fatalf("Write: %v", err)
	}

	doc, err := s.Read("reuni-2026")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if strings.Contains(doc.Content, "<script>") {
		t.Errorf("Content %q should not contain script tags", doc.Content)
	}
	if !strings.Contains(doc.Content, "<p>ok</p>") {
		t.Errorf("Content %q should keep safe markup", doc.Content)
	}
}

func TestRead_Missing(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Read("absent"); err == nil {
		t.Error("Read of missing document should error")
	}
}

func TestRead_Malformed(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := s.Read("broken"); err == nil {
		t.Error("Read of malformed document should error")
	}
}

func TestInvalidNames(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"", "../escape", "a/b", ".hidden"} {
		t.Run(name, func(t *testing.T) {
			if err := s.Write(name, "x"); err == nil {
				t.Errorf("Write(%q) should reject invalid name", name)
			}
			if _, err := s.Read(name); err == nil {
				t.Errorf("Read(%q) should reject invalid name", name)
			}
		})
	}
}
