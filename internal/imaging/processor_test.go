// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testPNG returns an encoded PNG of the given width and height.
func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestProcess_KeepsSmallImage(t *testing.T) {
	data := testPNG(t, 100, 50)

	res, err := Process(data, 1920)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Width != 100 || res.Height != 50 {
		t.Errorf("dimensions = %dx%d, want 100x50", res.Width, res.Height)
	}
	if res.MimeType != "image/png" {
		t.Errorf("MimeType = %q, want image/png", res.MimeType)
	}
}

func TestProcess_ResizesWideImage(t *testing.T) {
	data := testPNG(t, 400, 200)

	res, err := Process(data, 200)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Width != 200 {
		t.Errorf("Width = %d, want 200", res.Width)
	}
	if res.Height != 100 {
		t.Errorf("Height = %d, want 100 (aspect preserved)", res.Height)
	}
}

func TestProcess_RejectsNonImage(t *testing.T) {
	if _, err := Process([]byte("definitely not an image"), 0); err == nil {
		t.Error("Process of non-image data should error")
	}
}

func TestDetectFormat(t *testing.T) {
	if got := DetectFormat(testPNG(t, 4, 4)); got != "png" {
		t.Errorf("DetectFormat(png) = %q", got)
	}
	if got := DetectFormat([]byte("plain text")); got != "" {
		t.Errorf("DetectFormat(text) = %q, want empty", got)
	}
}

func TestFormatToMimeType(t *testing.T) {
	tests := map[string]string{
		"jpeg":    "image/jpeg",
		"png":     "image/png",
		"gif":     "image/gif",
		"webp":    "image/webp",
		"unknown": "application/octet-stream",
	}
	for format, want := range tests {
		if got := FormatToMimeType(format); got != want {
			t.Errorf("FormatToMimeType(%q) = %q, want %q", format, got, want)
		}
	}
}
