package ppm

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/raycaster/internal/framebuffer"
	"github.com/samdwyer/raycaster/internal/pixel"
)

func TestEncode(t *testing.T) {
	fb := framebuffer.New(2, 2)
	fb.Clear(pixel.Pack(1, 2, 3, 255))
	fb.SetPixel(1, 0, pixel.Pack(10, 20, 30, 0))
	fb.SetPixel(0, 1, pixel.Pack(255, 254, 253, 128))

	var buf bytes.Buffer
	if err := Encode(&buf, fb); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	want := append([]byte("P6\n2 2 \n255\n"),
		1, 2, 3,
		10, 20, 30,
		255, 254, 253,
		1, 2, 3,
	)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Encode() = %v, want %v", buf.Bytes(), want)
	}
}

func TestEncodeRequiresClearedBuffer(t *testing.T) {
	fb := framebuffer.New(3, 3)
	if err := Encode(&bytes.Buffer{}, fb); err == nil {
		t.Error("Encode() of an unallocated framebuffer should fail")
	}
}

func TestWriteFile(t *testing.T) {
	fb := framebuffer.New(4, 3)
	fb.Clear(pixel.White)

	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := WriteFile(context.Background(), path, fb); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	header := "P6\n4 3 \n255\n"
	if got, want := len(content), len(header)+4*3*3; got != want {
		t.Errorf("file size = %d, want %d", got, want)
	}
	if !bytes.HasPrefix(content, []byte(header)) {
		t.Errorf("header = %q, want %q", content[:len(header)], header)
	}
}

func TestWriteFileBadPath(t *testing.T) {
	fb := framebuffer.New(1, 1)
	fb.Clear(pixel.Black)

	path := filepath.Join(t.TempDir(), "missing", "out.ppm")
	if err := WriteFile(context.Background(), path, fb); err == nil {
		t.Error("WriteFile() into a missing directory should fail")
	}
}
