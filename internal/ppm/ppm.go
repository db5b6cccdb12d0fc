// Package ppm writes framebuffers as binary PPM (P6) images.
package ppm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/raycaster/internal/framebuffer"
	"github.com/samdwyer/raycaster/internal/pixel"
	"github.com/samdwyer/raycaster/internal/telemetry"
)

// Encode writes fb as "P6\n{w} {h} \n255\n" followed by RGB triplets. Alpha is dropped.
func Encode(w io.Writer, fb *framebuffer.Framebuffer) error {
	if fb.Len() != fb.Width()*fb.Height() {
		return fmt.Errorf("framebuffer holds %d pixels, want %d", fb.Len(), fb.Width()*fb.Height())
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d \n255\n", fb.Width(), fb.Height()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	var rgb [3]byte
	for _, c := range fb.Pixels() {
		rgb[0], rgb[1], rgb[2], _ = pixel.Unpack(c)
		if _, err := bw.Write(rgb[:]); err != nil {
			return fmt.Errorf("failed to write pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write pixels: %w", err)
	}
	return nil
}

// WriteFile encodes fb into the file at path, replacing it if it exists.
func WriteFile(ctx context.Context, path string, fb *framebuffer.Framebuffer) (err error) {
	_, span := telemetry.Tracer("ppm").Start(ctx, "ppm.write")
	defer span.End()
	span.SetAttributes(
		attribute.String("ppm.path", path),
		attribute.Int("ppm.bytes", fb.Len()*3),
	)

	f, err := os.Create(path)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("couldn't create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("couldn't close %s: %w", path, cerr)
		}
	}()

	if err := Encode(f, fb); err != nil {
		span.RecordError(err)
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
