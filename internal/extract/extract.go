package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"portfolio-web/internal/shared/storage/object"
)

// maxInspectBytes bounds how much of an object is buffered for parsing.
const maxInspectBytes = 32 << 20

var (
	// ErrNotPDF is returned when the payload does not start with a PDF header.
	ErrNotPDF = errors.New("not a pdf document")
	// ErrTooLarge is returned when the payload exceeds maxInspectBytes.
	ErrTooLarge = errors.New("document too large to inspect")
)

// Summary describes a parsed PDF document.
type Summary struct {
	Pages int
	Title string
}

// Inspect opens a stored object and summarises it as a PDF.
// Library used: github.com/ledongthuc/pdf.
func Inspect(ctx context.Context, store object.ObjectStore, storageKey string) (Summary, error) {
	obj, err := store.Open(ctx, storageKey)
	if err != nil {
		return Summary{}, fmt.Errorf("inspect key=%s: %w", storageKey, err)
	}
	defer obj.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(obj.Body, maxInspectBytes+1))
	if err != nil {
		return Summary{}, fmt.Errorf("inspect key=%s: read: %w", storageKey, err)
	}
	if len(raw) > maxInspectBytes {
		return Summary{}, fmt.Errorf("inspect key=%s: %w", storageKey, ErrTooLarge)
	}

	summary, err := InspectBytes(ctx, raw)
	if err != nil {
		return Summary{}, fmt.Errorf("inspect key=%s: %w", storageKey, err)
	}
	return summary, nil
}

// InspectBytes summarises an in-memory PDF payload.
func InspectBytes(ctx context.Context, data []byte) (summary Summary, err error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return Summary{}, ErrNotPDF
	}

	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if rec := recover(); rec != nil {
			summary = Summary{}
			err = fmt.Errorf("parse pdf: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Summary{}, fmt.Errorf("parse pdf: %w", err)
	}

	return Summary{
		Pages: reader.NumPage(),
		Title: strings.TrimSpace(reader.Trailer().Key("Info").Key("Title").Text()),
	}, nil
}
