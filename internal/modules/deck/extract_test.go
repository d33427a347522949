package deck

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildZip assembles an in-memory zip archive from the given entries.
func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// slideXML wraps text runs in the minimal PresentationML a slide part needs.
func slideXML(runs ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	b.WriteString(`<p:cSld><p:spTree>`)
	for _, run := range runs {
		b.WriteString(`<p:sp><p:txBody><a:p><a:r><a:t>`)
		b.WriteString(run)
		b.WriteString(`</a:t></a:r></a:p></p:txBody></p:sp>`)
	}
	b.WriteString(`</p:spTree></p:cSld></p:sld>`)
	return b.String()
}

func writeTempDeck(t *testing.T, name string, payload []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	return path
}

func TestExtractPPTXFlatten(t *testing.T) {
	payload := buildZip(t, map[string]string{
		"[Content_Types].xml":    `<?xml version="1.0"?><Types/>`,
		"ppt/slides/slide1.xml":  slideXML("Market"),
		"ppt/slides/slide2.xml":  slideXML("Problem: X"),
		"ppt/slides/slide3.xml":  slideXML("Solution: Y"),
		"ppt/notesSlides/n1.xml": slideXML("speaker notes, ignored"),
	})

	slides, err := ExtractPPTX(writeTempDeck(t, "pitch.pptx", payload))
	if err != nil {
		t.Fatalf("ExtractPPTX: %v", err)
	}
	if len(slides) != 3 {
		t.Fatalf("got %d slides, want 3", len(slides))
	}

	want := "Market\n\nProblem: X\n\nSolution: Y"
	if got := Flatten(slides); got != want {
		t.Errorf("Flatten = %q, want %q", got, want)
	}
}

func TestExtractPPTXNumericSlideOrder(t *testing.T) {
	// Lexicographic order would put slide10 between slide1 and slide2.
	payload := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml":  slideXML("first"),
		"ppt/slides/slide2.xml":  slideXML("second"),
		"ppt/slides/slide10.xml": slideXML("tenth"),
	})

	slides, err := ExtractPPTX(writeTempDeck(t, "pitch.pptx", payload))
	if err != nil {
		t.Fatalf("ExtractPPTX: %v", err)
	}

	want := "first\n\nsecond\n\ntenth"
	if got := Flatten(slides); got != want {
		t.Errorf("Flatten = %q, want %q", got, want)
	}
}

func TestExtractPPTXMultipleRunsPerSlide(t *testing.T) {
	payload := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml": slideXML("Title", "Subtitle"),
	})

	slides, err := ExtractPPTX(writeTempDeck(t, "pitch.pptx", payload))
	if err != nil {
		t.Fatalf("ExtractPPTX: %v", err)
	}
	if got := Flatten(slides); got != "Title\nSubtitle" {
		t.Errorf("Flatten = %q, want %q", got, "Title\nSubtitle")
	}
}

func TestExtractPPTXTextlessSlide(t *testing.T) {
	payload := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml": slideXML("before"),
		"ppt/slides/slide2.xml": slideXML(),
		"ppt/slides/slide3.xml": slideXML("after"),
	})

	slides, err := ExtractPPTX(writeTempDeck(t, "pitch.pptx", payload))
	if err != nil {
		t.Fatalf("ExtractPPTX: %v", err)
	}
	if got := Flatten(slides); got != "before\n\n\n\nafter" {
		t.Errorf("Flatten = %q, want %q", got, "before\n\n\n\nafter")
	}
}

func TestExtractPPTXNotAZip(t *testing.T) {
	path := writeTempDeck(t, "garbage.pptx", []byte("this is not a zip archive"))
	if _, err := ExtractPPTX(path); !errors.Is(err, ErrUnparsable) {
		t.Errorf("err = %v, want ErrUnparsable", err)
	}
}

func TestExtractPPTXNoSlides(t *testing.T) {
	payload := buildZip(t, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
	})
	path := writeTempDeck(t, "empty.pptx", payload)
	if _, err := ExtractPPTX(path); !errors.Is(err, ErrUnparsable) {
		t.Errorf("err = %v, want ErrUnparsable", err)
	}
}

func TestExtractPPTXMalformedSlideXML(t *testing.T) {
	payload := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml": "<p:sld><unclosed",
	})
	path := writeTempDeck(t, "broken.pptx", payload)
	if _, err := ExtractPPTX(path); !errors.Is(err, ErrUnparsable) {
		t.Errorf("err = %v, want ErrUnparsable", err)
	}
}

func TestFlattenEmpty(t *testing.T) {
	if got := Flatten(nil); got != "" {
		t.Errorf("Flatten(nil) = %q, want empty", got)
	}
}
