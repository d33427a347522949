package deck

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrUnparsable marks a deck binary the extractor cannot read.
var ErrUnparsable = errors.New("deck is not parsable")

// Slide is one slide's text runs, in document order.
type Slide struct {
	Texts []string
}

var slidePathPattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// ExtractPPTX reads a .pptx file and returns its slides in deck order.
func ExtractPPTX(path string) ([]Slide, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	defer zr.Close()

	type numberedSlide struct {
		n    int
		file *zip.File
	}
	var files []numberedSlide
	for _, f := range zr.File {
		m := slidePathPattern.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		files = append(files, numberedSlide{n: n, file: f})
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no slides found", ErrUnparsable)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].n < files[j].n })

	slides := make([]Slide, 0, len(files))
	for _, nf := range files {
		texts, err := slideTexts(nf.file)
		if err != nil {
			return nil, fmt.Errorf("%w: slide %d: %v", ErrUnparsable, nf.n, err)
		}
		slides = append(slides, Slide{Texts: texts})
	}
	return slides, nil
}

// slideTexts pulls the <a:t> text runs out of one slide XML document.
func slideTexts(f *zip.File) ([]string, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	var texts []string
	var current strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "t" && inText {
				texts = append(texts, current.String())
				inText = false
			}
		}
	}
	return texts, nil
}

// Flatten joins text runs within a slide with a newline and slides with a
// blank line.
func Flatten(slides []Slide) string {
	parts := make([]string, len(slides))
	for i, s := range slides {
		parts[i] = strings.Join(s.Texts, "\n")
	}
	return strings.Join(parts, "\n\n")
}
