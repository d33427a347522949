package deck

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPDF reads a PDF deck, treating each page as one slide with a single
// text run.
func ExtractPDF(path string) ([]Slide, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	defer f.Close()

	total := r.NumPage()
	if total == 0 {
		return nil, fmt.Errorf("%w: no pages found", ErrUnparsable)
	}

	slides := make([]Slide, 0, total)
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			slides = append(slides, Slide{})
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrUnparsable, i, err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			slides = append(slides, Slide{})
			continue
		}
		slides = append(slides, Slide{Texts: []string{text}})
	}
	return slides, nil
}
