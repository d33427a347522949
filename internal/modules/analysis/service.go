package analysis

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// completionTimeout bounds the blocking completion call. Expiry is treated
// like any other model failure and lands in fallback mode B.
const completionTimeout = 60 * time.Second

// PlaceholderThesis is the input-independent fallback used when no usable
// credential is configured.
const PlaceholderThesis = "Investment Thesis (Placeholder):\n" +
	"The deck suggests a solution targeting a clear market need. Initial traction and " +
	"defined target market indicate potential for growth. Recommend continued validation " +
	"and iterative go-to-market based on presented metrics."

const fallbackHeader = "Investment Thesis (Fallback):\n"

const fallbackMaxChars = 600

// ErrEmptyText is the only unrecoverable analysis failure: missing input.
var ErrEmptyText = errors.New("text is required for analysis")

// Provenance records which branch produced a thesis.
type Provenance string

const (
	ProvenanceModel              Provenance = "model"
	ProvenanceFallbackCredential Provenance = "fallback-no-credential"
	ProvenanceFallbackModelError Provenance = "fallback-model-error"
)

// Result is a thesis narrative tagged with its provenance. The thesis is
// never empty.
type Result struct {
	Thesis     string
	Provenance Provenance
}

// Service turns extracted deck text into an investment thesis. Model
// failures never propagate; every branch yields a non-empty thesis.
type Service struct {
	completer  Completer
	credential string
	log        *zap.Logger
}

func NewService(completer Completer, credential string, log *zap.Logger) *Service {
	return &Service{completer: completer, credential: credential, log: log}
}

// Analyze runs the three-way branch: placeholder on missing/malformed
// credential, the model path on a valid one, and input truncation when the
// model call fails or returns nothing.
func (s *Service) Analyze(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	status := CheckCredential(s.credential)
	if status != CredentialValid {
		return &Result{Thesis: PlaceholderThesis, Provenance: ProvenanceFallbackCredential}, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	thesis, err := s.completer.Complete(callCtx, systemPrompt, buildPrompt(text))
	if err != nil || strings.TrimSpace(thesis) == "" {
		s.log.Warn("completion failed, using fallback thesis", zap.Error(err))
		return &Result{Thesis: fallbackThesis(text), Provenance: ProvenanceFallbackModelError}, nil
	}

	return &Result{Thesis: thesis, Provenance: ProvenanceModel}, nil
}

// fallbackThesis truncates the input to its first 600 characters and appends
// an ellipsis marker.
func fallbackThesis(text string) string {
	runes := []rune(text)
	if len(runes) > fallbackMaxChars {
		runes = runes[:fallbackMaxChars]
	}
	return fallbackHeader + string(runes) + "..."
}
