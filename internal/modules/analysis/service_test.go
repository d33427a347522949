package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type fakeCompleter struct {
	thesis    string
	err       error
	calls     int
	gotSystem string
	gotPrompt string
}

func (f *fakeCompleter) Complete(_ context.Context, system, prompt string) (string, error) {
	f.calls++
	f.gotSystem = system
	f.gotPrompt = prompt
	return f.thesis, f.err
}

func TestAnalyzeEmptyText(t *testing.T) {
	svc := NewService(&fakeCompleter{}, "xai-test", zap.NewNop())
	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Analyze(context.Background(), text); !errors.Is(err, ErrEmptyText) {
			t.Errorf("Analyze(%q) err = %v, want ErrEmptyText", text, err)
		}
	}
}

func TestAnalyzeMissingCredential(t *testing.T) {
	completer := &fakeCompleter{thesis: "should not be used"}
	svc := NewService(completer, "", zap.NewNop())

	result, err := svc.Analyze(context.Background(), "Market\n\nProblem: X")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Thesis != PlaceholderThesis {
		t.Errorf("Thesis = %q, want the placeholder", result.Thesis)
	}
	if result.Provenance != ProvenanceFallbackCredential {
		t.Errorf("Provenance = %q", result.Provenance)
	}
	if completer.calls != 0 {
		t.Errorf("completer called %d times without a credential", completer.calls)
	}
}

func TestAnalyzeMalformedCredential(t *testing.T) {
	completer := &fakeCompleter{thesis: "should not be used"}
	svc := NewService(completer, "sk-wrong-provider", zap.NewNop())

	result, err := svc.Analyze(context.Background(), "some deck text")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Thesis != PlaceholderThesis || result.Provenance != ProvenanceFallbackCredential {
		t.Errorf("got (%q, %q), want placeholder branch", result.Thesis, result.Provenance)
	}
	if completer.calls != 0 {
		t.Errorf("completer called %d times with a malformed credential", completer.calls)
	}
}

func TestAnalyzeModelSuccess(t *testing.T) {
	completer := &fakeCompleter{thesis: "A compelling thesis."}
	svc := NewService(completer, "xai-valid-key", zap.NewNop())

	result, err := svc.Analyze(context.Background(), "Market\n\nProblem: X")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Thesis != "A compelling thesis." {
		t.Errorf("Thesis = %q", result.Thesis)
	}
	if result.Provenance != ProvenanceModel {
		t.Errorf("Provenance = %q", result.Provenance)
	}
	if !strings.Contains(completer.gotPrompt, "Market\n\nProblem: X") {
		t.Errorf("prompt %q does not embed the deck text", completer.gotPrompt)
	}
	if completer.gotSystem == "" {
		t.Error("system prompt is empty")
	}
}

func TestAnalyzeModelErrorFallsBack(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("upstream 500")}
	svc := NewService(completer, "xai-valid-key", zap.NewNop())

	result, err := svc.Analyze(context.Background(), "short deck text")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := "Investment Thesis (Fallback):\nshort deck text..."
	if result.Thesis != want {
		t.Errorf("Thesis = %q, want %q", result.Thesis, want)
	}
	if result.Provenance != ProvenanceFallbackModelError {
		t.Errorf("Provenance = %q", result.Provenance)
	}
}

func TestAnalyzeModelEmptyCompletionFallsBack(t *testing.T) {
	completer := &fakeCompleter{thesis: "   "}
	svc := NewService(completer, "xai-valid-key", zap.NewNop())

	result, err := svc.Analyze(context.Background(), "short deck text")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Provenance != ProvenanceFallbackModelError {
		t.Errorf("Provenance = %q", result.Provenance)
	}
}

func TestAnalyzeFallbackTruncatesAtSixHundredRunes(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("timeout")}
	svc := NewService(completer, "xai-valid-key", zap.NewNop())

	// Multi-byte input checks the cut is by runes, not bytes.
	text := strings.Repeat("é", 700)
	result, err := svc.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := "Investment Thesis (Fallback):\n" + strings.Repeat("é", 600) + "..."
	if result.Thesis != want {
		t.Errorf("truncated thesis has %d runes, want %d",
			len([]rune(result.Thesis)), len([]rune(want)))
	}
}

func TestCheckCredential(t *testing.T) {
	cases := []struct {
		key  string
		want CredentialStatus
	}{
		{"", CredentialMissing},
		{"   ", CredentialMissing},
		{"sk-openai-style", CredentialMalformed},
		{"XAI-upper", CredentialMalformed},
		{"xai", CredentialMalformed},
		{"xai-", CredentialValid},
		{"xai-abc123", CredentialValid},
		{"  xai-abc123  ", CredentialValid},
	}
	for _, tc := range cases {
		if got := CheckCredential(tc.key); got != tc.want {
			t.Errorf("CheckCredential(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}
