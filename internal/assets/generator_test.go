package assets

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestFirstImageSkipsTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{
				genai.Text("here is your barn"),
				genai.Blob{MIMEType: "image/jpeg", Data: []byte("barn")},
			}}},
		},
	}
	ref, ok := firstImage(resp)
	if !ok {
		t.Fatalf("expected an image")
	}
	if ref != "data:image/jpeg;base64,YmFybg==" {
		t.Fatalf("unexpected data uri %q", ref)
	}
}

func TestFirstImageEmptyResponse(t *testing.T) {
	if _, ok := firstImage(&genai.GenerateContentResponse{}); ok {
		t.Fatalf("expected no image")
	}
	if _, ok := firstImage(nil); ok {
		t.Fatalf("expected no image for nil response")
	}
}

func TestNewGeminiGeneratorNeedsKey(t *testing.T) {
	if _, err := NewGeminiGenerator(context.Background(), " ", "gemini-2.5-flash-image"); !errors.Is(err, ErrExternalService) {
		t.Fatalf("expected external service error, got %v", err)
	}
}

func TestPromptTextCarriesAspectRatio(t *testing.T) {
	got := promptText(ImageRequest{Prompt: "a barn", AspectRatio: AspectWide})
	if got != "a barn\nAspect ratio 16:9." {
		t.Fatalf("unexpected prompt %q", got)
	}
	if got := promptText(ImageRequest{Prompt: "a barn"}); got != "a barn" {
		t.Fatalf("expected prompt untouched without a ratio, got %q", got)
	}
}
