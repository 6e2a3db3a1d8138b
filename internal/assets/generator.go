package assets

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrExternalService = errors.New("external service failure")

// AspectWide frames the map background.
const AspectWide = "16:9"

// ImageRequest describes one image. AspectRatio is "W:H"; empty leaves the
// framing to the model.
type ImageRequest struct {
	Prompt      string
	AspectRatio string
}

// Generator turns a request into an image reference the state can hold,
// normally a data URI.
type Generator interface {
	GenerateImage(ctx context.Context, req ImageRequest) (string, error)
}

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: missing api key", ErrExternalService)
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

func (g *GeminiGenerator) GenerateImage(ctx context.Context, req ImageRequest) (string, error) {
	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(promptText(req)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	if ref, ok := firstImage(resp); ok {
		return ref, nil
	}
	return "", fmt.Errorf("%w: response carried no image", ErrExternalService)
}

// promptText folds the aspect ratio into the prompt. GenerationConfig in this
// SDK version has no image framing field.
func promptText(req ImageRequest) string {
	if req.AspectRatio == "" {
		return req.Prompt
	}
	return req.Prompt + "\nAspect ratio " + req.AspectRatio + "."
}

func firstImage(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil {
		return "", false
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			blob, ok := part.(genai.Blob)
			if !ok || len(blob.Data) == 0 {
				continue
			}
			return dataURI(blob.MIMEType, blob.Data), true
		}
	}
	return "", false
}

func dataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
