package gui

import (
	"errors"
	"testing"
)

func TestDecodeDataURI(t *testing.T) {
	ext, data, err := decodeDataURI("data:image/jpeg;base64,YmFybg==")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ext != ".jpg" || string(data) != "barn" {
		t.Fatalf("unexpected decode %q %q", ext, data)
	}
}

func TestDecodeDataURIRejectsPlainURLs(t *testing.T) {
	if _, _, err := decodeDataURI("https://example.com/barn.png"); !errors.Is(err, errNotDataURI) {
		t.Fatalf("expected rejection, got %v", err)
	}
}
