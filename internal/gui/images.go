package gui

import (
	"encoding/base64"
	"errors"
	"strings"
)

var errNotDataURI = errors.New("not a base64 data uri")

// decodeDataURI splits a generated image reference into the file extension
// raylib expects and the raw bytes.
func decodeDataURI(ref string) (string, []byte, error) {
	header, payload, ok := strings.Cut(ref, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return "", nil, errNotDataURI
	}
	mime := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	ext := ".png"
	switch mime {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	case "image/webp":
		ext = ".webp"
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return ext, data, nil
}
