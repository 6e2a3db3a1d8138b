package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

type ImageModel struct {
	ID   string
	Name string
}

var imageModels = []ImageModel{
	{ID: "gemini-2.5-flash-image", Name: "Gemini 2.5 Flash Image"},
	{ID: "gemini-2.0-flash-preview-image-generation", Name: "Gemini 2.0 Flash Image Preview"},
}

func appSupportDir() (string, error) {
	if runtime.GOOS == "darwin" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if home == "" {
			return "", errors.New("home directory not found")
		}
		return filepath.Join(home, "Library", "Application Support", "Farmstead"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "farmstead"), nil
}

func Path() (string, error) {
	dir, err := appSupportDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func AvailableImageModels() []ImageModel {
	out := make([]ImageModel, len(imageModels))
	copy(out, imageModels)
	return out
}

func DefaultImageModel() string {
	if len(imageModels) == 0 {
		return ""
	}
	return imageModels[0].ID
}

// NormalizeImageModel falls back to the default for unknown ids.
func NormalizeImageModel(id string) string {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return DefaultImageModel()
	}
	for _, m := range imageModels {
		if m.ID == id {
			return id
		}
	}
	return DefaultImageModel()
}
