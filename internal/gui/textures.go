//go:build cgo

package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

type cachedTexture struct {
	ref string
	tex rl.Texture2D
	ok  bool
}

// textureCache keeps one GPU texture per slot and reloads it only when the
// image reference changes.
type textureCache struct {
	l     logrus.FieldLogger
	slots map[string]cachedTexture
}

func newTextureCache(l logrus.FieldLogger) *textureCache {
	return &textureCache{l: l, slots: map[string]cachedTexture{}}
}

func (c *textureCache) get(slot, ref string) (rl.Texture2D, bool) {
	if ref == "" {
		return rl.Texture2D{}, false
	}
	if cached, ok := c.slots[slot]; ok && cached.ref == ref {
		return cached.tex, cached.ok
	}
	c.unload(slot)

	entry := cachedTexture{ref: ref}
	ext, data, err := decodeDataURI(ref)
	if err != nil {
		c.l.WithError(err).WithField("slot", slot).Warn("Unable to decode image.")
		c.slots[slot] = entry
		return rl.Texture2D{}, false
	}
	img := rl.LoadImageFromMemory(ext, data, int32(len(data)))
	if img == nil || img.Width == 0 {
		c.l.WithField("slot", slot).Warn("Unable to load image.")
		c.slots[slot] = entry
		return rl.Texture2D{}, false
	}
	entry.tex = rl.LoadTextureFromImage(img)
	entry.ok = entry.tex.ID != 0
	rl.UnloadImage(img)
	c.slots[slot] = entry
	return entry.tex, entry.ok
}

func (c *textureCache) unload(slot string) {
	if cached, ok := c.slots[slot]; ok && cached.ok {
		rl.UnloadTexture(cached.tex)
	}
	delete(c.slots, slot)
}

func (c *textureCache) unloadAll() {
	for slot := range c.slots {
		c.unload(slot)
	}
}

func drawTextureFit(tex rl.Texture2D, dest rl.Rectangle) {
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	rl.DrawTexturePro(tex, src, dest, rl.Vector2{}, 0, rl.White)
}
