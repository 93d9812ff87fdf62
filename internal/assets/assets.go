// Package assets hands out drawable images and playable sounds by path.
// Game code only sees the Loader interface; the terminal has no bitmaps,
// so an image is a glyph and a color.
package assets

import (
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/MattiBlue123/Bricker-Game/internal/audio"
	"github.com/MattiBlue123/Bricker-Game/internal/core"
)

// Asset paths used by the game.
const (
	BrickImage      = "assets/brick.png"
	BallImage       = "assets/ball.png"
	PuckImage       = "assets/mockBall.png"
	PaddleImage     = "assets/paddle.png"
	HeartImage      = "assets/heart.png"
	WallImage       = "assets/wall.png"
	BackgroundImage = "assets/background.jpeg"

	BlopSound      = "assets/blop.wav"
	ExplosionSound = "assets/explosion.wav"
)

// Image is a drawable handle.
type Image struct {
	Glyph rune
	Color core.Color
}

// Sound is a playable handle.
type Sound interface {
	Play()
}

// Loader resolves asset paths to handles.
type Loader interface {
	LoadImage(path string) Image
	LoadSound(path string) Sound
}

var images = map[string]Image{
	"brick":      {Glyph: '▒', Color: core.ColorOrange},
	"ball":       {Glyph: '●', Color: core.ColorWhite},
	"mockBall":   {Glyph: '•', Color: core.ColorBrightCyan},
	"paddle":     {Glyph: '▀', Color: core.ColorCyan},
	"heart":      {Glyph: '♥', Color: core.ColorRed},
	"wall":       {Glyph: '░', Color: core.ColorGray},
	"background": {Glyph: ' ', Color: core.ColorDefault},
}

var unknownImage = Image{Glyph: '?', Color: core.ColorMagenta}

func imageKey(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// Library is the Loader used by real sessions. Sounds are loaded from a
// directory through the audio player and cached per path.
type Library struct {
	root   string
	player *audio.Player
	logger *log.Logger

	mu     sync.Mutex
	sounds map[string]*audio.Clip
}

// NewLibrary creates a library that resolves sound files relative to root.
func NewLibrary(root string, player *audio.Player, logger *log.Logger) *Library {
	if player == nil {
		player = audio.NewPlayer()
	}
	return &Library{
		root:   root,
		player: player,
		logger: logger,
		sounds: make(map[string]*audio.Clip),
	}
}

// LoadImage returns the glyph for an image path.
func (l *Library) LoadImage(path string) Image {
	if img, ok := images[imageKey(path)]; ok {
		return img
	}
	return unknownImage
}

// LoadSound returns a cached clip for a sound path. Missing files fall
// back to synthesized effects.
func (l *Library) LoadSound(path string) Sound {
	l.mu.Lock()
	defer l.mu.Unlock()

	if clip, ok := l.sounds[path]; ok {
		return clip
	}
	clip, err := l.player.Load(filepath.Join(l.root, path))
	if err != nil && l.logger != nil {
		l.logger.Debug("using synthesized sound", "path", path, "reason", err)
	}
	l.sounds[path] = clip
	return clip
}
