package assets

import "sync"

// CountingSound is a Sound that only counts how often it was played.
type CountingSound struct {
	mu    sync.Mutex
	plays int
}

// Play records one play.
func (s *CountingSound) Play() {
	s.mu.Lock()
	s.plays++
	s.mu.Unlock()
}

// Plays returns the number of recorded plays.
func (s *CountingSound) Plays() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plays
}

// MemoryLoader is a Loader without audio output. It is used by headless
// sessions (tests, the SSH server) and records what was requested.
type MemoryLoader struct {
	mu     sync.Mutex
	sounds map[string]*CountingSound
	images map[string]int
}

// NewMemoryLoader creates an empty MemoryLoader.
func NewMemoryLoader() *MemoryLoader {
	return &MemoryLoader{
		sounds: make(map[string]*CountingSound),
		images: make(map[string]int),
	}
}

// LoadImage returns the same glyphs as Library.
func (m *MemoryLoader) LoadImage(path string) Image {
	m.mu.Lock()
	m.images[path]++
	m.mu.Unlock()

	if img, ok := images[imageKey(path)]; ok {
		return img
	}
	return unknownImage
}

// LoadSound returns the counting sound for path, creating it on first use.
func (m *MemoryLoader) LoadSound(path string) Sound {
	return m.Sound(path)
}

// Sound returns the counting sound registered for path.
func (m *MemoryLoader) Sound(path string) *CountingSound {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sounds[path]
	if !ok {
		s = &CountingSound{}
		m.sounds[path] = s
	}
	return s
}

// ImageLoads returns how many times an image path was requested.
func (m *MemoryLoader) ImageLoads(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.images[path]
}
