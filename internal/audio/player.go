package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// Player owns the speaker and a mixer that clips are added to.
// Until Init succeeds every Play is a silent no-op, so the game runs
// unchanged on machines without an audio device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether sound actually reaches the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a streamer on the mixer.
func (p *Player) Play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || s == nil {
		return
	}
	// The speaker goroutine pulls from the mixer concurrently.
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything that is still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Clip is a fully buffered sound that can be played any number of times.
type Clip struct {
	name   string
	player *Player
	buf    *beep.Buffer

	mu    sync.Mutex
	plays int
}

// Name returns the clip name (file name without extension).
func (c *Clip) Name() string {
	return c.name
}

// Len returns the clip length in samples.
func (c *Clip) Len() int {
	return c.buf.Len()
}

// Plays returns how many times Play was called.
func (c *Clip) Plays() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plays
}

// Play starts a new voice of the clip.
func (c *Clip) Play() {
	c.mu.Lock()
	c.plays++
	c.mu.Unlock()

	c.player.Play(c.buf.Streamer(0, c.buf.Len()))
}

// ClipName derives a clip name from an asset path: "assets/blop.wav" -> "blop".
func ClipName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load decodes a WAV file into a clip. When the file cannot be read or
// decoded it falls back to the synthesized effect of the same name; the
// returned error reports why the file was not used.
func (p *Player) Load(path string) (*Clip, error) {
	name := ClipName(path)
	clip, err := p.decode(path, name)
	if err == nil {
		return clip, nil
	}

	s := Synthesize(name)
	if s == nil {
		s = beep.Silence(0)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return &Clip{name: name, player: p, buf: buf}, err
}

func (p *Player) decode(path, name string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, stream)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return &Clip{name: name, player: p, buf: buf}, nil
}
