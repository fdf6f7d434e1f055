//go:build !headless

package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const deviceBuffer = 50 * time.Millisecond

// Player plays a Source on the default output device.
type Player struct {
	ctx     *oto.Context
	player  *oto.Player
	reader  *Reader
	started bool
	mu      sync.Mutex // only for setup/control operations
}

// New opens the output device for mono audio at sampleRate. Only one
// Player may exist per process.
func New(sampleRate int) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   deviceBuffer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}
	<-ready

	r := NewReader()
	return &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(r),
		reader: r,
	}, nil
}

// SetSource selects what the player renders.
func (p *Player) SetSource(src Source) {
	p.reader.SetSource(src)
}

// Start begins playback.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started && p.player != nil {
		p.player.Play()
		p.started = true
	}
}

// Stop pauses playback.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started && p.player != nil {
		p.player.Pause()
		p.started = false
	}
}

// Close stops playback and releases the device player.
func (p *Player) Close() error {
	p.Stop()
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.player == nil {
		return nil
	}
	err := p.player.Close()
	p.player = nil
	return err
}

// IsStarted reports whether playback is running.
func (p *Player) IsStarted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}
