//go:build headless

package playback

import "sync"

// Player is a stand-in for builds without an audio device. It keeps the
// control surface of the device player but renders nothing.
type Player struct {
	reader  *Reader
	started bool
	mu      sync.Mutex
}

// New returns a silent player.
func New(sampleRate int) (*Player, error) {
	return &Player{reader: NewReader()}, nil
}

func (p *Player) SetSource(src Source) { p.reader.SetSource(src) }

func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = true
}

func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = false
}

func (p *Player) Close() error {
	p.Stop()
	return nil
}

func (p *Player) IsStarted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}
