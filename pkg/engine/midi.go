package engine

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sinshu/go-meltysynth/meltysynth"

	"github.com/wqhan/jxscript/pkg/fileutil"
	"github.com/wqhan/jxscript/pkg/logger"
)

// sampleRate for MIDI synthesis.
const sampleRate = 44100

var (
	// ebiten allows exactly one audio context per process.
	globalAudioContext *audio.Context
	audioContextOnce   sync.Once
)

func getAudioContext() *audio.Context {
	audioContextOnce.Do(func() {
		globalAudioContext = audio.NewContext(sampleRate)
	})
	return globalAudioContext
}

// MusicPlayer renders MIDI files through a SoundFont into the ebiten audio
// pipeline. It backs the demo context's PlayMusic/StopMusic. Playback is
// non-blocking; Stop discards the current song.
type MusicPlayer struct {
	fsys fileutil.FileSystem
	log  *slog.Logger

	mu        sync.Mutex
	soundFont *meltysynth.SoundFont
	player    *audio.Player
	muted     bool
}

// NewMusicPlayer creates a player reading MIDI and SoundFont files from
// fsys.
func NewMusicPlayer(fsys fileutil.FileSystem) *MusicPlayer {
	return &MusicPlayer{fsys: fsys, log: logger.GetLogger()}
}

// SetMuted silences subsequent playback. Headless runs stay muted.
func (p *MusicPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	if p.player != nil {
		if muted {
			p.player.SetVolume(0)
		} else {
			p.player.SetVolume(1)
		}
	}
}

// LoadSoundFont loads the .sf2 file used for synthesis. Must be called
// before Play.
func (p *MusicPlayer) LoadSoundFont(name string) error {
	data, err := p.fsys.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read soundfont %s: %w", name, err)
	}
	sf, err := meltysynth.NewSoundFont(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse soundfont %s: %w", name, err)
	}

	p.mu.Lock()
	p.soundFont = sf
	p.mu.Unlock()
	p.log.Info("soundfont loaded", "name", name)
	return nil
}

// Play starts the named MIDI file, replacing any current song.
func (p *MusicPlayer) Play(name string, loop bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.soundFont == nil {
		return fmt.Errorf("no soundfont loaded")
	}

	data, err := p.fsys.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read midi %s: %w", name, err)
	}
	midiFile, err := meltysynth.NewMidiFile(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse midi %s: %w", name, err)
	}

	settings := meltysynth.NewSynthesizerSettings(sampleRate)
	synth, err := meltysynth.NewSynthesizer(p.soundFont, settings)
	if err != nil {
		return fmt.Errorf("failed to create synthesizer: %w", err)
	}
	sequencer := meltysynth.NewMidiFileSequencer(synth)
	sequencer.Play(midiFile, loop)

	if p.player != nil {
		p.player.Close()
	}
	player, err := getAudioContext().NewPlayer(&midiStream{sequencer: sequencer})
	if err != nil {
		return fmt.Errorf("failed to create audio player: %w", err)
	}
	if p.muted {
		player.SetVolume(0)
	}
	player.Play()
	p.player = player

	p.log.Info("music started", "name", name, "length", midiFile.GetLength(), "loop", loop)
	return nil
}

// Stop ends the current song, if any.
func (p *MusicPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.player != nil {
		p.player.Close()
		p.player = nil
		p.log.Info("music stopped")
	}
}

// IsPlaying reports whether a song is currently audible.
func (p *MusicPlayer) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.player != nil && p.player.IsPlaying()
}

// midiStream adapts the meltysynth sequencer to ebiten's 16-bit stereo LE
// stream format.
type midiStream struct {
	sequencer *meltysynth.MidiFileSequencer
	mu        sync.Mutex
}

func (s *midiStream) Read(buf []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	samples := len(buf) / 4
	left := make([]float32, samples)
	right := make([]float32, samples)
	s.sequencer.Render(left, right)

	for i := 0; i < samples; i++ {
		l := int16(clamp(left[i]) * 32767)
		r := int16(clamp(right[i]) * 32767)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(l))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(r))
	}
	return samples * 4, nil
}

func clamp(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
