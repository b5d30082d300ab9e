package audio

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"gridsnake/internal/game"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Cue identifies a sound effect.
type Cue int

const (
	CueStart Cue = iota
	CueEat
	CueSpeedUp
	CueGameOver
)

// Player plays pre-generated cues. A nil *Player is silent.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	cues   map[Cue][]byte
}

// NewPlayer opens the audio device and renders every cue up front.
func NewPlayer(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	return &Player{
		ctx:    ctx,
		ready:  ready,
		volume: volume,
		cues:   Render(),
	}, nil
}

// Render synthesizes the PCM for every cue.
func Render() map[Cue][]byte {
	return map[Cue][]byte{
		CueStart:    genStart(),
		CueEat:      genEat(),
		CueSpeedUp:  genSpeedUp(),
		CueGameOver: genGameOver(),
	}
}

// Subscribe wires cues to game events.
func (p *Player) Subscribe(bus *game.EventBus) {
	bus.Subscribe(game.EventStarted, func(game.Event) { p.Play(CueStart) })
	bus.Subscribe(game.EventFruitEaten, func(game.Event) { p.Play(CueEat) })
	bus.Subscribe(game.EventSpeedUp, func(game.Event) { p.Play(CueSpeedUp) })
	bus.Subscribe(game.EventGameOver, func(game.Event) { p.Play(CueGameOver) })
}

// Play starts a cue and returns immediately. Cues requested before the
// device is ready are dropped.
func (p *Player) Play(cue Cue) {
	if p == nil {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	samples := p.cues[cue]
	if len(samples) == 0 {
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// genStart: crisp click + brief high tone.
func genStart() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		putStereoF32(buf, i, softSat(fm(t, freq, 1.0, 0.6)*env*0.38))
	}
	return buf
}

// genEat: short rising blip.
func genEat() []byte {
	n := int(0.08 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 520 + 480*p
		putStereoF32(buf, i, softSat(fm(t, freq, 2.0, 1.5*env)*env*0.4))
	}
	return buf
}

// genSpeedUp: quick ascending arpeggio.
func genSpeedUp() []byte {
	notes := []float64{440, 554.37, 659.25, 880}
	noteStep := int(0.06 * SampleRate)
	total := len(notes)*noteStep + int(0.15*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			env := adsr(float64(j)/float64(dur), 0.003, 0.65, 0.04, 0.28)
			mix[start+j] += fm(t, freq, 3.5, 5.5*env) * env * 0.25
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []byte {
	n := int(0.75 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
