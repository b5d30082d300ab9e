package audio

import (
	"io"
	"math"
	"testing"
)

func TestRenderCues(t *testing.T) {
	cues := Render()
	for _, cue := range []Cue{CueStart, CueEat, CueSpeedUp, CueGameOver} {
		buf := cues[cue]
		if len(buf) == 0 {
			t.Fatalf("cue %d is empty", cue)
		}
		if len(buf)%8 != 0 {
			t.Errorf("cue %d: %d bytes is not whole stereo float32 frames", cue, len(buf))
		}
		for i := 0; i < len(buf); i += 4 {
			bits := uint32(buf[i]) | uint32(buf[i+1])<<8 | uint32(buf[i+2])<<16 | uint32(buf[i+3])<<24
			v := math.Float32frombits(bits)
			if math.IsNaN(float64(v)) || v < -1 || v > 1 {
				t.Fatalf("cue %d: sample %d = %v out of range", cue, i/4, v)
			}
		}
	}
}

func TestSoundReaderDrains(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	p := make([]byte, 3)
	n, err := r.Read(p)
	if n != 3 || err != nil {
		t.Fatalf("first read = %d, %v", n, err)
	}
	n, err = r.Read(p)
	if n != 2 || err != nil {
		t.Fatalf("second read = %d, %v", n, err)
	}
	if _, err := r.Read(p); err != io.EOF {
		t.Fatalf("third read err = %v, want EOF", err)
	}
}

func TestADSR(t *testing.T) {
	tests := []struct {
		p, want float64
	}{
		{0, 0},
		{0.05, 0.5},
		{0.1, 1},
		{0.5, 0.5},
		{0.95, 0.25},
	}
	for _, tt := range tests {
		got := adsr(tt.p, 0.1, 0.2, 0.5, 0.1)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("adsr(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Play(CueEat)
}
