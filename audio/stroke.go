package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-turtle/vmath"
)

const (
	StrokeGapDuration = 30 * time.Millisecond

	strokeMinTone  = 60 * time.Millisecond
	strokeMaxTone  = 200 * time.Millisecond
	strokeToneStep = 5 * time.Millisecond // per unit of stroke length
	strokeAttack   = 5 * time.Millisecond
	strokeRelease  = 40 * time.Millisecond
	strokeBaseFreq = 220.0 // A3 for zero-length strokes
	strokeFreqStep = 40.0  // Hz per unit of stroke length
	strokeMaxFreq  = 1760.0
)

// Config carries the audio settings the stroke sounds need
type Config struct {
	SampleRate int
	Volume     float64
}

// StrokeFreq maps a stroke length to a tone frequency, longer strokes sound higher
func StrokeFreq(length float32) float64 {
	f := strokeBaseFreq + strokeFreqStep*float64(length)
	return min(max(f, strokeBaseFreq), strokeMaxFreq)
}

// ToneDuration maps a stroke length to how long its tone rings, longer strokes ring longer
func ToneDuration(length float32) time.Duration {
	if !(length > 0) {
		return strokeMinTone
	}
	d := strokeMinTone + time.Duration(float64(length)*float64(strokeToneStep))
	return min(d, strokeMaxTone)
}

// strokeTone is a sine wave with a linear attack and release baked in
// It ends on its own after total samples
type strokeTone struct {
	sr      beep.SampleRate
	freq    float64
	gain    float64
	pos     int
	total   int
	attack  int
	release int
}

func newStrokeTone(sr beep.SampleRate, length float32, gain float64) *strokeTone {
	total := sr.N(ToneDuration(length))
	return &strokeTone{
		sr:      sr,
		freq:    StrokeFreq(length),
		gain:    min(max(gain, 0), 1),
		total:   total,
		attack:  sr.N(strokeAttack),
		release: min(sr.N(strokeRelease), total),
	}
}

func (g *strokeTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		// Ramp in over attack, ramp out to zero at the last sample
		level := 1.0
		if g.attack > 0 && g.pos < g.attack {
			level = float64(g.pos) / float64(g.attack)
		}
		if left := g.total - g.pos; g.release > 0 && left <= g.release {
			level = min(level, float64(left-1)/float64(g.release))
		}

		sample := g.gain * level * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *strokeTone) Err() error { return nil }

// StrokeSound generates the shaped tone for one stroke
// Pitch and length both follow the stroke length, zero volume is silent
func StrokeSound(length float32, cfg Config) beep.Streamer {
	return newStrokeTone(beep.SampleRate(cfg.SampleRate), length, cfg.Volume)
}

// Recorder collects pen-down strokes and turns them into a tone sequence
// Record matches turtle.Turtle.OnStroke
type Recorder struct {
	cfg     Config
	lengths []float32
}

// NewRecorder creates an empty recorder
func NewRecorder(cfg Config) *Recorder {
	return &Recorder{cfg: cfg}
}

// Record stores one stroke
func (r *Recorder) Record(from, to vmath.Vec2) {
	r.lengths = append(r.lengths, to.Sub(from).Magnitude())
}

// Len returns the number of recorded strokes
func (r *Recorder) Len() int { return len(r.lengths) }

// Sequence returns one tone per stroke, each followed by a short gap
func (r *Recorder) Sequence() beep.Streamer {
	rate := beep.SampleRate(r.cfg.SampleRate)
	parts := make([]beep.Streamer, 0, 2*len(r.lengths))
	for _, l := range r.lengths {
		parts = append(parts, StrokeSound(l, r.cfg), beep.Silence(rate.N(StrokeGapDuration)))
	}
	return beep.Seq(parts...)
}

// Duration returns the total playback length of Sequence
func (r *Recorder) Duration() time.Duration {
	var d time.Duration
	for _, l := range r.lengths {
		d += ToneDuration(l) + StrokeGapDuration
	}
	return d
}
