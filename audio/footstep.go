package audio

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
	"github.com/lixenwraith/stride/core"
)

// FootstepLoop is a looping positional sound source attached to the character
// Playback rate is fixed and independent of how fast the body actually moves
type FootstepLoop struct {
	mu      sync.Mutex
	lock    sync.Locker
	buffer  *beep.Buffer
	rate    float64
	quality int
	base    float64
	falloff float64

	ctrl    *beep.Ctrl
	volume  *effects.Volume
	pan     *effects.Pan
	playing bool
}

// NewFootstepLoop builds the source chain: loop -> resample -> ctrl -> volume -> pan
// lock guards the chain against the speaker goroutine
func NewFootstepLoop(buf *beep.Buffer, rate float64, quality int, baseVolume, falloff float64, lock sync.Locker) *FootstepLoop {
	f := &FootstepLoop{
		lock:    lock,
		buffer:  buf,
		rate:    rate,
		quality: quality,
		base:    baseVolume,
		falloff: falloff,
	}
	f.ctrl = &beep.Ctrl{Streamer: f.newLoop(), Paused: true}
	f.volume = &effects.Volume{Streamer: f.ctrl, Base: 2, Volume: baseVolume}
	f.pan = &effects.Pan{Streamer: f.volume}
	return f
}

// Streamer returns the output of the source, to be mixed once
func (f *FootstepLoop) Streamer() beep.Streamer {
	return f.pan
}

// Play starts the loop from the top of the sample; no-op while already playing
func (f *FootstepLoop) Play() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.playing {
		return
	}

	f.lock.Lock()
	f.ctrl.Streamer = f.newLoop()
	f.ctrl.Paused = false
	f.lock.Unlock()

	f.playing = true
}

// Stop pauses the loop
func (f *FootstepLoop) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.playing {
		return
	}

	f.lock.Lock()
	f.ctrl.Paused = true
	f.lock.Unlock()

	f.playing = false
}

// Playing reports whether the loop is audible
func (f *FootstepLoop) Playing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.playing
}

// PlaybackRate returns the fixed speed multiplier
func (f *FootstepLoop) PlaybackRate() float64 {
	return f.rate
}

// Track positions the source relative to a listener at pos with right-hand axis right
func (f *FootstepLoop) Track(source core.WorldPoint, pos, right mgl64.Vec3) {
	pan, vol := Spatialize(source.Vec().Sub(pos), right, f.base, f.falloff)

	f.lock.Lock()
	f.pan.Pan = pan
	f.volume.Volume = vol
	f.lock.Unlock()
}

// Levels returns the current pan and volume
func (f *FootstepLoop) Levels() (pan, volume float64) {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.pan.Pan, f.volume.Volume
}

func (f *FootstepLoop) newLoop() beep.Streamer {
	loop := beep.Loop(-1, f.buffer.Streamer(0, f.buffer.Len()))
	return beep.ResampleRatio(f.quality, f.rate, loop)
}

// Spatialize derives stereo pan in [-1,1] and an exponential volume from a listener-relative offset
// Volume drops one step (half amplitude) per falloff distance doubling
func Spatialize(rel, right mgl64.Vec3, base, falloff float64) (pan, volume float64) {
	dist := rel.Len()
	if dist > 0 {
		pan = mgl64.Clamp(rel.Dot(right)/dist, -1, 1)
	}
	if falloff <= 0 {
		return pan, base
	}
	return pan, base - math.Log2(1+dist/falloff)
}

// DecodeWAV reads a WAV stream into a buffer at the target sample rate
func DecodeWAV(r io.Reader, target beep.SampleRate, quality int) (*beep.Buffer, error) {
	stream, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != target {
		src = beep.Resample(quality, format.SampleRate, target, stream)
	}

	out := beep.Format{SampleRate: target, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(out)
	buf.Append(src)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("decode wav: no samples")
	}
	return buf, nil
}
