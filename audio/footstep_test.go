package audio

import (
	"math"
	"os"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gopxl/beep"
	"github.com/lixenwraith/stride/core"
)

const testRate = beep.SampleRate(48000)

func testBuffer(n int) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2})
	tone := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{0.5, 0.5}
		}
		return len(samples), true
	})
	buf.Append(beep.Take(n, tone))
	return buf
}

func peak(s beep.Streamer, n int) float64 {
	samples := make([][2]float64, n)
	s.Stream(samples)
	m := 0.0
	for _, smp := range samples {
		m = math.Max(m, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
	}
	return m
}

// TestFootstepLoopStartsSilent verifies the source is paused until Play
func TestFootstepLoopStartsSilent(t *testing.T) {
	f := NewFootstepLoop(testBuffer(1000), 2.5, 4, 0, 200, &sync.Mutex{})

	if f.Playing() {
		t.Error("Expected loop stopped initially")
	}
	if p := peak(f.Streamer(), 512); p != 0 {
		t.Errorf("Expected silence while stopped, got peak %f", p)
	}
}

// TestFootstepLoopPlayStop verifies play produces sound, stop silences, and both are idempotent
func TestFootstepLoopPlayStop(t *testing.T) {
	f := NewFootstepLoop(testBuffer(1000), 2.5, 4, 0, 200, &sync.Mutex{})

	f.Play()
	f.Play()
	if !f.Playing() {
		t.Fatal("Expected loop playing")
	}
	// Longer than the buffer at 2.5x: the loop must keep producing
	if p := peak(f.Streamer(), 4096); p < 0.1 {
		t.Errorf("Expected audible output while playing, got peak %f", p)
	}

	f.Stop()
	f.Stop()
	if f.Playing() {
		t.Error("Expected loop stopped")
	}
	if p := peak(f.Streamer(), 512); p != 0 {
		t.Errorf("Expected silence after stop, got peak %f", p)
	}
}

// TestFootstepLoopRate verifies the fixed playback multiplier
func TestFootstepLoopRate(t *testing.T) {
	f := NewFootstepLoop(testBuffer(10), 2.5, 4, 0, 200, &sync.Mutex{})
	if f.PlaybackRate() != 2.5 {
		t.Errorf("Expected playback rate 2.5, got %f", f.PlaybackRate())
	}
}

// TestSpatialize verifies pan sign and distance attenuation
func TestSpatialize(t *testing.T) {
	right := mgl64.Vec3{1, 0, 0}

	pan, vol := Spatialize(mgl64.Vec3{100, 0, 0}, right, 0, 100)
	if math.Abs(pan-1) > 1e-9 {
		t.Errorf("Expected hard right pan, got %f", pan)
	}
	if math.Abs(vol+1) > 1e-9 {
		t.Errorf("Expected volume -1 at falloff distance, got %f", vol)
	}

	pan, _ = Spatialize(mgl64.Vec3{-5, 0, 5}, right, 0, 100)
	if pan >= 0 {
		t.Errorf("Expected left pan, got %f", pan)
	}

	pan, vol = Spatialize(mgl64.Vec3{}, right, 0.5, 100)
	if pan != 0 || vol != 0.5 {
		t.Errorf("Expected centred base volume at zero distance, got pan=%f vol=%f", pan, vol)
	}
}

// TestFootstepTrack verifies tracking updates the chain levels
func TestFootstepTrack(t *testing.T) {
	f := NewFootstepLoop(testBuffer(10), 2.5, 4, 0, 100, &sync.Mutex{})

	f.Track(core.Point(0, 0, 100), mgl64.Vec3{}, mgl64.Vec3{0, 0, 1})
	pan, vol := f.Levels()
	if math.Abs(pan-1) > 1e-9 || math.Abs(vol+1) > 1e-9 {
		t.Errorf("Expected pan 1 volume -1, got pan=%f vol=%f", pan, vol)
	}
}

// TestDecodeWAVAsset verifies the shipped footstep sample decodes at the output rate
func TestDecodeWAVAsset(t *testing.T) {
	f, err := os.Open("../asset/data/footsteps.wav")
	if err != nil {
		t.Skipf("Footstep asset unavailable: %v", err)
	}
	defer f.Close()

	buf, err := DecodeWAV(f, testRate, 4)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if buf.Format().SampleRate != testRate {
		t.Errorf("Expected rate %d, got %d", testRate, buf.Format().SampleRate)
	}
	if buf.Len() < int(testRate)/10 {
		t.Errorf("Expected at least 100ms of audio, got %d samples", buf.Len())
	}
}
