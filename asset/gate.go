package asset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/stride/audio"
	"github.com/lixenwraith/stride/constants"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnknownKind is returned for manifest entries no decoder handles
	ErrUnknownKind = errors.New("asset: no decoder for asset")
	// ErrAlreadyMounted is returned once the scene has been mounted
	ErrAlreadyMounted = errors.New("asset: scene already mounted")
	// ErrNotReady is returned when mounting before preload reached 100%
	ErrNotReady = errors.New("asset: preload incomplete")
)

// Options configures decoding and the loader pool
type Options struct {
	SampleRate beep.SampleRate
	Quality    int
	Workers    int
}

// DefaultOptions returns the built-in loader settings
func DefaultOptions() Options {
	return Options{
		SampleRate: beep.SampleRate(constants.AudioSampleRate),
		Quality:    constants.ResampleQuality,
		Workers:    constants.AssetLoadWorkers,
	}
}

// Gate preloads the manifest and mounts the scene exactly once
// Progress is monotonic, held at 99 until every asset decoded, and reports 100 once
type Gate struct {
	manifest Manifest
	opts     Options
	log      logrus.FieldLogger

	mu       sync.Mutex
	progress int
	bundle   *Bundle
	mounted  bool
}

// NewGate creates a gate for the manifest
func NewGate(m Manifest, opts Options, log logrus.FieldLogger) *Gate {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Gate{manifest: m, opts: opts, log: log}
}

// Progress returns the last reported percentage
func (g *Gate) Progress() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.progress
}

// Mounted reports whether Mount has run
func (g *Gate) Mounted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mounted
}

// Preload decodes every manifest entry on a bounded worker pool
// onProgress is invoked serially with strictly increasing values and must not block
// Any failure aborts the preload and the scene never mounts
func (g *Gate) Preload(ctx context.Context, fsys fs.FS, onProgress func(int)) (*Bundle, error) {
	g.mu.Lock()
	if g.mounted {
		g.mu.Unlock()
		return nil, ErrAlreadyMounted
	}
	if g.bundle != nil {
		b := g.bundle
		g.mu.Unlock()
		return b, nil
	}
	g.mu.Unlock()

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
		loaded   atomic.Int64
		done     atomic.Int64
		bmu      sync.Mutex
		bundle   = &Bundle{}
		total    = len(g.manifest.Names)
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	pool, err := ants.NewPool(g.opts.Workers, ants.WithPanicHandler(func(p any) {
		fail(fmt.Errorf("asset decoder panic: %v", p))
	}))
	if err != nil {
		return nil, fmt.Errorf("asset pool: %w", err)
	}
	defer pool.Release()

	for _, name := range g.manifest.Names {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			n, apply, err := g.load(fsys, name)
			if err != nil {
				fail(fmt.Errorf("load %s: %w", name, err))
				return
			}
			bmu.Lock()
			apply(bundle)
			bmu.Unlock()

			g.log.WithFields(logrus.Fields{"asset": name, "bytes": n}).Debug("asset loaded")
			g.advance(onProgress, g.percent(loaded.Add(n), int(done.Add(1)), total))
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			fail(fmt.Errorf("submit %s: %w", name, err))
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		g.log.WithError(firstErr).Error("asset preload failed")
		return nil, firstErr
	}
	if int(done.Load()) < total {
		if err := parent.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("asset preload stopped after %d of %d", done.Load(), total)
	}

	g.mu.Lock()
	g.bundle = bundle
	g.mu.Unlock()
	g.advance(onProgress, 100)
	return bundle, nil
}

// Mount hands the loaded bundle to fn exactly once
func (g *Gate) Mount(fn func(*Bundle)) error {
	g.mu.Lock()
	if g.mounted {
		g.mu.Unlock()
		return ErrAlreadyMounted
	}
	if g.bundle == nil || g.progress < 100 {
		g.mu.Unlock()
		return ErrNotReady
	}
	g.mounted = true
	b := g.bundle
	g.mu.Unlock()

	fn(b)
	return nil
}

// percent blends byte and count progress so tiny assets against a large hint still move the bar
func (g *Gate) percent(loadedBytes int64, done, total int) int {
	byBytes := int(loadedBytes * 100 / g.manifest.TotalBytes())
	byCount := done * 100 / total
	p := max(byBytes, byCount)
	return min(p, 99)
}

func (g *Gate) advance(onProgress func(int), p int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if p <= g.progress {
		return
	}
	g.progress = p
	if onProgress != nil {
		onProgress(p)
	}
}

func (g *Gate) load(fsys fs.FS, name string) (int64, func(*Bundle), error) {
	dec, err := g.decoderFor(name)
	if err != nil {
		return 0, nil, err
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return 0, nil, err
	}
	apply, err := dec(data)
	if err != nil {
		return 0, nil, err
	}
	return int64(len(data)), apply, nil
}

func (g *Gate) decodeFootsteps(data []byte) (func(*Bundle), error) {
	buf, err := audio.DecodeWAV(bytes.NewReader(data), g.opts.SampleRate, g.opts.Quality)
	if err != nil {
		return nil, err
	}
	return func(b *Bundle) { b.Footsteps = buf }, nil
}
