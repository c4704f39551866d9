package asset

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
	"unicode/utf8"

	"github.com/lixenwraith/stride/constants"
)

func embeddedFile(t *testing.T, name string) []byte {
	t.Helper()
	data, err := fs.ReadFile(Embedded(), name)
	if err != nil {
		t.Fatalf("Expected embedded %s, got %v", name, err)
	}
	return data
}

// TestPreloadEmbeddedManifest verifies the built-in assets decode with monotonic progress ending at 100 once
func TestPreloadEmbeddedManifest(t *testing.T) {
	gate := NewGate(DefaultManifest(), DefaultOptions(), nil)

	var reports []int
	bundle, err := gate.Preload(context.Background(), Embedded(), func(p int) {
		reports = append(reports, p)
	})
	if err != nil {
		t.Fatalf("Expected preload to succeed, got %v", err)
	}

	if len(reports) == 0 || reports[len(reports)-1] != 100 {
		t.Fatalf("Expected final report 100, got %v", reports)
	}
	hundreds := 0
	for i, p := range reports {
		if p == 100 {
			hundreds++
		}
		if i > 0 && p <= reports[i-1] {
			t.Errorf("Expected strictly increasing progress, got %v", reports)
		}
	}
	if hundreds != 1 {
		t.Errorf("Expected exactly one 100 report, got %d", hundreds)
	}

	if bundle.Surface.Bounds != 820 {
		t.Errorf("Expected stadium bounds 820, got %.1f", bundle.Surface.Bounds)
	}
	if bundle.Footsteps == nil || bundle.Footsteps.Len() == 0 {
		t.Error("Expected decoded footstep samples")
	}
	if n := utf8.RuneCountInString(bundle.Arrow.Glyphs); n != len(constants.MarkerKeyframes)-1 {
		t.Errorf("Expected %d arrow glyphs, got %d", len(constants.MarkerKeyframes)-1, n)
	}
	if bundle.Env.BloomStrength != constants.BloomStrength {
		t.Errorf("Expected bloom strength %.1f, got %.1f", constants.BloomStrength, bundle.Env.BloomStrength)
	}
}

// TestMountOnce verifies the scene mounts exactly once and only after preload completes
func TestMountOnce(t *testing.T) {
	gate := NewGate(DefaultManifest(), DefaultOptions(), nil)
	mounts := 0
	mount := func(*Bundle) { mounts++ }

	if err := gate.Mount(mount); !errors.Is(err, ErrNotReady) {
		t.Errorf("Expected ErrNotReady before preload, got %v", err)
	}

	if _, err := gate.Preload(context.Background(), Embedded(), nil); err != nil {
		t.Fatalf("Expected preload to succeed, got %v", err)
	}
	if err := gate.Mount(mount); err != nil {
		t.Fatalf("Expected first mount to succeed, got %v", err)
	}
	if err := gate.Mount(mount); !errors.Is(err, ErrAlreadyMounted) {
		t.Errorf("Expected ErrAlreadyMounted, got %v", err)
	}
	if _, err := gate.Preload(context.Background(), Embedded(), nil); !errors.Is(err, ErrAlreadyMounted) {
		t.Errorf("Expected preload after mount to fail, got %v", err)
	}
	if mounts != 1 {
		t.Errorf("Expected 1 mount, got %d", mounts)
	}
	if !gate.Mounted() {
		t.Error("Expected gate to report mounted")
	}
}

// TestPreloadRepeatReportsOnce verifies a second preload returns the cached bundle without re-reporting
func TestPreloadRepeatReportsOnce(t *testing.T) {
	gate := NewGate(DefaultManifest(), DefaultOptions(), nil)
	first, err := gate.Preload(context.Background(), Embedded(), nil)
	if err != nil {
		t.Fatalf("Expected preload to succeed, got %v", err)
	}

	calls := 0
	second, err := gate.Preload(context.Background(), Embedded(), func(int) { calls++ })
	if err != nil {
		t.Fatalf("Expected repeat preload to succeed, got %v", err)
	}
	if first != second {
		t.Error("Expected the cached bundle")
	}
	if calls != 0 {
		t.Errorf("Expected no progress reports, got %d", calls)
	}
}

// TestPreloadFailures verifies any failed asset aborts preload and blocks the mount
func TestPreloadFailures(t *testing.T) {
	valid := fstest.MapFS{
		constants.AssetStadium:   {Data: embeddedFile(t, constants.AssetStadium)},
		constants.AssetFootsteps: {Data: embeddedFile(t, constants.AssetFootsteps)},
		constants.AssetArrow:     {Data: embeddedFile(t, constants.AssetArrow)},
		constants.AssetEnv:       {Data: embeddedFile(t, constants.AssetEnv)},
	}

	tests := []struct {
		name   string
		names  []string
		mutate func(fstest.MapFS)
		want   error
	}{
		{
			name:  "unknown kind",
			names: []string{constants.AssetStadium, "notes.md"},
			want:  ErrUnknownKind,
		},
		{
			name:   "missing file",
			names:  constants.DefaultManifest,
			mutate: func(m fstest.MapFS) { delete(m, constants.AssetEnv) },
			want:   fs.ErrNotExist,
		},
		{
			name:  "unknown yaml field",
			names: constants.DefaultManifest,
			mutate: func(m fstest.MapFS) {
				m[constants.AssetStadium] = &fstest.MapFile{Data: []byte("field_radius: 10\nroof: true\n")}
			},
		},
		{
			name:  "short glyph strip",
			names: constants.DefaultManifest,
			mutate: func(m fstest.MapFS) {
				m[constants.AssetArrow] = &fstest.MapFile{Data: []byte("glyphs: \"▼▶\"\n")}
			},
		},
		{
			name:  "rough beyond one",
			names: constants.DefaultManifest,
			mutate: func(m fstest.MapFS) {
				m[constants.AssetArrow] = &fstest.MapFile{Data: []byte("glyphs: \"▼◣◀◤▲◥▶◢\"\nroughness: 1.5\n")}
			},
		},
		{
			name:  "truncated wav",
			names: constants.DefaultManifest,
			mutate: func(m fstest.MapFS) {
				m[constants.AssetFootsteps] = &fstest.MapFile{Data: []byte("RIFF")}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			for k, v := range valid {
				fsys[k] = v
			}
			if tt.mutate != nil {
				tt.mutate(fsys)
			}
			m, err := NewManifest(tt.names, constants.AssetSizeHint)
			if err != nil {
				t.Fatalf("Expected manifest, got %v", err)
			}
			gate := NewGate(m, DefaultOptions(), nil)

			bundle, err := gate.Preload(context.Background(), fsys, nil)
			if err == nil {
				t.Fatal("Expected preload error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if bundle != nil {
				t.Error("Expected no bundle on failure")
			}
			if gate.Progress() == 100 {
				t.Error("Expected progress below 100 on failure")
			}
			if err := gate.Mount(func(*Bundle) { t.Error("Expected mount callback not to run") }); !errors.Is(err, ErrNotReady) {
				t.Errorf("Expected ErrNotReady, got %v", err)
			}
		})
	}
}

// TestArrowMaterialDefaults verifies omitted arrow fields fall back to the marker defaults
func TestArrowMaterialDefaults(t *testing.T) {
	store, err := decodeArrow([]byte("glyphs: \"▼◣◀◤▲◥▶◢\"\nbloom: true\nroughness: 0.9\n"))
	if err != nil {
		t.Fatalf("Expected arrow to decode, got %v", err)
	}
	var b Bundle
	store(&b)

	if b.Arrow.Color != constants.MarkerColor || b.Arrow.Emissive != constants.MarkerEmissive {
		t.Errorf("Expected default colours %s/%s, got %s/%s",
			constants.MarkerColor, constants.MarkerEmissive, b.Arrow.Color, b.Arrow.Emissive)
	}
	if b.Arrow.Metalness != constants.MarkerMetalness {
		t.Errorf("Expected default metalness %.1f, got %.1f", constants.MarkerMetalness, b.Arrow.Metalness)
	}
	if b.Arrow.Roughness != 0.9 {
		t.Errorf("Expected roughness 0.9 from file, got %.1f", b.Arrow.Roughness)
	}
}

// TestPreloadCancelled verifies a cancelled context stops the preload
func TestPreloadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gate := NewGate(DefaultManifest(), DefaultOptions(), nil)
	if _, err := gate.Preload(ctx, Embedded(), nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

// TestNewManifest verifies size hint parsing
func TestNewManifest(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		hint    string
		want    int64
		wantErr bool
	}{
		{"default hint", []string{"a.yaml"}, "1.2mb", 1200000, false},
		{"kilobytes", []string{"a.yaml"}, "512kb", 512000, false},
		{"garbage hint", []string{"a.yaml"}, "lots", 0, true},
		{"zero hint", []string{"a.yaml"}, "0b", 0, true},
		{"empty", nil, "1mb", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewManifest(tt.names, tt.hint)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.hint)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if m.TotalBytes() != tt.want {
				t.Errorf("Expected %d bytes, got %d", tt.want, m.TotalBytes())
			}
		})
	}
}
