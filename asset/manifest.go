package asset

import (
	"fmt"

	"github.com/docker/go-units"
	"github.com/lixenwraith/stride/constants"
)

// Manifest is the ordered list of assets required before the scene mounts
type Manifest struct {
	Names      []string
	SizeHint   string
	totalBytes int64
}

// NewManifest parses the human-readable size hint ("1.2mb") used to weight progress
func NewManifest(names []string, sizeHint string) (Manifest, error) {
	if len(names) == 0 {
		return Manifest{}, fmt.Errorf("manifest is empty")
	}
	total, err := units.FromHumanSize(sizeHint)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest size hint %q: %w", sizeHint, err)
	}
	if total <= 0 {
		return Manifest{}, fmt.Errorf("manifest size hint %q must be positive", sizeHint)
	}
	return Manifest{
		Names:      append([]string(nil), names...),
		SizeHint:   sizeHint,
		totalBytes: total,
	}, nil
}

// DefaultManifest returns the stadium scene manifest
func DefaultManifest() Manifest {
	m, err := NewManifest(constants.DefaultManifest, constants.AssetSizeHint)
	if err != nil {
		panic(err)
	}
	return m
}

// TotalBytes returns the approximate manifest size in bytes
func (m Manifest) TotalBytes() int64 {
	return m.totalBytes
}
