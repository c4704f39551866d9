package constants

// Asset Manifest Defaults
const (
	AssetStadium   = "stadium.yaml"
	AssetFootsteps = "footsteps.wav"
	AssetArrow     = "arrow.yaml"
	AssetEnv       = "env.yaml"

	// AssetSizeHint is the approximate total size of the manifest
	AssetSizeHint = "1.2mb"

	// AssetLoadWorkers is the preload worker pool size
	AssetLoadWorkers = 4
)

// DefaultManifest lists the assets the interactive scene needs before mounting
var DefaultManifest = []string{AssetStadium, AssetFootsteps, AssetArrow, AssetEnv}
