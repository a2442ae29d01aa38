package manifest

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tenderlove/yazap/pkg/errors"
	"github.com/tenderlove/yazap/pkg/logging"
)

// Load reads and validates a manifest file. The parser is picked from the
// extension: .toml, .yaml or .yml.
func Load(path string) (*Manifest, error) {
	logger := logging.GetLogger("manifest").With().Str("path", path).Logger()

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "failed to load manifest from %s", path).
			WithDetail("path", path)
	}

	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "failed to decode manifest from %s", path).
			WithDetail("path", path)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("args", len(m.Args)).
		Int("options", len(m.Options)).
		Int("commands", len(m.Commands)).
		Msg("manifest loaded")
	return &m, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrManifestLoad, "unsupported manifest format: %s", filepath.Ext(path)).
			WithDetail("path", path)
	}
}
