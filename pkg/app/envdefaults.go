package app

import (
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/tenderlove/yazap/pkg/command"
	"github.com/tenderlove/yazap/pkg/errors"
	"github.com/tenderlove/yazap/pkg/logging"
)

// EnableEnvDefaults lets environment variables fill options absent from the
// command line. Variables are matched as PREFIX_OPTION_NAME with underscores
// standing in for dashes, so MYAPP_MAX_TIME feeds the option max-time. The
// declared DefaultValue of every option in the tree forms the bottom layer;
// environment variables override it; explicit flags override both.
//
// Call after the command tree is fully declared: defaults are collected at
// call time.
func (a *App) EnableEnvDefaults(prefix string) error {
	k := koanf.New(".")

	defaults := make(map[string]interface{})
	collectDefaults(a.root, defaults)
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to load declared defaults")
	}

	envPrefix := prefix + "_"
	provider := env.Provider(envPrefix, ".", func(name string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(name, envPrefix)), "_", "-")
	})
	if err := k.Load(provider, nil); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to load environment defaults")
	}

	flat := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		flat[key] = k.String(key)
	}
	a.parser.SetDefaults(flat)
	logger := logging.GetLogger("app")
	logger.Debug().Str("prefix", prefix).Int("defaults", len(flat)).Msg("environment defaults enabled")
	return nil
}

func collectDefaults(cmd *command.Command, into map[string]interface{}) {
	for _, opt := range cmd.Options {
		if opt.DefaultValue != "" {
			into[opt.Name] = opt.DefaultValue
		}
	}
	for _, sub := range cmd.Subcommands {
		collectDefaults(sub, into)
	}
}
