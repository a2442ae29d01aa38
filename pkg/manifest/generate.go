package manifest

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tenderlove/yazap/pkg/errors"
)

const scaffoldHeader = `# yazap command manifest
# Describe the command surface here and load it with manifest.Load.

`

// Scaffold returns a starter manifest in the given format, "toml" or "yaml",
// ready to edit and valid to load as-is. The require flags are included as
// commented lines so the knobs are visible without being set.
func Scaffold(format string) (string, error) {
	m := starterManifest()

	var body []byte
	var err error
	switch strings.ToLower(format) {
	case "toml":
		body, err = toml.Marshal(m)
	case "yaml", "yml":
		body, err = yaml.Marshal(m)
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported manifest format: %s", format).
			WithDetail("format", format)
	}
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal starter manifest")
	}

	return scaffoldHeader + commentOutRequireFlags(string(body)), nil
}

// commentOutRequireFlags comments out every require_args / require_command
// line, keeping all other lines as-is.
func commentOutRequireFlags(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "require_args") || strings.HasPrefix(trimmed, "require_command") {
			result = append(result, "# "+line)
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

func starterManifest() Manifest {
	return Manifest{
		Name:        "myapp",
		Description: "Describe what myapp does",
		Args: []ArgSpec{
			{Name: "FILE", Description: "Input file"},
		},
		Options: []OptionSpec{
			{Name: "verbose", Short: "v", Description: "Enable verbose output"},
			{
				Name:        "format",
				Short:       "f",
				Description: "Output format",
				TakesValue:  true,
				Values:      []string{"text", "json"},
				Default:     "text",
			},
		},
		Commands: []Manifest{
			{Name: "version", Description: "Print the version"},
		},
	}
}
