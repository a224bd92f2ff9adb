package content

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultSeed returns the embedded seed file.
func DefaultSeed() []byte {
	data, err := defaultsFS.ReadFile("defaults/portfolio.yaml")
	if err != nil {
		return nil
	}
	return data
}

// LoadSeed reads portfolio content from a YAML file. An empty path loads
// the embedded defaults. The result is validated.
func LoadSeed(path string) (Portfolio, error) {
	data := DefaultSeed()
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return Portfolio{}, fmt.Errorf("content: read seed: %w", err)
		}
	}
	return ParseSeed(data)
}

// ParseSeed parses and validates YAML portfolio content.
func ParseSeed(data []byte) (Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Portfolio{}, fmt.Errorf("content: parse seed: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Portfolio{}, fmt.Errorf("content: %w", err)
	}
	return p, nil
}

// MarshalSeed renders the portfolio in seed format.
func (p Portfolio) MarshalSeed() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("content: marshal seed: %w", err)
	}
	return data, nil
}
