package terrain

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a ruleset file.
type Format int

const (
	TOML Format = iota
	YAML
)

type rulesetFile struct {
	Terrain map[string]Type `toml:"terrain" yaml:"terrain"`
}

// Load reads a ruleset file, picking the format from its extension
// (.toml, .yaml or .yml).
func Load(path string) (Ruleset, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = TOML
	case ".yaml", ".yml":
		format = YAML
	default:
		return nil, fmt.Errorf("unsupported terrain file %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rules, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// Decode reads a ruleset of the form
//
//	[terrain.P]
//	obstacle = false
//	description = "plains"
func Decode(r io.Reader, format Format) (Ruleset, error) {
	var file rulesetFile
	switch format {
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
			return nil, fmt.Errorf("decode terrain toml: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&file); err != nil {
			return nil, fmt.Errorf("decode terrain yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown terrain format %d", format)
	}

	rules := make(Ruleset, len(file.Terrain))
	for s, t := range file.Terrain {
		rules[Symbol(s)] = t
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}
