package terrain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRuleset(t *testing.T) {
	rules := Default()
	require.NoError(t, rules.Validate())

	tests := []struct {
		symbol   Symbol
		obstacle bool
	}{
		{Plains, false},
		{Mountains, true},
		{Crevasse, true},
	}
	for _, tt := range tests {
		typ, ok := rules.Lookup(tt.symbol)
		require.True(t, ok, tt.symbol)
		assert.Equal(t, tt.obstacle, typ.Obstacle, tt.symbol)
	}

	_, ok := rules.Lookup("W")
	assert.False(t, ok)
	assert.Equal(t, []Symbol{"C", "M", "P"}, rules.Symbols())
}

func TestValidate(t *testing.T) {
	assert.Error(t, Ruleset{}.Validate())
	assert.Error(t, Ruleset{"PP": {}}.Validate())
	assert.Error(t, Ruleset{"1": {}}.Validate())
	assert.NoError(t, Ruleset{"W": {Obstacle: true}}.Validate())
}

const tomlRules = `
[terrain.P]
obstacle = false
description = "plains"

[terrain.I]
obstacle = true
description = "ice"
`

const yamlRules = `
terrain:
  P:
    obstacle: false
    description: plains
  I:
    obstacle: true
    description: ice
`

func TestDecode(t *testing.T) {
	for name, tc := range map[string]struct {
		src    string
		format Format
	}{
		"toml": {tomlRules, TOML},
		"yaml": {yamlRules, YAML},
	} {
		t.Run(name, func(t *testing.T) {
			rules, err := Decode(strings.NewReader(tc.src), tc.format)
			require.NoError(t, err)
			assert.Equal(t, Ruleset{
				"P": {Obstacle: false, Description: "plains"},
				"I": {Obstacle: true, Description: "ice"},
			}, rules)
		})
	}
}

func TestDecodeRejectsBadSymbols(t *testing.T) {
	_, err := Decode(strings.NewReader("[terrain.ROCK]\nobstacle = true\n"), TOML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(""), TOML)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "rules.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(tomlRules), 0o644))
	rules, err := Load(tomlPath)
	require.NoError(t, err)
	assert.True(t, rules["I"].Obstacle)

	ymlPath := filepath.Join(dir, "rules.yml")
	require.NoError(t, os.WriteFile(ymlPath, []byte(yamlRules), 0o644))
	rules, err = Load(ymlPath)
	require.NoError(t, err)
	assert.Len(t, rules, 2)

	_, err = Load(filepath.Join(dir, "rules.json"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestLoadRepositoryRuleset(t *testing.T) {
	rules, err := Load(filepath.Join("..", "..", "testdata", "terrain.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), rules)
}
