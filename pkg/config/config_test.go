package config

import (
	"testing"

	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := Load(fs, DefaultFileName)
	require.NoError(t, err)
	assert.Empty(t, cfg.CustomWords)
	assert.False(t, cfg.StrictSpelling)
	assert.Equal(t, rules.AllTypes, cfg.EnabledTypes())
}

func TestLoadParsesYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `rules:
  long-text: false
  plural-consistency: false
custom_words:
  - kubernetes
  - proselint
strict_spelling: true
`
	require.NoError(t, afero.WriteFile(fs, ".proselint.yaml", []byte(content), 0644))

	cfg, err := Load(fs, ".proselint.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"kubernetes", "proselint"}, cfg.CustomWords)
	assert.True(t, cfg.StrictSpelling)

	types := cfg.EnabledTypes()
	assert.NotContains(t, types, rules.TypeLongText)
	assert.NotContains(t, types, rules.TypePluralConsistency)
	assert.Contains(t, types, rules.TypeSpelling)
	assert.Len(t, types, len(rules.AllTypes)-2)
}

func TestLoadInvalidYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte("rules: [not a map"), 0644))

	_, err := Load(fs, "bad.yaml")
	assert.Error(t, err)
}

func TestEnabledTypesExplicitTrueKeepsRule(t *testing.T) {
	cfg := Default()
	cfg.Rules["spelling"] = true
	cfg.Rules["grammar"] = false

	types := cfg.EnabledTypes()
	assert.Contains(t, types, rules.TypeSpelling)
	assert.NotContains(t, types, rules.TypeGrammar)
}
