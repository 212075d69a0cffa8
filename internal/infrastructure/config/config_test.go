package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.Source.CSVURL)
	assert.Equal(t, "/bridgeit/item/", cfg.Directory.DetailURL)
	assert.Equal(t, 0.7, cfg.Match.TematicaWeight)
	assert.Equal(t, 0.3, cfg.Match.ConvoWeight)
	assert.Equal(t, 8, cfg.Match.MaxMatchedTags)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.True(t, cfg.PitchEnabled())
	assert.True(t, cfg.MatchingEnabled())
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Server.Addr, cfg.Server.Addr)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridgeit.yaml")
	content := `
source:
  csv_url: https://docs.example.org/export?format=csv
  site_base_url: https://site.example.org
directory:
  detail_url: /dir/item/
  form_url: https://forms.example.org/alta
match:
  tematica_weight: 0.6
  convo_weight: 0.4
  max_matched_tags: 5
features:
  pitch: false
server:
  addr: ":9090"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://docs.example.org/export?format=csv", cfg.Source.CSVURL)
	assert.Equal(t, "https://site.example.org", cfg.Source.SiteBaseURL)
	assert.Equal(t, "/dir/item/", cfg.Directory.DetailURL)
	assert.Equal(t, "https://forms.example.org/alta", cfg.Directory.FormURL)
	assert.Equal(t, 0.6, cfg.Match.TematicaWeight)
	assert.Equal(t, 0.4, cfg.Match.ConvoWeight)
	assert.Equal(t, 5, cfg.Match.MaxMatchedTags)
	assert.Equal(t, ":9090", cfg.Server.Addr)

	assert.False(t, cfg.PitchEnabled(), "explicit false wins")
	assert.True(t, cfg.MatchingEnabled(), "unset flag stays enabled")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: [not a map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridgeit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source:\n  csv_url: https://file.example.org/data.csv\n"), 0o644))

	t.Setenv("BRIDGEIT_CSV_URL", "https://env.example.org/data.csv")
	t.Setenv("BRIDGEIT_SITE_BASE_URL", "https://env-site.example.org")
	t.Setenv("BRIDGEIT_ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.org/data.csv", cfg.Source.CSVURL,
		"environment wins over the file")
	assert.Equal(t, "https://env-site.example.org", cfg.Source.SiteBaseURL)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}
