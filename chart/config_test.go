package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.False(t, cfg.Enabled)
	require.Equal(t, 1000, cfg.Threshold)
	require.True(t, cfg.Auto)
	require.True(t, cfg.OnInit)
	require.True(t, cfg.RestoreOriginalData)
	require.False(t, cfg.PreferOriginalData)
	require.Empty(t, cfg.TargetDatasets)
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(
		WithEnabled(true),
		WithThreshold(250),
		WithAuto(false),
		WithOnInit(false),
		WithRestoreOriginalData(false),
		WithPreferOriginalData(true),
		WithTargetDatasets("a", "b"),
	)
	require.NoError(t, err)
	require.Equal(t, Config{
		Enabled:             true,
		Threshold:           250,
		Auto:                false,
		OnInit:              false,
		RestoreOriginalData: false,
		PreferOriginalData:  true,
		TargetDatasets:      []string{"a", "b"},
	}, cfg)

	_, err = NewConfig(WithTargetDatasets("a", ""))
	require.Error(t, err)
}

func TestConfig_Targets(t *testing.T) {
	all := DefaultConfig()
	require.True(t, all.Targets("anything"))

	some, err := NewConfig(WithTargetDatasets("cpu"))
	require.NoError(t, err)
	require.True(t, some.Targets("cpu"))
	require.False(t, some.Targets("mem"))
}

func TestParseSettings(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		s, err := ParseSettings(nil)
		require.NoError(t, err)
		require.Equal(t, DefaultSettings(), s)
	})

	t.Run("partial override", func(t *testing.T) {
		s, err := ParseSettings([]byte(`
downsample:
  enabled: true
  threshold: 300
  targetDatasets: [cpu, mem]
trendline:
  enabled: true
  steps: 40
`))
		require.NoError(t, err)
		require.True(t, s.Downsample.Enabled)
		require.Equal(t, 300, s.Downsample.Threshold)
		require.True(t, s.Downsample.Auto, "omitted keys keep their defaults")
		require.True(t, s.Downsample.RestoreOriginalData)
		require.Equal(t, []string{"cpu", "mem"}, s.Downsample.TargetDatasets)
		require.True(t, s.Trendline.Enabled)
		require.Equal(t, 0.25, s.Trendline.Extension)
		require.Equal(t, 40, s.Trendline.Steps)
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, doc := range []string{
			"downsample: {threshold: -5}",
			"trendline: {extension: -0.1}",
			"trendline: {steps: -1}",
			`downsample: {targetDatasets: [""]}`,
			"downsample: [not, a, map]",
		} {
			_, err := ParseSettings([]byte(doc))
			require.Error(t, err, doc)
		}
	})
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("downsample:\n  enabled: true\n  auto: false\n"), 0o600))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	require.True(t, s.Downsample.Enabled)
	require.False(t, s.Downsample.Auto)

	_, err = LoadSettings(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "read chart settings")
}
