package config

import (
	"log/slog"
	"testing"

	"github.com/maruel/ut"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/engine"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	ut.AssertEqual(t, Config{
		SplineStep:     20,
		DynamicText:    true,
		MaxBlockDepth:  32,
		CircularityMin: 0.98,
		CircularityMax: 1.02,
		Port:           8080,
		LogLevel:       "info",
		MaxUploadBytes: 32 << 20,
	}, *cfg)
	ut.AssertEqual(t, engine.DefaultOptions(), cfg.Options())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("DXF2ELMT_SPLINE_STEP", "50")
	t.Setenv("DXF2ELMT_DYNAMIC_TEXT", "false")
	t.Setenv("DXF2ELMT_STRICT", "true")
	t.Setenv("DXF2ELMT_CIRCULARITY_MIN", "0.9")
	t.Setenv("DXF2ELMT_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	opts := cfg.Options()
	ut.AssertEqual(t, 50, opts.SplineStep)
	ut.AssertEqual(t, false, opts.DynamicText)
	ut.AssertEqual(t, true, opts.Strict)
	ut.AssertEqual(t, 0.9, opts.Thresholds.CircularityMin)
	ut.AssertEqual(t, 1.02, opts.Thresholds.CircularityMax)

	l, err := cfg.Level()
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, slog.LevelDebug, l)
}

func TestLoadInvalid(t *testing.T) {
	data := []struct{ key, value string }{
		{"DXF2ELMT_SPLINE_STEP", "0"},
		{"DXF2ELMT_SPLINE_STEP", "many"},
		{"DXF2ELMT_SPLINE_STEP", "1000000000"},
		{"DXF2ELMT_MAX_BLOCK_DEPTH", "-1"},
		{"DXF2ELMT_CIRCULARITY_MIN", "1.5"},
		{"DXF2ELMT_LOG_LEVEL", "loud"},
		{"DXF2ELMT_MAX_UPLOAD_BYTES", "0"},
	}
	for i, line := range data {
		t.Run(line.key, func(t *testing.T) {
			t.Setenv(line.key, line.value)
			_, err := Load()
			ut.AssertEqualIndex(t, i, true, err != nil)
		})
	}
}
