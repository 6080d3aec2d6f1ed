package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/wippyai/morse/codec"
	"github.com/wippyai/morse/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Strategy != codec.StrategyTree {
		t.Errorf("Strategy = %q, want tree", cfg.Strategy)
	}
	if cfg.LogLevel != zapcore.InfoLevel {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Strict {
		t.Error("Strict should default to false")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Config
	}{
		{
			name: "empty file keeps defaults",
			src:  "",
			want: Config{Strategy: codec.StrategyTree, LogLevel: zapcore.InfoLevel},
		},
		{
			name: "all attributes",
			src: `
strategy  = "offset"
strict    = true
log_level = "debug"
`,
			want: Config{Strategy: codec.StrategyOffset, LogLevel: zapcore.DebugLevel, Strict: true},
		},
		{
			name: "strategy only",
			src:  `strategy = "map"`,
			want: Config{Strategy: codec.StrategyMap, LogLevel: zapcore.InfoLevel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.src), "morse.hcl")
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if *cfg != tt.want {
				t.Errorf("Parse = %+v, want %+v", *cfg, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind errors.Kind
	}{
		{"syntax", `strategy = `, errors.KindInvalidData},
		{"unknown attribute", `speed = 20`, errors.KindInvalidData},
		{"wrong type", `strict = "yes please"`, errors.KindInvalidData},
		{"unknown strategy", `strategy = "trie"`, errors.KindNotFound},
		{"bad level", `log_level = "loud"`, errors.KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "morse.hcl")
			if err == nil {
				t.Fatal("expected error")
			}
			e, ok := errors.As(err)
			if !ok {
				t.Fatalf("error is %T, want *errors.Error", err)
			}
			if e.Phase != errors.PhaseConfig || e.Kind != tt.kind {
				t.Errorf("error = [%s] %s, want [config] %s", e.Phase, e.Kind, tt.kind)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morse.hcl")
	if err := os.WriteFile(path, []byte("strategy = \"map\"\nstrict = true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Strategy != codec.StrategyMap || !cfg.Strict {
		t.Errorf("Load = %+v", *cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
