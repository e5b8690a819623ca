package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := Load("")
	is.NoErr(err)
	is.Equal(cfg.LogLevel, "info")
	is.Equal(cfg.Seed, int64(0))
	is.Equal(cfg.MaxRedeals, uint(100))
	is.Equal(cfg.HistoryFile, "/tmp/dominoes_readline.tmp")
}

func TestEnvOverrides(t *testing.T) {
	is := is.New(t)

	t.Setenv("DOMINOES_LOG_LEVEL", "debug")
	t.Setenv("DOMINOES_SEED", "1234")

	cfg, err := Load("")
	is.NoErr(err)
	is.Equal(cfg.LogLevel, "debug")
	is.Equal(cfg.Seed, int64(1234))
}
