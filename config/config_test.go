package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	datadir := t.TempDir()
	os.Setenv("AMMD_DATADIR", datadir)
	defer os.Unsetenv("AMMD_DATADIR")

	require.NoError(t, InitConfig())
	require.Equal(t, datadir, GetDatadir())
	require.Equal(t, 4, GetInt(LogLevelKey))
	require.Equal(t, 30, GetInt(DefaultFeeKey))

	for _, location := range []string{DbLocation, LedgerLocation} {
		_, err := os.Stat(filepath.Join(datadir, location))
		require.NoError(t, err)
	}
}

func TestFailingInitConfig(t *testing.T) {
	os.Setenv("AMMD_DATADIR", t.TempDir())
	os.Setenv("AMMD_DEFAULT_FEE", "10001")
	defer func() {
		os.Unsetenv("AMMD_DATADIR")
		os.Unsetenv("AMMD_DEFAULT_FEE")
	}()

	require.Error(t, InitConfig())
}
