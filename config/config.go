package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/viper"
)

const (
	// DatadirKey is the local data directory to store the internal state of
	// the daemon
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the
	// values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DefaultFeeKey is the default swap fee in basis points used when
	// creating a pool without an explicit fee
	DefaultFeeKey = "DEFAULT_FEE"

	// DbLocation is the folder inside the datadir containing the pool and
	// trade stores
	DbLocation = "db"
	// LedgerLocation is the folder inside the datadir containing the asset
	// ledger store
	LedgerLocation = "ledger"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("ammd", false)

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("AMMD")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DefaultFeeKey, 30)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	defaultFee := GetInt(DefaultFeeKey)
	if defaultFee < 0 || defaultFee > 10000 {
		return fmt.Errorf(
			"%s must be a basis points value in range [0, 10000]",
			DefaultFeeKey,
		)
	}

	return nil
}

func initDatadir() error {
	datadir := GetDatadir()
	if err := makeDirectoryIfNotExists(
		filepath.Join(datadir, DbLocation),
	); err != nil {
		return err
	}
	return makeDirectoryIfNotExists(filepath.Join(datadir, LedgerLocation))
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
