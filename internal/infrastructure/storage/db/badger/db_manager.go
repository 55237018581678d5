package dbbadger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"
)

// DbManager holds all the badgerhold stores in a single data structure.
type DbManager struct {
	PoolStore  *badgerhold.Store
	TradeStore *badgerhold.Store
}

// NewDbManager opens (or creates if not exists) the badger stores on disk.
// It expects a base data dir and an optional logger. It creates dedicated
// directories for pools and trades.
func NewDbManager(baseDbDir string, logger badger.Logger) (*DbManager, error) {
	poolDb, err := createDb(baseDbDir+"/pool", logger)
	if err != nil {
		return nil, fmt.Errorf("opening pool db: %w", err)
	}

	tradeDb, err := createDb(baseDbDir+"/trade", logger)
	if err != nil {
		return nil, fmt.Errorf("opening trade db: %w", err)
	}

	return &DbManager{
		PoolStore:  poolDb,
		TradeStore: tradeDb,
	}, nil
}

// Close releases all the underlying stores.
func (d *DbManager) Close() error {
	if err := d.PoolStore.Close(); err != nil {
		return err
	}
	return d.TradeStore.Close()
}

// JSONEncode is a custom JSON based encoder for badger.
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer
	if err := json.NewEncoder(&buff).Encode(value); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger.
func JSONDecode(data []byte, value interface{}) error {
	return json.NewDecoder(bytes.NewReader(data)).Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	return badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
