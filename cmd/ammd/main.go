package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/tdex-network/ammd/config"
	"github.com/tdex-network/ammd/internal/core/application"
	"github.com/tdex-network/ammd/internal/core/ports"
	ledgerbadger "github.com/tdex-network/ammd/internal/infrastructure/ledger/badger"
	dbbadger "github.com/tdex-network/ammd/internal/infrastructure/storage/db/badger"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "ammd CLI"
	app.Usage = "Command line interface to manage AMM pools and trade against them"
	app.Commands = append(
		app.Commands,
		&asset,
		&pool,
		&deposit,
		&swap,
		&preview,
		&balance,
	)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

// appServices bundles the services of a CLI invocation, opened against the
// badger stores under the configured datadir.
type appServices struct {
	operator application.OperatorService
	trade    application.TradeService
	ledger   ports.Ledger

	closeFns []func() error
}

func newAppServices() (*appServices, error) {
	if err := config.InitConfig(); err != nil {
		return nil, err
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	datadir := config.GetDatadir()
	dbManager, err := dbbadger.NewDbManager(
		filepath.Join(datadir, config.DbLocation), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}
	ledger, err := ledgerbadger.NewLedger(datadir, nil)
	if err != nil {
		dbManager.Close()
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	poolRepository := dbbadger.NewPoolRepositoryImpl(dbManager)
	tradeRepository := dbbadger.NewTradeRepositoryImpl(dbManager)

	return &appServices{
		operator: application.NewOperatorService(
			poolRepository, tradeRepository, ledger,
		),
		trade: application.NewTradeService(
			poolRepository, tradeRepository, ledger,
		),
		ledger:   ledger,
		closeFns: []func() error{ledger.Close, dbManager.Close},
	}, nil
}

func (a *appServices) close() {
	for _, closeFn := range a.closeFns {
		if err := closeFn(); err != nil {
			log.WithError(err).Warn("error while closing stores")
		}
	}
}

// ensureAccount allocates the (owner, asset) token account if it does not
// exist yet and returns its address.
func (a *appServices) ensureAccount(
	ctx context.Context, owner, asset string,
) (string, error) {
	addr := a.ledger.AccountAddress(owner, asset)
	if _, err := a.ledger.GetBalance(ctx, addr); err == nil {
		return addr, nil
	}
	return a.ledger.CreateAccount(ctx, owner, asset)
}

func printRespJSON(resp interface{}) {
	buf, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(buf))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[ammd] %v\n", err)
	os.Exit(1)
}
