package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tdex-network/ammd/config"
	"github.com/tdex-network/ammd/internal/core/application"
)

var (
	pool = cli.Command{
		Name:  "pool",
		Usage: "manage AMM pools",
		Subcommands: []*cli.Command{
			poolNewCmd, poolInfoCmd, poolListCmd, poolPriceCmd,
			poolLockCmd, poolUnlockCmd, poolTradesCmd,
		},
	}

	poolNewCmd = &cli.Command{
		Name:  "new",
		Usage: "create a new pool for an asset pair",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "the seed disambiguating pools for the same pair",
			},
			&cli.StringFlag{
				Name:     "asset_x",
				Usage:    "the first asset hash of the pair",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "asset_y",
				Usage:    "the second asset hash of the pair",
				Required: true,
			},
			&cli.IntFlag{
				Name:        "fee_bps",
				Usage:       "the swap fee in basis points",
				DefaultText: "the configured default fee",
				Value:       -1,
			},
			&cli.StringFlag{
				Name:  "authority",
				Usage: "optional address allowed to lock and unlock the pool",
			},
		},
		Action: poolNewAction,
	}
	poolInfoCmd = &cli.Command{
		Name:   "info",
		Usage:  "get info and live balances of a pool",
		Flags:  []cli.Flag{poolFlag},
		Action: poolInfoAction,
	}
	poolListCmd = &cli.Command{
		Name:   "list",
		Usage:  "list all pools",
		Action: poolListAction,
	}
	poolPriceCmd = &cli.Command{
		Name:   "price",
		Usage:  "get the spot prices of a pool",
		Flags:  []cli.Flag{poolFlag},
		Action: poolPriceAction,
	}
	poolLockCmd = &cli.Command{
		Name:   "lock",
		Usage:  "lock a pool, rejecting deposits and swaps",
		Flags:  []cli.Flag{poolFlag, authorityFlag},
		Action: poolLockAction,
	}
	poolUnlockCmd = &cli.Command{
		Name:   "unlock",
		Usage:  "unlock a pool",
		Flags:  []cli.Flag{poolFlag, authorityFlag},
		Action: poolUnlockAction,
	}
	poolTradesCmd = &cli.Command{
		Name:   "trades",
		Usage:  "list the trade history of a pool",
		Flags:  []cli.Flag{poolFlag},
		Action: poolTradesAction,
	}

	poolFlag = &cli.StringFlag{
		Name:     "pool",
		Usage:    "the pool name",
		Required: true,
	}
	authorityFlag = &cli.StringFlag{
		Name:     "authority",
		Usage:    "the pool authority",
		Required: true,
	}
)

func poolNewAction(ctx *cli.Context) error {
	services, err := newAppServices()
	if err != nil {
		return err
	}
	defer services.close()

	feeBasisPoints := ctx.Int("fee_bps")
	if feeBasisPoints < 0 {
		feeBasisPoints = config.GetInt(config.DefaultFeeKey)
	}
	if feeBasisPoints > 10000 {
		return fmt.Errorf("fee_bps must be in range [0, 10000]")
	}

	info, err := services.operator.CreatePool(
		context.Background(), application.CreatePoolArgs{
			Seed:           ctx.Uint64("seed"),
			AssetX:         ctx.String("asset_x"),
			AssetY:         ctx.String("asset_y"),
			FeeBasisPoints: uint16(feeBasisPoints),
			Authority:      ctx.String("authority"),
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(info)
	return nil
}

func poolInfoAction(ctx *cli.Context) error {
	services, err := newAppServices()
	if err != nil {
		return err
	}
	defer services.close()

	info, err := services.operator.GetPoolInfo(
		context.Background(), ctx.String("pool"),
	)
	if err != nil {
		return err
	}

	printRespJSON(info)
	return nil
}

func poolListAction(ctx *cli.Context) error {
	services, err := newAppServices()
	if err != nil {
		return err
	}
	defer services.close()

	pools, err := services.operator.ListPools(context.Background())
	if err != nil {
		return err
	}

	printRespJSON(pools)
	return nil
}

func poolPriceAction(ctx *cli.Context) error {
	services, err := newAppServices()
	if err != nil {
		return err
	}
	defer services.close()

	price, err := services.trade.GetPoolPrice(
		context.Background(), ctx.String("pool"),
	)
	if err != nil {
		return err
	}

	printRespJSON(price)
	return nil
}

func poolLockAction(ctx *cli.Context) error {
	services, err := newAppServices()
	if err != nil {
		return err
	}
	defer services.close()

	if err := services.operator.LockPool(
		context.Background(), ctx.String("pool"), ctx.String("authority"),
	); err != nil {
		return err
	}

	fmt.Println("pool locked")
	return nil
}

func poolUnlockAction(ctx *cli.Context) error {
	services, err := newAppServices()
	if err != nil {
		return err
	}
	defer services.close()

	if err := services.operator.UnlockPool(
		context.Background(), ctx.String("pool"), ctx.String("authority"),
	); err != nil {
		return err
	}

	fmt.Println("pool unlocked")
	return nil
}

func poolTradesAction(ctx *cli.Context) error {
	services, err := newAppServices()
	if err != nil {
		return err
	}
	defer services.close()

	trades, err := services.operator.ListTrades(
		context.Background(), ctx.String("pool"),
	)
	if err != nil {
		return err
	}

	printRespJSON(trades)
	return nil
}
