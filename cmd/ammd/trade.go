package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/tdex-network/ammd/internal/core/application"
)

var (
	deposit = cli.Command{
		Name:  "deposit",
		Usage: "deposit into a pool in exchange for claim tokens",
		Flags: []cli.Flag{
			poolFlag, userFlag,
			&cli.Uint64Flag{
				Name:     "amount",
				Usage:    "the quantity of claim tokens to be issued",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     "max_x",
				Usage:    "the ceiling on the first asset contribution",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     "max_y",
				Usage:    "the ceiling on the second asset contribution",
				Required: true,
			},
		},
		Action: depositAction,
	}

	swap = cli.Command{
		Name:  "swap",
		Usage: "swap one asset of a pool for the other",
		Flags: []cli.Flag{
			poolFlag, userFlag, supplyYFlag,
			&cli.Uint64Flag{
				Name:     "amount",
				Usage:    "the amount supplied, in asset base units",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:  "min_out",
				Usage: "the floor on the received amount",
			},
		},
		Action: swapAction,
	}

	preview = cli.Command{
		Name:  "preview",
		Usage: "price a swap without moving funds",
		Flags: []cli.Flag{
			poolFlag, supplyYFlag,
			&cli.Uint64Flag{
				Name:     "amount",
				Usage:    "the amount supplied, in asset base units",
				Required: true,
			},
			&cli.BoolFlag{
				Name: "amount_is_out",
				Usage: "treat the amount as the desired received amount " +
					"and quote the required input",
			},
		},
		Action: previewAction,
	}

	balance = cli.Command{
		Name:  "balance",
		Usage: "check the balance of a user for an asset",
		Flags: []cli.Flag{
			userFlag,
			&cli.StringFlag{
				Name:     "asset",
				Usage:    "the asset hash in hex format",
				Required: true,
			},
		},
		Action: balanceAction,
	}

	userFlag = &cli.StringFlag{
		Name:     "user",
		Usage:    "the user signing the operation",
		Required: true,
	}
	supplyYFlag = &cli.BoolFlag{
		Name:  "supply_y",
		Usage: "supply the second asset of the pair instead of the first",
	}
)

func depositAction(ctx *cli.Context) error {
	services, err := newAppServices()
	if err != nil {
		return err
	}
	defer services.close()

	bgCtx := context.Background()
	poolName, user := ctx.String("pool"), ctx.String("user")

	info, err := services.operator.GetPoolInfo(bgCtx, poolName)
	if err != nil {
		return err
	}
	// the claim tokens need somewhere to land.
	if _, err := services.ensureAccount(
		bgCtx, user, info.ClaimAsset,
	); err != nil {
		return err
	}

	res, err := services.trade.Deposit(bgCtx, application.DepositArgs{
		PoolName: poolName,
		User:     user,
		Amount:   ctx.Uint64("amount"),
		MaxX:     ctx.Uint64("max_x"),
		MaxY:     ctx.Uint64("max_y"),
	})
	if err != nil {
		return err
	}

	printRespJSON(res)
	return nil
}

func swapAction(ctx *cli.Context) error {
	services, err := newAppServices()
	if err != nil {
		return err
	}
	defer services.close()

	bgCtx := context.Background()
	poolName, user := ctx.String("pool"), ctx.String("user")
	supplyX := !ctx.Bool("supply_y")

	info, err := services.operator.GetPoolInfo(bgCtx, poolName)
	if err != nil {
		return err
	}
	assetOut := info.AssetY
	if !supplyX {
		assetOut = info.AssetX
	}
	if _, err := services.ensureAccount(bgCtx, user, assetOut); err != nil {
		return err
	}

	res, err := services.trade.Swap(bgCtx, application.SwapArgs{
		PoolName: poolName,
		User:     user,
		SupplyX:  supplyX,
		AmountIn: ctx.Uint64("amount"),
		MinOut:   ctx.Uint64("min_out"),
	})
	if err != nil {
		return err
	}

	printRespJSON(res)
	return nil
}

func previewAction(ctx *cli.Context) error {
	services, err := newAppServices()
	if err != nil {
		return err
	}
	defer services.close()

	res, err := services.trade.PreviewSwap(
		context.Background(), application.PreviewArgs{
			PoolName:    ctx.String("pool"),
			SupplyX:     !ctx.Bool("supply_y"),
			Amount:      ctx.Uint64("amount"),
			AmountIsOut: ctx.Bool("amount_is_out"),
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(res)
	return nil
}

func balanceAction(ctx *cli.Context) error {
	services, err := newAppServices()
	if err != nil {
		return err
	}
	defer services.close()

	bgCtx := context.Background()
	addr := services.ledger.AccountAddress(
		ctx.String("user"), ctx.String("asset"),
	)
	amount, err := services.ledger.GetBalance(bgCtx, addr)
	if err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{
		"account": addr,
		"balance": amount,
	})
	return nil
}
