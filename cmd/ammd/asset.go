package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tdex-network/ammd/internal/core/ports"
)

var (
	asset = cli.Command{
		Name:  "asset",
		Usage: "manage assets on the embedded ledger",
		Subcommands: []*cli.Command{
			assetCreateCmd, assetMintCmd,
		},
	}

	assetCreateCmd = &cli.Command{
		Name:  "create",
		Usage: "register a new asset with its minting authority",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "asset",
				Usage:    "the asset hash in hex format",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "authority",
				Usage:    "the address allowed to mint the asset",
				Required: true,
			},
			&cli.UintFlag{
				Name:  "decimals",
				Usage: "the decimal precision of the asset",
				Value: 8,
			},
		},
		Action: assetCreateAction,
	}

	assetMintCmd = &cli.Command{
		Name:  "mint",
		Usage: "issue units of an asset to a user, signing as its authority",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "asset",
				Usage:    "the asset hash in hex format",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "authority",
				Usage:    "the minting authority of the asset",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "the user receiving the minted units",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     "amount",
				Usage:    "the amount to mint, in asset base units",
				Required: true,
			},
		},
		Action: assetMintAction,
	}
)

func assetCreateAction(ctx *cli.Context) error {
	services, err := newAppServices()
	if err != nil {
		return err
	}
	defer services.close()

	if err := services.ledger.CreateMint(
		context.Background(),
		ctx.String("asset"), ctx.String("authority"), ctx.Uint("decimals"),
	); err != nil {
		return err
	}

	fmt.Println("asset created")
	return nil
}

func assetMintAction(ctx *cli.Context) error {
	services, err := newAppServices()
	if err != nil {
		return err
	}
	defer services.close()

	bgCtx := context.Background()
	assetHash := ctx.String("asset")
	addr, err := services.ensureAccount(bgCtx, ctx.String("to"), assetHash)
	if err != nil {
		return err
	}

	if err := services.ledger.Transact(bgCtx, func(tx ports.LedgerTx) error {
		return tx.Mint(
			assetHash, addr, ctx.Uint64("amount"),
			ports.SignerFromAddress(ctx.String("authority")),
		)
	}); err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{
		"asset":   assetHash,
		"account": addr,
		"amount":  ctx.Uint64("amount"),
	})
	return nil
}
