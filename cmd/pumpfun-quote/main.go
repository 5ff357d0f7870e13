// ====================================
// File: cmd/pumpfun-quote/main.go
// ====================================
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gagliardetto/solana-go"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/one887777777/pumpfun-rs/internal/blockchain/solbc"
	"github.com/one887777777/pumpfun-rs/internal/config"
	"github.com/one887777777/pumpfun-rs/internal/dex/pumpfun"
	"github.com/one887777777/pumpfun-rs/internal/logger"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00E5FF"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7280")).Width(24)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ECEFF4"))
	amountStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2AFFAA"))
)

func main() {
	configPath := pflag.String("config", "configs/config.json", "path to the client configuration file")
	amount := pflag.Uint64("amount", 1_000_000_000, "SOL contribution in lamports")
	globalOverride := pflag.String("global", "", "override for the global account address (base58)")
	pflag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		LogFile:     cfg.LogFile,
		MaxSize:     100,
		MaxAge:      7,
		MaxBackups:  3,
		Compress:    true,
		Development: cfg.DebugLogging,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log, *amount, *globalOverride); err != nil {
		log.Error("Quote failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger, amount uint64, globalOverride string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := solbc.NewClient(cfg.RPCList[0], cfg.CommitmentType(), log,
		solbc.WithRetryPolicy(uint(cfg.Retries), cfg.RetryDelay()))

	globalAddr, err := resolveGlobalAddress(globalOverride)
	if err != nil {
		return err
	}
	log.Debug("Using global account", zap.String("address", globalAddr.String()))

	// The account and the slot are independent reads; fetch them in parallel.
	var (
		global *pumpfun.GlobalAccount
		slot   uint64
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var fetchErr error
		global, fetchErr = pumpfun.FetchGlobalAccount(gCtx, client, globalAddr, log)
		return fetchErr
	})
	g.Go(func() error {
		var slotErr error
		slot, slotErr = client.GetSlot(gCtx)
		return slotErr
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if !global.Initialized {
		log.Warn("Global account is not initialized; quote is meaningless")
	}

	tokensOut, err := global.InitialBuyQuote(amount)
	if err != nil {
		return fmt.Errorf("failed to compute buy quote: %w", err)
	}

	printQuote(globalAddr, global, slot, amount, tokensOut)
	return nil
}

func resolveGlobalAddress(override string) (solana.PublicKey, error) {
	if override != "" {
		addr, err := solana.PublicKeyFromBase58(override)
		if err != nil {
			return solana.PublicKey{}, fmt.Errorf("invalid global account address: %w", err)
		}
		return addr, nil
	}
	addr, _, err := pumpfun.DeriveGlobalAddress()
	return addr, err
}

func printQuote(globalAddr solana.PublicKey, global *pumpfun.GlobalAccount, slot, amount, tokensOut uint64) {
	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	fmt.Println(headerStyle.Render("Pump.fun initial buy quote"))
	fmt.Println(row("Slot", fmt.Sprintf("%d", slot)))
	fmt.Println(row("Global account", globalAddr.String()))
	fmt.Println(row("Authority", global.Authority().String()))
	fmt.Println(row("Fee recipient", global.FeeRecipient().String()))
	fmt.Println(row("Fee basis points", fmt.Sprintf("%d", global.FeeBasisPoints)))
	fmt.Println(row("Virtual token reserves", fmt.Sprintf("%d", global.InitialVirtualTokenReserves)))
	fmt.Println(row("Virtual SOL reserves", fmt.Sprintf("%d", global.InitialVirtualSolReserves)))
	fmt.Println(row("Real token reserves", fmt.Sprintf("%d", global.InitialRealTokenReserves)))
	fmt.Println(row("SOL in (lamports)", fmt.Sprintf("%d", amount)))
	fmt.Println(labelStyle.Render("Tokens out") + amountStyle.Render(fmt.Sprintf("%d", tokensOut)))
}
