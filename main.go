package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/status-im/katana-prices/config"
	"github.com/status-im/katana-prices/core"
	"github.com/status-im/katana-prices/logging"
)

var (
	configPath string
	rpcURL     string
	wallet     string
	logLevel   string
	withDelay  bool
	showReport bool
)

func main() {
	// Values from .env are visible to the env overrides; a missing file is fine
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "katana-prices",
		Short:         "Read Katana covered call token prices from Solana",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the yaml config file")
	root.PersistentFlags().StringVar(&rpcURL, "rpc", "", "Solana RPC endpoint, overrides config and "+config.EnvRPCURL)
	root.PersistentFlags().StringVar(&wallet, "wallet", "", "read-only wallet address, overrides config and "+config.EnvWallet)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	priceCmd := &cobra.Command{
		Use:   "price <underlying-mint>",
		Short: "Print the current price of one underlying asset",
		Args:  cobra.ExactArgs(1),
		RunE:  runPrice,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the covered call price list",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	listCmd.Flags().BoolVar(&withDelay, "with-delay", false, "pause between tokens to stay under RPC rate limits")
	listCmd.Flags().BoolVar(&showReport, "report", false, "also print the tokens that were skipped")

	root.AddCommand(priceCmd, listCmd)
	return root
}

func runPrice(cmd *cobra.Command, args []string) error {
	service, logger, err := newService()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signalContext()
	defer cancel()

	info, err := service.GetPriceByUnderlyingMint(ctx, args[0])
	if err != nil {
		logger.Error("Failed to get price", zap.String("mint", args[0]), zap.Error(err))
		return err
	}
	return printJSON(info)
}

func runList(cmd *cobra.Command, args []string) error {
	service, logger, err := newService()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signalContext()
	defer cancel()

	if showReport {
		report, err := service.GetCoveredCallReport(ctx, withDelay)
		if err != nil {
			logger.Error("Failed to build price list", zap.Error(err))
			return err
		}
		return printJSON(report)
	}

	prices, err := service.GetCoveredCallPriceList(ctx, withDelay)
	if err != nil {
		logger.Error("Failed to build price list", zap.Error(err))
		return err
	}
	return printJSON(prices)
}

func newService() (*core.PriceService, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating logger: %w", err)
	}

	service, err := core.NewPriceService(cfg, logger)
	if err != nil {
		logger.Error("Failed to create price service", zap.Error(err))
		return nil, nil, err
	}
	return service, logger, nil
}

// loadConfig reads the config file when present, then applies env and flag overrides
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("cannot access config file: %w", err)
	}

	cfg.ApplyEnvOverrides()
	if rpcURL != "" {
		cfg.RPC.Endpoint = rpcURL
	}
	if wallet != "" {
		cfg.WalletAddress = wallet
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	return cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
