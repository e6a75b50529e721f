package app

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	evmClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor/gas"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor/signAndSend"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor/transaction"
	"github.com/sygmaprotocol/sygma-core/crypto/secp256k1"
	"github.com/sygmaprotocol/sygma-core/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/triggerfi/triggerfi/api"
	"github.com/triggerfi/triggerfi/api/handlers"
	"github.com/triggerfi/triggerfi/cache"
	"github.com/triggerfi/triggerfi/chains/evm"
	"github.com/triggerfi/triggerfi/chains/evm/calls/contracts"
	"github.com/triggerfi/triggerfi/chains/evm/predicate"
	"github.com/triggerfi/triggerfi/condition"
	"github.com/triggerfi/triggerfi/config"
	"github.com/triggerfi/triggerfi/filler"
	"github.com/triggerfi/triggerfi/health"
	"github.com/triggerfi/triggerfi/keeper"
	"github.com/triggerfi/triggerfi/metrics"
	"github.com/triggerfi/triggerfi/registry"
)

var Version string

func Run() error {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)

	var configuration *config.Config
	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(nil)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, nil)
		panicOnError(err)
	}

	logLevel, err := zerolog.ParseLevel(configuration.KeeperConfig.LogLevel)
	panicOnError(err)
	observability.ConfigureLogger(logLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	registryPath := viper.GetString(config.RegistryFlagName)
	if registryPath == "" {
		registryPath = configuration.KeeperConfig.RegistryPath
	}
	db, err := registry.OpenSQLite(registryPath)
	panicOnError(err)
	orderRegistry, err := registry.NewRegistry(db)
	panicOnError(err)
	log.Info().Msgf("Successfully opened order registry at %s", registryPath)

	go health.StartHealthEndpoint(configuration.KeeperConfig.HealthPort)

	mp, err := observability.InitMetricProvider(context.Background(), configuration.KeeperConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := metric.WithAttributes(
		attribute.String("env", configuration.KeeperConfig.Env),
		attribute.String("id", configuration.KeeperConfig.Id),
		attribute.String("version", Version),
	)
	keeperMetrics, err := metrics.NewKeeperMetrics(ctx, mp.Meter("keeper-metric-provider"), opts)
	panicOnError(err)

	if len(configuration.ChainConfigs) != 1 {
		panic(fmt.Errorf("expected exactly one chain config, got %d", len(configuration.ChainConfigs)))
	}
	chainConfig := configuration.ChainConfigs[0]
	if chainConfig["type"] != "evm" {
		panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
	}

	chainCfg, err := evm.NewEVMConfig(chainConfig)
	panicOnError(err)

	kp, err := secp256k1.NewKeypairFromString(chainCfg.GeneralChainConfig.Key)
	panicOnError(err)
	client, err := evmClient.NewEVMClient(chainCfg.GeneralChainConfig.Endpoint, kp)
	panicOnError(err)
	log.Info().
		Uint64("chain", *chainCfg.GeneralChainConfig.Id).
		Str("keeper", kp.CommonAddress().Hex()).
		Msg("Connected to chain")

	gasPricer := gas.NewStaticGasPriceDeterminant(client, nil)
	t := signAndSend.NewSignAndSendTransactor(transaction.NewTransaction, gasPricer, client)

	gasLimit := chainCfg.GasLimit.Uint64()
	limitOrderContract := contracts.NewLimitOrderContract(client, chainCfg.LimitOrderProtocol, t, gasLimit)
	predicateStoreContract := contracts.NewPredicateStoreContract(client, chainCfg.PredicateStore, t, gasLimit)

	feePerUpdate, ok := new(big.Int).SetString(configuration.KeeperConfig.FeePerUpdate, 10)
	if !ok {
		panic(fmt.Errorf("invalid feePerUpdate %q", configuration.KeeperConfig.FeePerUpdate))
	}

	resultChn := make(chan cache.Result, 32)
	predicateCache := cache.NewPredicateCache(ctx, resultChn)

	evaluator := condition.NewEvaluator(nil)
	k := keeper.NewKeeper(
		orderRegistry,
		evaluator,
		predicateStoreContract,
		keeperMetrics,
		// nolint:gosec
		time.Duration(configuration.KeeperConfig.UpdateInterval)*time.Second,
		feePerUpdate,
		resultChn,
	)
	go k.Start(ctx)

	f := filler.NewFiller(
		orderRegistry,
		limitOrderContract,
		predicateStoreContract,
		predicateCache,
		keeperMetrics,
		client,
		chainCfg.GeneralChainConfig.BlockConfirmations,
		// nolint:gosec
		time.Duration(chainCfg.GeneralChainConfig.Blocktime)*time.Second,
		chainCfg.BlockRetryInterval,
		kp.CommonAddress().Hex(),
	)
	go f.Watch(ctx)

	chainId := new(big.Int).SetUint64(*chainCfg.GeneralChainConfig.Id)
	encoder := predicate.NewEncoder(chainCfg.PredicateStore)
	orderHandler := handlers.NewOrderHandler(
		orderRegistry,
		encoder,
		limitOrderContract,
		f,
		chainCfg.Tokens,
		chainId,
		chainCfg.LimitOrderProtocol,
	)
	predicateHandler := handlers.NewPredicateHandler(orderRegistry, predicateCache)
	go api.Serve(ctx, configuration.KeeperConfig.ApiAddr, orderHandler, predicateHandler)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	keeperName := viper.GetString("name")
	log.Info().Msgf("Started keeper: %s with address: %s. Version: v%s", keeperName, kp.CommonAddress().Hex(), Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
