// Command quickstart bundles a saved model, optionally publishes it to the
// model store bucket, registers it with a model server and runs one
// prediction. Everything is read from the environment:
//
//	QUICKSTART_FRAMEWORK   tensorflow, torch, pytorch, catboost, lightgbm or xgboost
//	QUICKSTART_MODEL       model name without the framework prefix
//	QUICKSTART_ARTIFACT    path of the saved model file or directory
//	QUICKSTART_INPUT       optional JSON file with columnar features
//	MODELSERVER_CLIENT_V1_* client settings, see modelserver.LoadConfig
//	MODELSERVER_STORE_*     bucket settings, publishing is skipped without a bucket
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/api"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/bundler"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/clients/modelserver"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/config"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/enums"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/logger"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/metric"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/objectstore"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/tracing"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	os.Exit(start())
}

func start() int {
	config.InitEnv("")
	viper.SetDefault("APP_NAME", "modelserver-quickstart")
	logger.InitFromEnv()
	defer logger.Close()
	if err := metric.InitFromEnv(); err != nil {
		log.Warn().Err(err).Msg("metrics disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tracing.InitFromEnv(ctx); err != nil {
		log.Warn().Err(err).Msg("tracing disabled")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tracing.Shutdown(shutdownCtx)
	}()

	if err := run(ctx); err != nil {
		log.Error().Err(err).Msg("quickstart failed")
		return 1
	}
	return 0
}

func run(ctx context.Context) error {
	framework, err := enums.ParseFramework(viper.GetString("QUICKSTART_FRAMEWORK"))
	if err != nil {
		return err
	}
	model := viper.GetString("QUICKSTART_MODEL")
	archive, err := bundler.Bundle(ctx, framework, model, viper.GetString("QUICKSTART_ARTIFACT"), bundler.DefaultOutDir)
	if err != nil {
		return err
	}
	log.Info().Str("archive", archive.Path).Int64("bytes", archive.Size).Msg("model bundled")

	if viper.IsSet(objectstore.DefaultEnvPrefix + "BUCKET") {
		if err := publish(ctx, archive); err != nil {
			return err
		}
	}

	transport, err := enums.ParseTransport(viper.GetString(modelserver.DefaultEnvPrefix + "TRANSPORT"))
	if err != nil {
		transport = enums.TransportHTTP
	}
	client := modelserver.InitClientFromEnv(transport)
	defer client.Close()

	if err := client.HealthCheck(ctx); err != nil {
		return err
	}
	name := archive.ModelName
	err = client.AddModel(ctx, name)
	if errors.Is(err, api.ErrAlreadyExists) {
		err = client.UpdateModel(ctx, name)
	}
	if err != nil {
		return err
	}
	log.Info().Str("model", name).Msg("model registered")

	inputPath := viper.GetString("QUICKSTART_INPUT")
	if inputPath == "" {
		return nil
	}
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	prediction, err := client.Predict(ctx, model, modelserver.PredictionInput(raw))
	if err != nil {
		return err
	}
	log.Info().Ints("classes", prediction.ArgMax()).Int("rows", prediction.Rows()).Msg("prediction")
	return nil
}

func publish(ctx context.Context, archive *bundler.Archive) error {
	conf, err := objectstore.LoadConfig(objectstore.DefaultEnvPrefix)
	if err != nil {
		return err
	}
	publisher, err := objectstore.NewPublisher(conf)
	if err != nil {
		return err
	}
	obj, err := publisher.Publish(ctx, archive)
	if err != nil {
		return err
	}
	log.Info().Str("bucket", obj.Bucket).Str("key", obj.Key).Msg("bundle published")
	return nil
}
