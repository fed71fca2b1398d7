package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drakonoslav/bulk-coach-sub003/api"
	"github.com/drakonoslav/bulk-coach-sub003/external/healthsync"
	"github.com/drakonoslav/bulk-coach-sub003/schema"
	"github.com/drakonoslav/bulk-coach-sub003/store"
	"github.com/drakonoslav/bulk-coach-sub003/utils"
)

func initConfig() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("coach")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		log.WithError(err).Warn("no config file; relying on environment")
	}

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("mongo.database", "bulkcoach")
}

func main() {
	initConfig()

	if viper.GetBool("log.debug") {
		log.SetLevel(log.DebugLevel)
	}
	log.SetFormatter(&log.JSONFormatter{})

	if err := utils.InitI18NBundle(); err != nil {
		log.WithError(err).Fatal("init i18n bundle")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	connURI := viper.GetString("mongo.conn")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	if err != nil {
		log.WithError(err).Fatal("connect to mongo")
	}
	database := viper.GetString("mongo.database")

	if err := schema.NewMongoDBIndexer(connURI, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("create mongo indexes")
	}

	coachStore := store.NewMongoStore(client, database)
	healthSync := healthsync.NewClient(viper.GetString("healthsync.endpoint"))

	server := api.NewServer(coachStore, healthSync, viper.GetBool("server.trace"))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown server")
		}
		if err := coachStore.Close(); err != nil {
			log.WithError(err).Error("close store")
		}
	}()

	log.WithField("addr", viper.GetString("server.addr")).Info("starting readiness api")
	if err := server.Run(viper.GetString("server.addr")); err != nil {
		log.WithError(err).Error("server stopped")
	}
}
