package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/saeidalz13/battleship-referee/api"
	"github.com/saeidalz13/battleship-referee/db"
	"github.com/saeidalz13/battleship-referee/db/sqlc"
	"github.com/saeidalz13/battleship-referee/internal/config"
	"github.com/saeidalz13/battleship-referee/internal/logger"
	mb "github.com/saeidalz13/battleship-referee/models/battleship"
	mc "github.com/saeidalz13/battleship-referee/models/connection"
)

func init() {
	logger.Init()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("failed to load config:", err)
	}

	var querier sqlc.Querier
	if cfg.AnalyticsEnabled() {
		psqlDb := db.MustConnectToDb(cfg.DatabaseUrl, cfg.MigrationDir)
		defer psqlDb.Close()
		querier = sqlc.New(psqlDb)
	} else {
		log.Warn("DATABASE_URL is empty; analytics is disabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bgm := mb.NewBattleshipGameManager()
	bsm := mc.NewBattleshipSessionManager()
	go bsm.CleanupPeriodically(ctx)

	rp := api.NewRequestProcessor(bsm, bgm, querier)
	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: api.NewRouter(rp, bgm, bsm),
	}

	go func() {
		log.WithFields(log.Fields{"addr": cfg.Addr(), "stage": cfg.Stage}).Info("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalln(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorln("failed to shut down:", err)
	}
}
