package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/akoskissak/student-canteen/canteen/config"
	"github.com/akoskissak/student-canteen/canteen/internal/handler"
	"github.com/akoskissak/student-canteen/canteen/internal/repository"
	"github.com/akoskissak/student-canteen/canteen/internal/server"
	"github.com/akoskissak/student-canteen/canteen/internal/service"
	"github.com/akoskissak/student-canteen/canteen/migrations"
	"github.com/akoskissak/student-canteen/pkg/circuit_breaker"
	"github.com/akoskissak/student-canteen/pkg/kafka"
	"github.com/akoskissak/student-canteen/pkg/logger"
	"github.com/akoskissak/student-canteen/pkg/postgres"
)

func Run(cfg config.Config) error { //nolint:gocritic
	log := logger.NewLogger(cfg.Log, "canteen")
	defer log.Sync() //nolint:errcheck

	var (
		repo repository.Repository
		db   *pgxpool.Pool
	)
	switch cfg.Store.Driver {
	case repository.DriverPostgres:
		var err error
		db, err = postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			return fmt.Errorf("db init %v", err)
		}
		defer db.Close()
		repo = repository.NewPostgresRepository(db, log)
	case repository.DriverMemory, "":
		repo = repository.NewMemoryRepository(log)
	default:
		return fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	log.Info("store ready", zap.String("driver", cfg.Store.Driver))

	var enqueuer kafka.Enqueuer = kafka.NopEnqueuer{}
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer %v", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				log.Error("producer.Close", zap.Error(err))
			}
		}()
		enqueuer = kafka.NewEnqueuer(producer, circuit_breaker.New(cfg.Breaker))
		log.Info("publishing events", zap.Strings("brokers", cfg.Kafka.Addrs))
	}

	svc := service.NewService(repo, enqueuer, log, service.WithLocation(cfg.Location()))
	h := handler.New(svc, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}
