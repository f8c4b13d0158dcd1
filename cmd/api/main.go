package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rbezerra/corretora-financeiro-api/infrastructure/database/postgres"
	"github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe"
	"github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/frappeclient"
	"github.com/rbezerra/corretora-financeiro-api/infrastructure/repository"
	"github.com/rbezerra/corretora-financeiro-api/internal/api"
	"github.com/rbezerra/corretora-financeiro-api/internal/config"
	"github.com/rbezerra/corretora-financeiro-api/internal/scheduler"
	"github.com/rbezerra/corretora-financeiro-api/internal/usecases/authenticating"
	"github.com/rbezerra/corretora-financeiro-api/internal/usecases/financeiro"
	"github.com/rbezerra/corretora-financeiro-api/internal/usecases/metas"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	frappeClient := frappeclient.NewClient(cfg)
	frappeIntegrator := frappe.New(cfg, frappeClient)

	financeiroService := financeiro.NewService(frappeIntegrator, snapshotRepo)
	metasService := metas.NewService(frappeIntegrator)

	snapshotSyncService := scheduler.NewSnapshotSyncService(
		financeiroService,
		snapshotRepo,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots financeiros")
	} else {
		logrus.Info("Agendador de snapshots financeiros iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		financeiroService,
		metasService,
		frappeIntegrator,
		authenticator,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
