package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"

	"github.com/novinbank/ledger/config"
	"github.com/novinbank/ledger/infra"
	infrarepo "github.com/novinbank/ledger/infra/repository"
	accountsvc "github.com/novinbank/ledger/pkg/service/account"
	customersvc "github.com/novinbank/ledger/pkg/service/customer"
	"github.com/novinbank/ledger/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()
	cfg, err := config.LoadAppConfig(logger, ".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	uow := infrarepo.NewUoW(db)
	customerSvc := customersvc.NewService(uow, logger)
	accountSvc := accountsvc.NewService(uow, nil, nil, logger)

	app := webapi.NewApp(customerSvc, accountSvc, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Scheme,
	)

	return app.Listen(addr)
}
