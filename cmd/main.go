package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"shiftbill/app"
	"shiftbill/internal/config"
	"shiftbill/internal/service"
)

func main() {
	_ = godotenv.Load()

	logger := slog.Default()

	cfgPath := os.Getenv("SHIFTBILL_CONFIG")
	if cfgPath == "" {
		cfgPath = "shiftbill.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Warn("config not loaded, using defaults", "path", cfgPath, "err", err)
		cfg = config.Default()
	}

	workbook := service.NewWorkbook(cfg.RateTable(), cfg.Adjustments())

	a := app.New(logger, workbook, cfg.Details)
	if host := os.Getenv("SHIFTBILL_HOST"); host != "" {
		a = a.WithHost(host)
	}
	if port, err := strconv.ParseUint(os.Getenv("SHIFTBILL_PORT"), 10, 16); err == nil {
		a = a.WithPort(uint(port))
	}

	// Run the server
	err = a.Serve()
	if err != nil {
		fmt.Println(err)
	}
}
