package main

import (
	"fmt"
	"net/http"
	"os"

	"gioui.org/app"

	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core"
	appLogger "github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core/logger"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/services"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/ui"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/ui/pages"
)

func main() {
	go func() {
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Erro fatal: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run() error {
	cfg, err := core.LoadConfig("")
	if err != nil {
		return core.WrapErrorf(err, "falha ao carregar configuração")
	}

	if err := appLogger.SetupLogger(cfg); err != nil {
		return core.WrapErrorf(err, "falha ao configurar logger")
	}
	appLogger.Infof("%s v%s iniciando. API: %s", cfg.AppName, cfg.AppVersion, cfg.APIBaseURL)

	clienteService := services.NewClienteService(cfg.APIBaseURL, http.DefaultClient)

	window := ui.NewAppWindow(cfg)
	page := pages.NewMonitorPage(window, clienteService, cfg)
	window.SetPage(page)

	return window.Run()
}
