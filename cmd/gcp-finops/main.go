package main

import (
	"fmt"
	"os"

	"github.com/diillson/gcp-finops-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/gcp-finops-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/gcp-finops-dashboard-go/internal/adapter/driven/gcp"
	"github.com/diillson/gcp-finops-dashboard-go/internal/adapter/driven/kube"
	"github.com/diillson/gcp-finops-dashboard-go/internal/adapter/driven/rates"
	"github.com/diillson/gcp-finops-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/gcp-finops-dashboard-go/internal/application/usecase"
	"github.com/diillson/gcp-finops-dashboard-go/pkg/console"
	"github.com/diillson/gcp-finops-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	gcpRepo := gcp.NewGCPRepository()
	kubeRepo := kube.NewKubeRepository("")
	ratesRepo := rates.NewRatesRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		gcpRepo,
		kubeRepo,
		ratesRepo,
		configRepo,
		exportRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetReportUseCase(reportUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
