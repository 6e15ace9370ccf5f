package cli

import (
	"context"
	"path/filepath"

	"github.com/diillson/gcp-finops-dashboard-go/pkg/version"

	"github.com/diillson/gcp-finops-dashboard-go/internal/application/usecase"
	"github.com/diillson/gcp-finops-dashboard-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "gcp-finops",
		Short:   "GCP FinOps Dashboard CLI",
		Long:    "Read-only inventory and cost estimation report for a single GCP project.",
		Version: formattedVersion, // Use a versão formatada
		RunE:    app.runCommand,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "GCP FinOps Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("project", "p", "", "GCP project ID to report on (default: active gcloud project)")
	rootCmd.PersistentFlags().StringP("currency", "c", "", "Currency code for converted cost figures, e.g. INR, EUR, BRL (default: INR)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf (default: csv)")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("skip-workloads", false, "Skip the Kubernetes workload summary")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	project, _ := app.rootCmd.Flags().GetString("project")
	currency, _ := app.rootCmd.Flags().GetString("currency")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	skipWorkloads, _ := app.rootCmd.Flags().GetBool("skip-workloads")

	// Vazio delega ao exportador, que usa o diretório corrente
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:    configFile,
		Project:       project,
		Currency:      currency,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
		SkipWorkloads: skipWorkloads,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Executa o relatório
	ctx := context.Background()
	return app.reportUseCase.RunReport(ctx, cliArgs)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}
