package cli

import (
	"fmt"

	"github.com/diillson/gcp-finops-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
          /$$$$$$   /$$$$$$  /$$$$$$$        /$$$$$$$$ /$$            /$$$$$$
         /$$__  $$ /$$__  $$| $$__  $$      | $$_____/|__/           /$$__  $$
        | $$  \__/| $$  \__/| $$  \ $$      | $$       /$$ /$$$$$$$ | $$  \ $$  /$$$$$$   /$$$$$$$
        | $$ /$$$$| $$      | $$$$$$$/      | $$$$$   | $$| $$__  $$| $$  | $$ /$$__  $$ /$$_____/
        | $$|_  $$| $$      | $$____/       | $$__/   | $$| $$  \ $$| $$  | $$| $$  \ $$|  $$$$$$
        | $$  \ $$| $$    $$| $$            | $$      | $$| $$  | $$| $$  | $$| $$  | $$ \____  $$
        |  $$$$$$/|  $$$$$$/| $$            | $$      | $$| $$  | $$|  $$$$$$/| $$$$$$$/ /$$$$$$$/
         \______/  \______/ |__/            |__/      |__/|__/  |__/ \______/ | $$____/ |_______/
                                                                              | $$
                                                                              | $$
                                                                              |__/
        `
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println(blue(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(cyan(fmt.Sprintf("GCP FinOps Dashboard CLI (v%s)", formattedVersion)))
}

// checkLatestVersion verifica se uma versão mais recente está disponível.
func checkLatestVersion(currentVersion string) {
	// Usa a função do pacote version para verificar por atualizações
	version.CheckLatestVersion(currentVersion)
}
