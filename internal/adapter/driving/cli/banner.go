package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/finops-tools/aws-cost-report/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
          /$$$$$$   /$$$$$$   /$$$$$$  /$$$$$$$$       /$$$$$$$  /$$$$$$$  /$$$$$$$$
         /$$__  $$ /$$__  $$ /$$__  $$|__  $$__/      | $$__  $$| $$__  $$|__  $$__/
        | $$  \__/| $$  \ $$| $$  \__/   | $$         | $$  \ $$| $$  \ $$   | $$
        | $$      | $$  | $$|  $$$$$$    | $$         | $$$$$$$/| $$$$$$$/   | $$
        | $$      | $$  | $$ \____  $$   | $$         | $$__  $$| $$____/    | $$
        | $$    $$| $$  | $$ /$$  \ $$   | $$         | $$  \ $$| $$         | $$
        |  $$$$$$/|  $$$$$$/|  $$$$$$/   | $$         | $$  | $$| $$         | $$
         \______/  \______/  \______/    |__/         |__/  |__/|__/         |__/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("AWS Cost Report (v%s)", formattedVersion)))
}
