package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finops-tools/aws-cost-report/internal/application/usecase"
	"github.com/finops-tools/aws-cost-report/internal/domain/repository"
	"github.com/finops-tools/aws-cost-report/internal/shared/types"
	"github.com/finops-tools/aws-cost-report/pkg/version"
)

// CostRepositoryFactory constrói um CostRepository para o profile indicado.
// Profile vazio usa a cadeia de credenciais padrão do SDK.
type CostRepositoryFactory func(ctx context.Context, profile string) (repository.CostRepository, error)

// DeliveryRepositoryFactory constrói um DeliveryRepository para a URL do
// webhook resolvida em tempo de execução.
type DeliveryRepositoryFactory func(url string) repository.DeliveryRepository

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd     *cobra.Command
	newCostRepo CostRepositoryFactory
	newDelivery DeliveryRepositoryFactory
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
	version     string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(
	versionStr string,
	newCostRepo CostRepositoryFactory,
	newDelivery DeliveryRepositoryFactory,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *CLIApp {
	app := &CLIApp{
		newCostRepo: newCostRepo,
		newDelivery: newDelivery,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
		version:     versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "aws-cost-report",
		Short:   "Post an AWS month-over-month cost report to Slack",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Cost Report version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile to use (default: SDK credential chain)")
	rootCmd.PersistentFlags().String("webhook-url", "", "Slack webhook URL (default: SLACK_WEBHOOK_URL env var)")
	rootCmd.PersistentFlags().IntP("top", "t", 10, "Number of most expensive services to compare")
	rootCmd.PersistentFlags().IntP("lookback-days", "l", 180, "Lookback window in days, ending at the first day of the current month")
	rootCmd.PersistentFlags().BoolP("budgets", "b", false, "Include a budget status section in the report")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Also archive the report locally: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for archived report files (without extension)")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save archived report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Render the report and print it without sending to Slack")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct, merging in
// values from the configuration file where flags were left at their default.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	profile, _ := flags.GetString("profile")
	webhookURL, _ := flags.GetString("webhook-url")
	top, _ := flags.GetInt("top")
	lookbackDays, _ := flags.GetInt("lookback-days")
	budgets, _ := flags.GetBool("budgets")
	reportType, _ := flags.GetStringSlice("report-type")
	reportName, _ := flags.GetString("report-name")
	dir, _ := flags.GetString("dir")
	dryRun, _ := flags.GetBool("dry-run")

	args := &types.CLIArgs{
		ConfigFile:   configFile,
		Profile:      profile,
		WebhookURL:   webhookURL,
		TopServices:  top,
		LookbackDays: lookbackDays,
		Budgets:      budgets,
		ReportType:   reportType,
		ReportName:   reportName,
		Dir:          dir,
		DryRun:       dryRun,
	}

	if configFile != "" {
		cfg, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		mergeConfig(args, cfg, flags.Changed)
	}

	if args.WebhookURL == "" {
		args.WebhookURL = os.Getenv("SLACK_WEBHOOK_URL")
	}

	if args.Dir != "" {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	}

	return args, nil
}

// mergeConfig aplica valores do arquivo de configuração aos argumentos cujas
// flags não foram informadas explicitamente.
func mergeConfig(args *types.CLIArgs, cfg *types.Config, changed func(string) bool) {
	if !changed("profile") && cfg.Profile != "" {
		args.Profile = cfg.Profile
	}
	if !changed("webhook-url") && cfg.WebhookURL != "" {
		args.WebhookURL = cfg.WebhookURL
	}
	if !changed("top") && cfg.TopServices > 0 {
		args.TopServices = cfg.TopServices
	}
	if !changed("lookback-days") && cfg.LookbackDays > 0 {
		args.LookbackDays = cfg.LookbackDays
	}
	if !changed("budgets") && cfg.Budgets {
		args.Budgets = true
	}
	if !changed("report-type") && len(cfg.ReportType) > 0 {
		args.ReportType = cfg.ReportType
	}
	if !changed("report-name") && cfg.ReportName != "" {
		args.ReportName = cfg.ReportName
	}
	if !changed("dir") && cfg.Dir != "" {
		args.Dir = cfg.Dir
	}
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner()

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	args, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	costRepo, err := app.newCostRepo(ctx, args.Profile)
	if err != nil {
		return err
	}

	uc := usecase.NewReportUseCase(
		costRepo,
		app.newDelivery(args.WebhookURL),
		app.exportRepo,
		app.console,
	)

	result := uc.Run(ctx, args)
	app.console.Printf("{\"statusCode\": %d, \"body\": %s}\n", result.StatusCode, result.Body)

	if result.StatusCode != 200 {
		os.Exit(1)
	}
	return nil
}
