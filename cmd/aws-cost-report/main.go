package main

import (
	"context"
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"

	awsadapter "github.com/finops-tools/aws-cost-report/internal/adapter/driven/aws"
	"github.com/finops-tools/aws-cost-report/internal/adapter/driven/config"
	"github.com/finops-tools/aws-cost-report/internal/adapter/driven/export"
	"github.com/finops-tools/aws-cost-report/internal/adapter/driven/slack"
	"github.com/finops-tools/aws-cost-report/internal/adapter/driving/cli"
	"github.com/finops-tools/aws-cost-report/internal/domain/repository"
	"github.com/finops-tools/aws-cost-report/pkg/console"
	"github.com/finops-tools/aws-cost-report/pkg/version"
)

func main() {
	// Carrega variáveis de um .env local, se existir
	_ = godotenv.Load()

	// Fábrica do repositório de custos: os clientes AWS são construídos
	// aqui e injetados, nunca em estado global de pacote.
	newCostRepo := func(ctx context.Context, profile string) (repository.CostRepository, error) {
		opts := []func(*awsconfig.LoadOptions) error{}
		if profile != "" {
			opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return awsadapter.NewCostRepositoryFromConfig(cfg), nil
	}

	app := cli.NewCLIApp(
		version.Version,
		newCostRepo,
		slack.NewWebhookRepository,
		export.NewExportRepository(),
		config.NewConfigRepository(),
		console.NewConsole(),
	)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
