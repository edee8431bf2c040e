package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile   string
	Profile      string
	WebhookURL   string
	TopServices  int
	LookbackDays int
	Budgets      bool
	DryRun       bool
	ReportName   string
	ReportType   []string
	Dir          string
}
