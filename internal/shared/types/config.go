package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Profile      string   `json:"profile" yaml:"profile" toml:"profile"`
	WebhookURL   string   `json:"webhook_url" yaml:"webhook_url" toml:"webhook_url"`
	TopServices  int      `json:"top_services" yaml:"top_services" toml:"top_services"`
	LookbackDays int      `json:"lookback_days" yaml:"lookback_days" toml:"lookback_days"`
	Budgets      bool     `json:"budgets" yaml:"budgets" toml:"budgets"`
	ReportName   string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType   []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir          string   `json:"dir" yaml:"dir" toml:"dir"`
}
