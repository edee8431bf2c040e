package types

import "errors"

var (
	// ErrNoCostData indicates the billing query failed or returned nothing.
	ErrNoCostData = errors.New("no cost data returned by Cost Explorer")

	// ErrInsufficientHistory indicates fewer than two billed months were
	// returned, so there is nothing to compare against.
	ErrInsufficientHistory = errors.New("at least two months of cost history are required")

	// ErrWebhookURLMissing indicates no Slack webhook URL was configured.
	ErrWebhookURLMissing = errors.New("SLACK_WEBHOOK_URL is not set")
)
