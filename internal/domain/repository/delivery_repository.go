package repository

import (
	"context"

	"github.com/finops-tools/aws-cost-report/internal/domain/entity"
)

// DeliveryRepository defines the interface for posting a finished report to
// its destination channel.
type DeliveryRepository interface {
	Send(ctx context.Context, blocks []entity.Block) ([]byte, error)
}
