package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/finops-tools/aws-cost-report/internal/domain/entity"
	"github.com/finops-tools/aws-cost-report/internal/domain/repository"
	"github.com/finops-tools/aws-cost-report/internal/shared/types"
)

// WebhookRepositoryImpl implementa o DeliveryRepository sobre um incoming
// webhook do Slack. Uma única tentativa de POST por envio, sem retry.
type WebhookRepositoryImpl struct {
	url    string
	client *http.Client
}

// NewWebhookRepository cria um novo WebhookRepository para a URL fornecida.
// A URL pode ser vazia; a ausência só é reportada no momento do envio.
func NewWebhookRepository(url string) repository.DeliveryRepository {
	return &WebhookRepositoryImpl{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// payload é o formato de wire do Slack: {"blocks": [...]}.
type payload struct {
	Blocks []entity.Block `json:"blocks"`
}

// Send serializa os blocos e faz o POST para o webhook. Retorna o corpo da
// resposta em caso de HTTP 200.
func (r *WebhookRepositoryImpl) Send(ctx context.Context, blocks []entity.Block) ([]byte, error) {
	if r.url == "" {
		return nil, types.ErrWebhookURLMissing
	}

	body, err := json.Marshal(payload{Blocks: blocks})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("slack webhook returned non-200 status code: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
