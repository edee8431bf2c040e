package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finops-tools/aws-cost-report/internal/domain/entity"
	"github.com/finops-tools/aws-cost-report/internal/shared/types"
)

func sampleBlocks() []entity.Block {
	return []entity.Block{
		entity.NewHeaderBlock("AWS Cost Analysis: 2024-06 vs 2024-05"),
		entity.NewSectionBlock("*EC2*\nCurrent: $120.00"),
		entity.NewDividerBlock(),
	}
}

func TestSend(t *testing.T) {
	var received map[string][]entity.Block
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	repo := NewWebhookRepository(server.URL)
	body, err := repo.Send(context.Background(), sampleBlocks())
	require.NoError(t, err)

	assert.Equal(t, []byte("ok"), body)
	require.Len(t, received["blocks"], 3)
	assert.Equal(t, "header", received["blocks"][0].Type)
	assert.Equal(t, "divider", received["blocks"][2].Type)
	assert.Nil(t, received["blocks"][2].Text)
}

func TestSend_MissingURL(t *testing.T) {
	repo := NewWebhookRepository("")

	_, err := repo.Send(context.Background(), sampleBlocks())
	assert.ErrorIs(t, err, types.ErrWebhookURLMissing)
}

func TestSend_Non200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer server.Close()

	repo := NewWebhookRepository(server.URL)
	_, err := repo.Send(context.Background(), sampleBlocks())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-200 status code: 400")
}

func TestSend_TransportError(t *testing.T) {
	// Porta fechada: o POST falha no nível de transporte
	repo := NewWebhookRepository("http://127.0.0.1:1")

	_, err := repo.Send(context.Background(), sampleBlocks())
	assert.Error(t, err)
}
