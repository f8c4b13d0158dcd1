package frappe

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	frappedomain "github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/domain"
	"github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/frappeclient"
	"github.com/rbezerra/corretora-financeiro-api/internal/config"
)

// fakeClient simula um backend cujo schema não possui a coluna tipo_meta
type fakeClient struct {
	rejectTipoMeta bool
	listCalls      [][]string
	insertPayloads []map[string]any
}

func (f *fakeClient) GetList(_ context.Context, _ string, fields []string) (json.RawMessage, error) {
	f.listCalls = append(f.listCalls, fields)

	if f.rejectTipoMeta && contains(fields, "tipo_meta") {
		return nil, &frappeclient.RequestError{
			StatusCode: 417,
			Body:       `{"exception":"pymysql.err.OperationalError: (1054, \"Unknown column 'tipo_meta' in 'field list'\")"}`,
		}
	}

	return json.RawMessage(`[{"name":"META-abc123","corretor":"Corretora","mes":"Janeiro","ano":2026,"valor_meta":40000}]`), nil
}

func (f *fakeClient) Insert(_ context.Context, _ string, doc any) (json.RawMessage, error) {
	payload := doc.(map[string]any)
	f.insertPayloads = append(f.insertPayloads, payload)

	if f.rejectTipoMeta {
		if _, ok := payload["tipo_meta"]; ok {
			return nil, &frappeclient.RequestError{
				StatusCode: 417,
				Body:       `{"exception":"Unknown column 'tipo_meta' in 'field list'"}`,
			}
		}
	}

	return json.RawMessage(`{"name":"META-xyz789","corretor":"Corretora","mes":"Janeiro","ano":2026,"valor_meta":40000}`), nil
}

func (f *fakeClient) Update(_ context.Context, _ string, _ string, _ any) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

func (f *fakeClient) Delete(_ context.Context, _ string, _ string) error {
	return nil
}

func (f *fakeClient) CallMethod(_ context.Context, _ string, _ map[string]string) (json.RawMessage, error) {
	return json.RawMessage(`[]`), nil
}

func contains(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}

func newTestConfig() *config.Config {
	return &config.Config{
		Frappe: config.Frappe{
			URL:              "http://localhost:8080",
			SupportsTipoMeta: true,
		},
	}
}

func TestListMetasFallbackSemTipoMeta(t *testing.T) {
	client := &fakeClient{rejectTipoMeta: true}
	service := New(newTestConfig(), client)

	metas, err := service.ListMetas(context.Background())
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "META-abc123", metas[0].Name)
	// Campo ausente cai no default Mensal
	assert.Equal(t, frappedomain.TipoMetaMensal, metas[0].Tipo())

	// Primeira chamada com tipo_meta, retry sem o campo
	require.Len(t, client.listCalls, 2)
	assert.True(t, contains(client.listCalls[0], "tipo_meta"))
	assert.False(t, contains(client.listCalls[1], "tipo_meta"))

	// A capacidade rebaixada é lembrada pelas chamadas seguintes
	_, err = service.ListMetas(context.Background())
	require.NoError(t, err)
	require.Len(t, client.listCalls, 3)
	assert.False(t, contains(client.listCalls[2], "tipo_meta"))
	assert.False(t, service.SupportsTipoMeta())
}

func TestCreateMetaFallbackSemTipoMeta(t *testing.T) {
	client := &fakeClient{rejectTipoMeta: true}
	service := New(newTestConfig(), client)

	created, err := service.CreateMeta(context.Background(), &frappedomain.Meta{
		Corretor:  frappedomain.CorretoraSentinela,
		Mes:       "Janeiro",
		Ano:       2026,
		ValorMeta: 40000,
		TipoMeta:  frappedomain.TipoMetaMensal,
	})
	require.NoError(t, err)
	assert.Equal(t, "META-xyz789", created.Name)

	require.Len(t, client.insertPayloads, 2)
	_, hasField := client.insertPayloads[0]["tipo_meta"]
	assert.True(t, hasField)
	_, hasField = client.insertPayloads[1]["tipo_meta"]
	assert.False(t, hasField)
}

func TestCreateMetaComCapacidadeConfigurada(t *testing.T) {
	cfg := newTestConfig()
	cfg.Frappe.SupportsTipoMeta = false

	client := &fakeClient{}
	service := New(cfg, client)

	_, err := service.CreateMeta(context.Background(), &frappedomain.Meta{
		Corretor:  "Ana Souza",
		Mes:       "Fevereiro",
		Ano:       2026,
		ValorMeta: 10000,
	})
	require.NoError(t, err)

	// Capacidade negociada na configuração: nenhuma tentativa com o campo
	require.Len(t, client.insertPayloads, 1)
	_, hasField := client.insertPayloads[0]["tipo_meta"]
	assert.False(t, hasField)
}
