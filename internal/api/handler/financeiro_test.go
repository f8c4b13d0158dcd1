package handler

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rbezerra/corretora-financeiro-api/internal/domain"
	financeiromocks "github.com/rbezerra/corretora-financeiro-api/internal/usecases/financeiro/mocks"
	"github.com/rbezerra/corretora-financeiro-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func TestGetEvolucaoVendas(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := financeiromocks.NewMockFinanceiro(ctrl)

	items := []domain.EvolucaoVendasItem{
		{Mes: "01/2026", Vendas: 1000, Meta: 40000, AnoAnterior: 800},
	}

	service.EXPECT().
		EvolucaoVendas(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters *domain.FinanceiroFilters) ([]domain.EvolucaoVendasItem, error) {
			require.NotNil(t, filters.StartDate)
			require.NotNil(t, filters.EndDate)
			return items, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/financeiro/evolucao-vendas?start_date=2026-01-01&end_date=2026-01-31", nil)
	rec := httptest.NewRecorder()

	GetEvolucaoVendas(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []domain.EvolucaoVendasItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, items, got)
}

func TestGetEvolucaoVendasComErroDoBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := financeiromocks.NewMockFinanceiro(ctrl)

	service.EXPECT().
		EvolucaoVendas(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/v1/financeiro/evolucao-vendas?start_date=2026-01-01&end_date=2026-01-31", nil)
	rec := httptest.NewRecorder()

	GetEvolucaoVendas(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestWriteJSONNaoAnexaErroAposFalhaDeCodificacao(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/financeiro/evolucao-vendas", nil)
	rec := httptest.NewRecorder()

	// NaN não é serializável, a codificação falha depois do status enviado
	writeJSON(rec, req, map[string]float64{"total": math.NaN()})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "SRV_001")
}
