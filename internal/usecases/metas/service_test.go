package metas

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	frappedomain "github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/domain"
	"github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/frappeclient"
	frappemocks "github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/mocks"
	"github.com/rbezerra/corretora-financeiro-api/pkg/apiErrors"
)

func TestCreateMetaValida(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := frappemocks.NewMockFrappeIntegrator(ctrl)
	service := NewService(integrator)

	meta := &frappedomain.Meta{
		Corretor:  "João Silva",
		Mes:       "Janeiro",
		Ano:       2026,
		Categoria: "Auto",
		ValorMeta: 10000,
	}

	created := *meta
	created.Name = "META-abc123"

	integrator.EXPECT().CreateMeta(gomock.Any(), meta).Return(&created, nil)

	result, err := service.CreateMeta(context.Background(), meta)

	require.NoError(t, err)
	assert.Equal(t, "META-abc123", result.Name)
	// o nome do documento é gerado antes de chamar o backend
	assert.True(t, strings.HasPrefix(meta.Name, "META-"))
}

func TestCreateMetaAnualSemMes(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := frappemocks.NewMockFrappeIntegrator(ctrl)
	service := NewService(integrator)

	meta := &frappedomain.Meta{
		Corretor:  "Corretora",
		Ano:       2026,
		TipoMeta:  "Anual",
		ValorMeta: 500000,
	}

	integrator.EXPECT().CreateMeta(gomock.Any(), meta).Return(meta, nil)

	_, err := service.CreateMeta(context.Background(), meta)
	require.NoError(t, err)
}

func TestCreateMetaInvalida(t *testing.T) {
	tests := []struct {
		name string
		meta frappedomain.Meta
	}{
		{
			name: "sem corretor",
			meta: frappedomain.Meta{Mes: "Janeiro", Ano: 2026, ValorMeta: 1000},
		},
		{
			name: "sem ano",
			meta: frappedomain.Meta{Corretor: "João Silva", Mes: "Janeiro", ValorMeta: 1000},
		},
		{
			name: "valor zerado",
			meta: frappedomain.Meta{Corretor: "João Silva", Mes: "Janeiro", Ano: 2026},
		},
		{
			name: "mes abreviado",
			meta: frappedomain.Meta{Corretor: "João Silva", Mes: "Jan", Ano: 2026, ValorMeta: 1000},
		},
		{
			name: "tipo desconhecido",
			meta: frappedomain.Meta{Corretor: "João Silva", Ano: 2026, TipoMeta: "Trimestral", ValorMeta: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// nenhuma chamada ao backend: a validação barra antes
			ctrl := gomock.NewController(t)
			integrator := frappemocks.NewMockFrappeIntegrator(ctrl)
			service := NewService(integrator)

			_, err := service.CreateMeta(context.Background(), &tt.meta)

			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestUpdateMetaExigeIdentificador(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := frappemocks.NewMockFrappeIntegrator(ctrl)
	service := NewService(integrator)

	err := service.UpdateMeta(context.Background(), &frappedomain.Meta{
		Corretor: "João Silva", Mes: "Janeiro", Ano: 2026, ValorMeta: 1000,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestDeleteMeta(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := frappemocks.NewMockFrappeIntegrator(ctrl)
	service := NewService(integrator)

	integrator.EXPECT().DeleteMeta(gomock.Any(), "META-abc123").Return(nil)

	require.NoError(t, service.DeleteMeta(context.Background(), "META-abc123"))

	err := service.DeleteMeta(context.Background(), "")
	require.Error(t, err)
}

func TestDeleteMetaInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := frappemocks.NewMockFrappeIntegrator(ctrl)
	service := NewService(integrator)

	integrator.EXPECT().
		DeleteMeta(gomock.Any(), "META-sumiu").
		Return(&frappeclient.RequestError{StatusCode: http.StatusNotFound, Body: "Meta META-sumiu not found"})

	err := service.DeleteMeta(context.Background(), "META-sumiu")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMetaNotFound)

	var metaErr *MetaError
	require.ErrorAs(t, err, &metaErr)
	assert.Equal(t, apiErrors.ErrRecordNotFound, metaErr.Code)
}

func TestUpdateMetaInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := frappemocks.NewMockFrappeIntegrator(ctrl)
	service := NewService(integrator)

	integrator.EXPECT().
		UpdateMeta(gomock.Any(), gomock.Any()).
		Return(&frappeclient.RequestError{StatusCode: http.StatusNotFound, Body: "not found"})

	err := service.UpdateMeta(context.Background(), &frappedomain.Meta{
		Name: "META-sumiu", Corretor: "João Silva", Mes: "Janeiro", Ano: 2026, ValorMeta: 1000,
	})

	assert.ErrorIs(t, err, ErrMetaNotFound)
}

func TestListMetasCalculaRealizado(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := frappemocks.NewMockFrappeIntegrator(ctrl)
	service := NewService(integrator)

	metas := []frappedomain.Meta{
		{Name: "META-1", Corretor: "João Silva", Mes: "Janeiro", Ano: 2026, Categoria: "Geral", ValorMeta: 10000},
		{Name: "META-2", Corretor: "Maria Souza", Mes: "Janeiro", Ano: 2026, Categoria: "Geral", ValorMeta: 8000},
	}
	seguros := []frappedomain.Seguro{
		{Name: "SEG-1", ValorDoSeguro: 3000, InicioVigencia: "2026-01-10", CorretorNome: "João Silva", TipoSeguro: "Auto"},
		{Name: "SEG-2", ValorDoSeguro: 1500, InicioVigencia: "2026-01-20", CorretorNome: "João Silva", TipoSeguro: "Vida"},
		{Name: "SEG-3", ValorDoSeguro: 9999, InicioVigencia: "2026-02-05", CorretorNome: "João Silva", TipoSeguro: "Auto"},
	}

	integrator.EXPECT().ListMetas(gomock.Any()).Return(metas, nil)
	integrator.EXPECT().ListSeguros(gomock.Any()).Return(seguros, nil)

	result, err := service.ListMetas(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	require.NotNil(t, result[0].ValorAtingido)
	assert.Equal(t, 4500.0, *result[0].ValorAtingido)
	require.NotNil(t, result[1].ValorAtingido)
	assert.Equal(t, 0.0, *result[1].ValorAtingido)
}

func TestListMetasSemSegurosAindaResponde(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := frappemocks.NewMockFrappeIntegrator(ctrl)
	service := NewService(integrator)

	metas := []frappedomain.Meta{
		{Name: "META-1", Corretor: "João Silva", Mes: "Janeiro", Ano: 2026, ValorMeta: 10000},
	}

	integrator.EXPECT().ListMetas(gomock.Any()).Return(metas, nil)
	integrator.EXPECT().ListSeguros(gomock.Any()).Return(nil, assert.AnError)

	result, err := service.ListMetas(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Nil(t, result[0].ValorAtingido)
}
