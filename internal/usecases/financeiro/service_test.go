package financeiro

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	frappedomain "github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/domain"
	frappemocks "github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/mocks"
	repomocks "github.com/rbezerra/corretora-financeiro-api/infrastructure/repository/mocks"
	"github.com/rbezerra/corretora-financeiro-api/internal/domain"
	"github.com/rbezerra/corretora-financeiro-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func newTestService(t *testing.T) (*Service, *frappemocks.MockFrappeIntegrator, *repomocks.MockSnapshotRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	integrator := frappemocks.NewMockFrappeIntegrator(ctrl)
	snapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)

	service := &Service{
		integrator:   integrator,
		snapshotRepo: snapshotRepo,
		now: func() time.Time {
			return time.Date(2026, time.March, 15, 10, 0, 0, 0, time.Local)
		},
	}

	return service, integrator, snapshotRepo
}

func TestEvolucaoVendasSemPeriodo(t *testing.T) {
	tests := []struct {
		name    string
		filters *domain.FinanceiroFilters
	}{
		{name: "sem filtros", filters: nil},
		{
			name:    "sem data final",
			filters: &domain.FinanceiroFilters{StartDate: timePtr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local))},
		},
		{
			name:    "sem data inicial",
			filters: &domain.FinanceiroFilters{EndDate: timePtr(time.Date(2026, 3, 31, 0, 0, 0, 0, time.Local))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// nenhuma expectativa no integrator: sem período não há busca
			service, _, _ := newTestService(t)

			items, err := service.EvolucaoVendas(context.Background(), tt.filters)

			require.NoError(t, err)
			assert.NotNil(t, items)
			assert.Empty(t, items)
		})
	}
}

func TestEvolucaoVendasEspalhaVigenciaPelosMeses(t *testing.T) {
	service, integrator, _ := newTestService(t)

	seguros := []frappedomain.Seguro{
		// vigência de meados de janeiro a meados de março: contribui para
		// os três meses da série
		{Name: "SEG-001", ValorDoSeguro: 1000, InicioVigencia: "2026-01-15", FimVigencia: "2026-03-10"},
		// venda do ano anterior, alimenta apenas a coluna ano_anterior
		{Name: "SEG-002", ValorDoSeguro: 500, InicioVigencia: "2025-02-05", FimVigencia: "2025-02-20"},
	}

	metas := []frappedomain.Meta{
		{Name: "META-001", Corretor: "Corretora", Mes: "Janeiro", Ano: 2026, ValorMeta: 40000},
		// abreviação não reconhecida: ignorada sem erro
		{Name: "META-002", Corretor: "Corretora", Mes: "Jan", Ano: 2026, ValorMeta: 99999},
		// meta de corretor específico não entra na série da corretora
		{Name: "META-003", Corretor: "João Silva", Mes: "Fevereiro", Ano: 2026, ValorMeta: 5000},
	}

	integrator.EXPECT().ListSeguros(gomock.Any()).Return(seguros, nil)
	integrator.EXPECT().ListMetas(gomock.Any()).Return(metas, nil)

	items, err := service.EvolucaoVendas(context.Background(), &domain.FinanceiroFilters{
		StartDate: timePtr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)),
		EndDate:   timePtr(time.Date(2026, 3, 31, 0, 0, 0, 0, time.Local)),
	})

	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, domain.EvolucaoVendasItem{Mes: "01/2026", Vendas: 1000, Meta: 40000, AnoAnterior: 0}, items[0])
	assert.Equal(t, domain.EvolucaoVendasItem{Mes: "02/2026", Vendas: 1000, Meta: 0, AnoAnterior: 500}, items[1])
	assert.Equal(t, domain.EvolucaoVendasItem{Mes: "03/2026", Vendas: 1000, Meta: 0, AnoAnterior: 0}, items[2])
}

func TestEvolucaoVendasSeguroPontualSemFimDeVigencia(t *testing.T) {
	service, integrator, _ := newTestService(t)

	seguros := []frappedomain.Seguro{
		// sem fim de vigência o seguro conta apenas no mês da data efetiva
		{Name: "SEG-001", ValorDoSeguro: 300, InicioVigencia: "2026-02-10"},
		// sem início de vigência a data de criação é a referência
		{Name: "SEG-002", ValorDoSeguro: 200, Creation: "10/02/2026 14:30"},
	}

	integrator.EXPECT().ListSeguros(gomock.Any()).Return(seguros, nil)
	integrator.EXPECT().ListMetas(gomock.Any()).Return([]frappedomain.Meta{}, nil)

	items, err := service.EvolucaoVendas(context.Background(), &domain.FinanceiroFilters{
		StartDate: timePtr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)),
		EndDate:   timePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)),
	})

	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, 0.0, items[0].Vendas)
	assert.Equal(t, 500.0, items[1].Vendas)
	assert.Equal(t, 0.0, items[2].Vendas)
}

func TestEvolucaoVendasPropagaErroDoBackend(t *testing.T) {
	service, integrator, _ := newTestService(t)

	integrator.EXPECT().ListSeguros(gomock.Any()).Return(nil, assert.AnError)
	integrator.EXPECT().ListMetas(gomock.Any()).Return([]frappedomain.Meta{}, nil)

	items, err := service.EvolucaoVendas(context.Background(), &domain.FinanceiroFilters{
		StartDate: timePtr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)),
		EndDate:   timePtr(time.Date(2026, 1, 31, 0, 0, 0, 0, time.Local)),
	})

	require.Error(t, err)
	assert.Nil(t, items)
}

func TestMetasMensaisPorCategoria(t *testing.T) {
	service, integrator, _ := newTestService(t)

	metas := []frappedomain.Meta{
		{Name: "META-001", Corretor: "Corretora", Mes: "Janeiro", Ano: 2026, Categoria: "Auto", ValorMeta: 10000},
		{Name: "META-002", Corretor: "Corretora", Mes: "Fevereiro", Ano: 2026, Categoria: "auto", ValorMeta: 5000},
		{Name: "META-003", Corretor: "Corretora", Mes: "Janeiro", Ano: 2026, Categoria: "Moto", ValorMeta: 2000},
		// fora do período consultado
		{Name: "META-004", Corretor: "Corretora", Mes: "Dezembro", Ano: 2026, Categoria: "Auto", ValorMeta: 7000},
		// meta de corretor específico não entra na quebra da corretora
		{Name: "META-005", Corretor: "João Silva", Mes: "Janeiro", Ano: 2026, Categoria: "Auto", ValorMeta: 3000},
		// meta anual fica fora da quebra mensal
		{Name: "META-006", Corretor: "Corretora", Ano: 2026, TipoMeta: "Anual", Categoria: "Vida", ValorMeta: 120000},
	}

	integrator.EXPECT().ListMetas(gomock.Any()).Return(metas, nil)

	totais, err := service.MetasMensaisPorCategoria(context.Background(), &domain.FinanceiroFilters{
		StartDate: timePtr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)),
		EndDate:   timePtr(time.Date(2026, 6, 30, 0, 0, 0, 0, time.Local)),
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"auto":   15000,
		"outros": 2000,
	}, totais)
}

func TestMetasMensaisPorCategoriaCorretor(t *testing.T) {
	service, integrator, _ := newTestService(t)

	metas := []frappedomain.Meta{
		{Name: "META-001", Corretor: "João Silva", Mes: "Janeiro", Ano: 2026, Categoria: "Auto", ValorMeta: 3000},
		{Name: "META-002", Corretor: "João Silva", Mes: "Fevereiro", Ano: 2026, Categoria: "Auto", ValorMeta: 2000},
		{Name: "META-003", Corretor: "Maria Souza", Mes: "Janeiro", Ano: 2026, Categoria: "Vida", ValorMeta: 4000},
		// metas da corretora inteira não entram na quebra por corretor
		{Name: "META-004", Corretor: "Corretora", Mes: "Janeiro", Ano: 2026, Categoria: "Auto", ValorMeta: 40000},
	}

	integrator.EXPECT().ListMetas(gomock.Any()).Return(metas, nil)

	totais, err := service.MetasMensaisPorCategoriaCorretor(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]float64{
		"João Silva":  {"auto": 5000},
		"Maria Souza": {"vida": 4000},
	}, totais)
}

func TestCalcularRealizadoMeta(t *testing.T) {
	seguros := []frappedomain.Seguro{
		{Name: "SEG-001", ValorDoSeguro: 1000, InicioVigencia: "2026-01-10", TipoSeguro: "Auto", CorretorNome: "João Silva"},
		{Name: "SEG-002", ValorDoSeguro: 2000, InicioVigencia: "2026-01-20", TipoSeguro: "Vida", CorretorResponsavel: "João Silva"},
		{Name: "SEG-003", ValorDoSeguro: 4000, InicioVigencia: "2026-02-05", TipoSeguro: "Auto", CorretorNome: "Maria Souza"},
		{Name: "SEG-004", ValorDoSeguro: 8000, InicioVigencia: "2025-01-15", TipoSeguro: "Auto", CorretorNome: "João Silva"},
	}

	tests := []struct {
		name     string
		meta     frappedomain.Meta
		expected float64
	}{
		{
			name:     "mensal de corretor e categoria",
			meta:     frappedomain.Meta{Corretor: "João Silva", Mes: "Janeiro", Ano: 2026, Categoria: "Auto"},
			expected: 1000,
		},
		{
			name:     "corretor responsavel tambem casa",
			meta:     frappedomain.Meta{Corretor: "João Silva", Mes: "Janeiro", Ano: 2026, Categoria: "Vida"},
			expected: 2000,
		},
		{
			name:     "categoria Geral soma todas as categorias",
			meta:     frappedomain.Meta{Corretor: "João Silva", Mes: "Janeiro", Ano: 2026, Categoria: "Geral"},
			expected: 3000,
		},
		{
			name:     "meta da corretora soma todos os corretores",
			meta:     frappedomain.Meta{Corretor: "Corretora", Mes: "Fevereiro", Ano: 2026, Categoria: "Geral"},
			expected: 4000,
		},
		{
			name:     "meta anual soma o ano inteiro",
			meta:     frappedomain.Meta{Corretor: "Corretora", Ano: 2026, TipoMeta: "Anual", Categoria: "Geral"},
			expected: 7000,
		},
		{
			name:     "ano diferente nao acumula",
			meta:     frappedomain.Meta{Corretor: "João Silva", Mes: "Janeiro", Ano: 2024, Categoria: "Auto"},
			expected: 0,
		},
		{
			name:     "mes irresoluvel nao acumula",
			meta:     frappedomain.Meta{Corretor: "João Silva", Mes: "Jan", Ano: 2026, Categoria: "Auto"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalcularRealizadoMeta(&tt.meta, seguros))
		})
	}
}

func TestMetasMensaisGrafico(t *testing.T) {
	service, integrator, _ := newTestService(t)

	seguros := []frappedomain.Seguro{
		{Name: "SEG-001", ValorDoSeguro: 45000, InicioVigencia: "2026-01-12"},
		{Name: "SEG-002", ValorDoSeguro: 45000, InicioVigencia: "2026-02-08"},
		{Name: "SEG-003", ValorDoSeguro: 10000, InicioVigencia: "2026-03-02"},
	}

	metas := []frappedomain.Meta{
		{Name: "META-001", Corretor: "Corretora", Mes: "Janeiro", Ano: 2026, ValorMeta: 40000},
		{Name: "META-002", Corretor: "Corretora", Mes: "Março", Ano: 2026, ValorMeta: 20000},
		{Name: "META-003", Corretor: "Corretora", Mes: "Abril", Ano: 2026, ValorMeta: 30000},
	}

	integrator.EXPECT().ListSeguros(gomock.Any()).Return(seguros, nil)
	integrator.EXPECT().ListMetas(gomock.Any()).Return(metas, nil)

	items, err := service.MetasMensaisGrafico(context.Background(), 2026)

	require.NoError(t, err)
	require.Len(t, items, 12)

	// janeiro: realizado acima da meta
	assert.Equal(t, "Janeiro", items[0].Mes)
	assert.Equal(t, domain.StatusMetaAtingida, items[0].Status)
	assert.Equal(t, 40000.0, items[0].Meta)
	assert.Equal(t, 45000.0, items[0].Realizado)

	// fevereiro: sem meta cadastrada, realizado alto não basta
	assert.Equal(t, domain.StatusMetaNaoAtingida, items[1].Status)
	assert.Equal(t, 0.0, items[1].Meta)
	assert.Equal(t, 45000.0, items[1].Realizado)

	// março é o mês corrente do relógio de teste e já pode ser avaliado
	assert.Equal(t, domain.StatusMetaNaoAtingida, items[2].Status)

	// abril em diante ainda não chegou
	assert.Equal(t, domain.StatusMetaEmAndamento, items[3].Status)
	assert.Equal(t, domain.StatusMetaEmAndamento, items[11].Status)
}

func TestMetasPorCorretorRanking(t *testing.T) {
	service, integrator, _ := newTestService(t)

	ranking := []frappedomain.RankingCorretor{
		{Corretor: "Maria Souza", Total: 8000},
		{Corretor: "João Silva", Total: 12000},
		{Corretor: "Pedro Costa", Total: 3000},
	}

	metas := []frappedomain.Meta{
		{Name: "META-001", Corretor: "João Silva", Mes: "Janeiro", Ano: 2026, ValorMeta: 10000},
		{Name: "META-002", Corretor: "Maria Souza", Mes: "Janeiro", Ano: 2026, ValorMeta: 16000},
		// Pedro não tem meta cadastrada: meta e percentual zerados
	}

	filters := &domain.FinanceiroFilters{
		StartDate: timePtr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)),
		EndDate:   timePtr(time.Date(2026, 1, 31, 0, 0, 0, 0, time.Local)),
	}

	integrator.EXPECT().RankingDeCorretores(gomock.Any(), filters).Return(ranking, nil)
	integrator.EXPECT().ListMetas(gomock.Any()).Return(metas, nil)

	items, err := service.MetasPorCorretorRanking(context.Background(), filters)

	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, domain.RankingCorretorItem{
		Corretor: "João Silva", Vendas: 12000, Meta: 10000, PercentualAtingimento: 120, Posicao: 1,
	}, items[0])
	assert.Equal(t, domain.RankingCorretorItem{
		Corretor: "Maria Souza", Vendas: 8000, Meta: 16000, PercentualAtingimento: 50, Posicao: 2,
	}, items[1])
	assert.Equal(t, domain.RankingCorretorItem{
		Corretor: "Pedro Costa", Vendas: 3000, Meta: 0, PercentualAtingimento: 0, Posicao: 3,
	}, items[2])
}

func TestSnapshots(t *testing.T) {
	service, _, snapshotRepo := newTestService(t)

	expected := &domain.FinanceiroSnapshotResponse{
		Snapshots: []domain.FinanceiroSnapshot{
			{Periodo: "01/2026", Vendas: 1000, Meta: 40000},
		},
	}

	snapshotRepo.EXPECT().GetByYear(2026).Return(expected, nil)

	response, err := service.Snapshots(context.Background(), 2026)

	require.NoError(t, err)
	assert.Equal(t, expected, response)
}

func TestCategoriaCorresponde(t *testing.T) {
	assert.True(t, categoriaCorresponde("", "Auto"))
	assert.True(t, categoriaCorresponde("Geral", "Auto"))
	assert.True(t, categoriaCorresponde("Geral", ""))
	assert.True(t, categoriaCorresponde("auto", "Auto"))
	assert.False(t, categoriaCorresponde("Auto", ""))
	assert.False(t, categoriaCorresponde("Auto", "Vida"))
}

func TestCorretorCorresponde(t *testing.T) {
	seguro := &frappedomain.Seguro{CorretorNome: "João Silva", CorretorResponsavel: "Maria Souza"}

	assert.True(t, corretorCorresponde("", seguro))
	assert.True(t, corretorCorresponde("Corretora", seguro))
	assert.True(t, corretorCorresponde("João Silva", seguro))
	assert.True(t, corretorCorresponde("Maria Souza", seguro))
	assert.False(t, corretorCorresponde("Pedro Costa", seguro))
}

func TestSeguroCobreMes(t *testing.T) {
	seguro := &frappedomain.Seguro{InicioVigencia: "2026-01-15", FimVigencia: "2026-03-10"}

	assert.False(t, seguroCobreMes(seguro, time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, seguroCobreMes(seguro, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, seguroCobreMes(seguro, time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, seguroCobreMes(seguro, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)))
	assert.False(t, seguroCobreMes(seguro, time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local)))

	// fim anterior ao início degrada para evento pontual
	invertido := &frappedomain.Seguro{InicioVigencia: "2026-03-15", FimVigencia: "2026-01-10"}
	assert.True(t, seguroCobreMes(invertido, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)))
	assert.False(t, seguroCobreMes(invertido, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)))

	// sem nenhuma data o seguro não cobre mês algum
	semDatas := &frappedomain.Seguro{}
	assert.False(t, seguroCobreMes(semDatas, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)))
}
