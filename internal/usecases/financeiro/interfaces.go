package financeiro

import (
	"context"

	"github.com/rbezerra/corretora-financeiro-api/internal/domain"
)

// Financeiro é a interface do motor de agregação financeira consumida pelos
// handlers do dashboard
type Financeiro interface {
	// EvolucaoVendas monta a série mensal de vendas × meta × ano anterior
	// para um período explícito; sem período a série é vazia
	EvolucaoVendas(ctx context.Context, filters *domain.FinanceiroFilters) ([]domain.EvolucaoVendasItem, error)

	// MetasMensaisPorCategoria totaliza as metas mensais da corretora por
	// categoria normalizada dentro do período
	MetasMensaisPorCategoria(ctx context.Context, filters *domain.FinanceiroFilters) (map[string]float64, error)

	// MetasMensaisPorCategoriaCorretor totaliza as metas mensais por
	// corretor e categoria (somente metas de corretor específico)
	MetasMensaisPorCategoriaCorretor(ctx context.Context, filters *domain.FinanceiroFilters) (map[string]map[string]float64, error)

	// MetasMensaisGrafico monta a grade de status das metas mensais da
	// corretora para um ano
	MetasMensaisGrafico(ctx context.Context, ano int) ([]domain.MetaMensalItem, error)

	// MetasPorCorretorRanking combina o ranking de vendas pré-agregado do
	// backend com os totais de metas mensais de cada corretor
	MetasPorCorretorRanking(ctx context.Context, filters *domain.FinanceiroFilters) ([]domain.RankingCorretorItem, error)

	// Snapshots retorna a série mensal persistida pelo agendador
	Snapshots(ctx context.Context, ano int) (*domain.FinanceiroSnapshotResponse, error)
}
