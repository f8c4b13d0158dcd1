package domain

import "time"

// FinanceiroFilters delimita o período das agregações financeiras
type FinanceiroFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Status possíveis de uma meta mensal na grade do dashboard
const (
	StatusMetaAtingida    = "atingida"
	StatusMetaNaoAtingida = "nao-atingida"
	StatusMetaEmAndamento = "em-andamento"
)

// Chaves normalizadas de categoria de seguro. Qualquer categoria fora do
// conjunto conhecido é agrupada em CategoriaOutros.
const (
	CategoriaAuto         = "auto"
	CategoriaVida         = "vida"
	CategoriaResidencial  = "residencial"
	CategoriaEmpresarial  = "empresarial"
	CategoriaCarga        = "carga"
	CategoriaOutros       = "outros"
)

// EvolucaoVendasItem é um ponto da série mensal vendas × meta × ano anterior
type EvolucaoVendasItem struct {
	Mes         string  `json:"mes"` // formato "MM/YYYY"
	Vendas      float64 `json:"vendas"`
	Meta        float64 `json:"meta"`
	AnoAnterior float64 `json:"ano_anterior"`
}

// MetaMensalItem é uma linha da grade de status de metas de um ano
type MetaMensalItem struct {
	Mes       string  `json:"mes"` // nome do mês em português
	Meta      float64 `json:"meta"`
	Realizado float64 `json:"realizado"`
	Status    string  `json:"status"`
}

// RankingCorretorItem é uma posição do ranking de corretores com metas
type RankingCorretorItem struct {
	Corretor              string  `json:"corretor"`
	Vendas                float64 `json:"vendas"`
	Meta                  float64 `json:"meta"`
	PercentualAtingimento float64 `json:"percentual_atingimento"`
	Posicao               int     `json:"posicao"`
}

// FinanceiroSnapshot é uma linha persistida da série mensal, gerada pelo
// agendador de sincronização para consulta histórica.
type FinanceiroSnapshot struct {
	ID          int       `json:"id"`
	Periodo     string    `json:"periodo"` // formato "MM/YYYY"
	Vendas      float64   `json:"vendas"`
	Meta        float64   `json:"meta"`
	AnoAnterior float64   `json:"ano_anterior"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FinanceiroSnapshotResponse agrupa os snapshots de um ano
type FinanceiroSnapshotResponse struct {
	Snapshots  []FinanceiroSnapshot `json:"snapshots"`
	LastUpdate time.Time            `json:"last_update"`
}
