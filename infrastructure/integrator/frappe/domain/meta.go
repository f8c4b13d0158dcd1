package domain

// TipoMeta define o escopo temporal de uma meta
type TipoMeta string

const (
	TipoMetaMensal TipoMeta = "Mensal"
	TipoMetaAnual  TipoMeta = "Anual"
)

const (
	// CorretoraSentinela no campo corretor indica meta da corretora inteira
	CorretoraSentinela = "Corretora"
	// CategoriaGeral no campo categoria indica meta para todas as categorias
	CategoriaGeral = "Geral"
)

// Meta representa uma meta de vendas, mensal ou anual, da corretora ou de um
// corretor específico.
type Meta struct {
	Name          string   `json:"name,omitempty"`
	Corretor      string   `json:"corretor,omitempty"`
	Mes           string   `json:"mes,omitempty"`
	Ano           int      `json:"ano"`
	Categoria     string   `json:"categoria,omitempty"`
	TipoMeta      TipoMeta `json:"tipo_meta,omitempty"`
	ValorMeta     float64  `json:"valor_meta"`
	ValorAtingido *float64 `json:"valor_atingido,omitempty"`
}

// Tipo retorna o tipo da meta, assumindo Mensal quando o campo está vazio
// (backends antigos não possuem a coluna tipo_meta).
func (m *Meta) Tipo() TipoMeta {
	if m.TipoMeta == "" {
		return TipoMetaMensal
	}
	return m.TipoMeta
}

// DaCorretora indica se a meta vale para a corretora inteira
func (m *Meta) DaCorretora() bool {
	return m.Corretor == "" || m.Corretor == CorretoraSentinela
}
