package domain

// Corretor representa um corretor cadastrado no backend de recursos
type Corretor struct {
	Name         string `json:"name"`
	NomeCompleto string `json:"nome_completo,omitempty"`
	Email        string `json:"email,omitempty"`
	Ativo        int    `json:"ativo,omitempty"`
}

// VendaPorCategoria é uma linha pré-agregada do método vendas_por_categoria
type VendaPorCategoria struct {
	Categoria string  `json:"categoria"`
	Total     float64 `json:"total"`
}

// RankingCorretor é uma linha pré-agregada do método ranking_de_corretores
type RankingCorretor struct {
	Corretor string  `json:"corretor"`
	Total    float64 `json:"total"`
}

// VendaPorCategoriaCorretor é uma linha pré-agregada do método
// vendas_por_categoria_corretor
type VendaPorCategoriaCorretor struct {
	Corretor  string  `json:"corretor"`
	Categoria string  `json:"categoria"`
	Total     float64 `json:"total"`
}
