package domain

// Seguro representa um registro de apólice ("seguro") como entregue pelo
// backend de recursos. As datas chegam como string em formatos variados e
// são interpretadas pelo motor de agregação.
type Seguro struct {
	Name                string  `json:"name,omitempty"`
	ValorDoSeguro       float64 `json:"valor_do_seguro"`
	InicioVigencia      string  `json:"inicio_vigencia,omitempty"`
	FimVigencia         string  `json:"fim_vigencia,omitempty"`
	Creation            string  `json:"creation,omitempty"`
	TipoSeguro          string  `json:"tipo_seguro,omitempty"`
	CorretorNome        string  `json:"corretor_nome,omitempty"`
	CorretorResponsavel string  `json:"corretor_responsavel,omitempty"`
}
