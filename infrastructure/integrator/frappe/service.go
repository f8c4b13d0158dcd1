package frappe

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	frappedomain "github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/domain"
	"github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/frappeclient"
	"github.com/rbezerra/corretora-financeiro-api/internal/config"
	"github.com/rbezerra/corretora-financeiro-api/internal/domain"
	"github.com/rbezerra/corretora-financeiro-api/pkg/utils"
)

const (
	doctypeSeguro   = "Seguro"
	doctypeMeta     = "Meta"
	doctypeCorretor = "Corretor"

	fieldTipoMeta = "tipo_meta"

	methodVendasPorCategoria         = "corretora.api.vendas_por_categoria"
	methodRankingDeCorretores        = "corretora.api.ranking_de_corretores"
	methodVendasPorCategoriaCorretor = "corretora.api.vendas_por_categoria_corretor"
)

var seguroFields = []string{
	"name", "valor_do_seguro", "inicio_vigencia", "fim_vigencia",
	"creation", "tipo_seguro", "corretor_nome", "corretor_responsavel",
}

var metaFields = []string{
	"name", "corretor", "mes", "ano", "categoria",
	fieldTipoMeta, "valor_meta", "valor_atingido",
}

var corretorFields = []string{"name", "nome_completo", "email", "ativo"}

// FrappeIntegrator é a fachada de acesso ao backend de recursos: coleções de
// seguros, metas e corretores, mutação de metas e os métodos pré-agregados
// usados pelo dashboard.
type FrappeIntegrator interface {
	ListSeguros(ctx context.Context) ([]frappedomain.Seguro, error)
	ListMetas(ctx context.Context) ([]frappedomain.Meta, error)
	CreateMeta(ctx context.Context, meta *frappedomain.Meta) (*frappedomain.Meta, error)
	UpdateMeta(ctx context.Context, meta *frappedomain.Meta) error
	DeleteMeta(ctx context.Context, name string) error
	ListCorretores(ctx context.Context) ([]frappedomain.Corretor, error)
	VendasPorCategoria(ctx context.Context, filters *domain.FinanceiroFilters) ([]frappedomain.VendaPorCategoria, error)
	RankingDeCorretores(ctx context.Context, filters *domain.FinanceiroFilters) ([]frappedomain.RankingCorretor, error)
	VendasPorCategoriaCorretor(ctx context.Context, filters *domain.FinanceiroFilters) ([]frappedomain.VendaPorCategoriaCorretor, error)
}

type FrappeService struct {
	cfg    *config.Config
	Client frappeclient.Client

	// capacidade do schema remoto, negociada na configuração e rebaixada
	// em tempo de execução no primeiro erro de campo desconhecido; vale
	// pelo tempo de vida do serviço
	capabilityMu     sync.Mutex
	supportsTipoMeta bool
}

func New(cfg *config.Config, client frappeclient.Client) *FrappeService {
	return &FrappeService{
		cfg:              cfg,
		Client:           client,
		supportsTipoMeta: cfg.Frappe.SupportsTipoMeta,
	}
}

// SupportsTipoMeta informa se o backend aceita o campo tipo_meta
func (s *FrappeService) SupportsTipoMeta() bool {
	s.capabilityMu.Lock()
	defer s.capabilityMu.Unlock()
	return s.supportsTipoMeta
}

func (s *FrappeService) demoteTipoMeta() {
	s.capabilityMu.Lock()
	defer s.capabilityMu.Unlock()

	if s.supportsTipoMeta {
		logrus.Warn("Backend rejeitou o campo tipo_meta; operando sem o campo até o reinício")
		s.supportsTipoMeta = false
	}
}

func (s *FrappeService) metaFieldList() []string {
	if s.SupportsTipoMeta() {
		return metaFields
	}

	fields := make([]string, 0, len(metaFields)-1)
	for _, field := range metaFields {
		if field != fieldTipoMeta {
			fields = append(fields, field)
		}
	}
	return fields
}

func (s *FrappeService) ListSeguros(ctx context.Context) ([]frappedomain.Seguro, error) {
	data, err := s.Client.GetList(ctx, doctypeSeguro, seguroFields)
	if err != nil {
		return nil, err
	}

	var seguros []frappedomain.Seguro
	if err := unmarshal(data, &seguros); err != nil {
		return nil, err
	}

	return seguros, nil
}

func (s *FrappeService) ListMetas(ctx context.Context) ([]frappedomain.Meta, error) {
	data, err := s.Client.GetList(ctx, doctypeMeta, s.metaFieldList())
	if err != nil {
		if frappeclient.IsUnknownFieldError(err, fieldTipoMeta) && s.SupportsTipoMeta() {
			s.demoteTipoMeta()
			return s.ListMetas(ctx)
		}
		return nil, err
	}

	var metas []frappedomain.Meta
	if err := unmarshal(data, &metas); err != nil {
		return nil, err
	}

	return metas, nil
}

func (s *FrappeService) CreateMeta(ctx context.Context, meta *frappedomain.Meta) (*frappedomain.Meta, error) {
	payload := s.metaPayload(meta)

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("Criando meta no backend: %s", utils.PrettyJson(payload))
	}

	data, err := s.Client.Insert(ctx, doctypeMeta, payload)
	if err != nil {
		if frappeclient.IsUnknownFieldError(err, fieldTipoMeta) && s.SupportsTipoMeta() {
			s.demoteTipoMeta()
			return s.CreateMeta(ctx, meta)
		}
		return nil, err
	}

	created := &frappedomain.Meta{}
	if err := unmarshal(data, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *FrappeService) UpdateMeta(ctx context.Context, meta *frappedomain.Meta) error {
	_, err := s.Client.Update(ctx, doctypeMeta, meta.Name, s.metaPayload(meta))
	if err != nil {
		if frappeclient.IsUnknownFieldError(err, fieldTipoMeta) && s.SupportsTipoMeta() {
			s.demoteTipoMeta()
			return s.UpdateMeta(ctx, meta)
		}
		return err
	}

	return nil
}

func (s *FrappeService) DeleteMeta(ctx context.Context, name string) error {
	return s.Client.Delete(ctx, doctypeMeta, name)
}

// metaPayload monta o documento enviado ao backend, omitindo tipo_meta
// quando o schema remoto não possui o campo
func (s *FrappeService) metaPayload(meta *frappedomain.Meta) map[string]any {
	payload := map[string]any{
		"corretor":   meta.Corretor,
		"mes":        meta.Mes,
		"ano":        meta.Ano,
		"categoria":  meta.Categoria,
		"valor_meta": meta.ValorMeta,
	}

	if meta.Name != "" {
		payload["name"] = meta.Name
	}

	if meta.ValorAtingido != nil {
		payload["valor_atingido"] = *meta.ValorAtingido
	}

	if s.SupportsTipoMeta() {
		payload[fieldTipoMeta] = string(meta.Tipo())
	}

	return payload
}

func (s *FrappeService) ListCorretores(ctx context.Context) ([]frappedomain.Corretor, error) {
	data, err := s.Client.GetList(ctx, doctypeCorretor, corretorFields)
	if err != nil {
		return nil, err
	}

	var corretores []frappedomain.Corretor
	if err := unmarshal(data, &corretores); err != nil {
		return nil, err
	}

	return corretores, nil
}

func (s *FrappeService) VendasPorCategoria(ctx context.Context, filters *domain.FinanceiroFilters) ([]frappedomain.VendaPorCategoria, error) {
	data, err := s.Client.CallMethod(ctx, methodVendasPorCategoria, periodParams(filters))
	if err != nil {
		return nil, err
	}

	var vendas []frappedomain.VendaPorCategoria
	if err := unmarshal(data, &vendas); err != nil {
		return nil, err
	}

	return vendas, nil
}

func (s *FrappeService) RankingDeCorretores(ctx context.Context, filters *domain.FinanceiroFilters) ([]frappedomain.RankingCorretor, error) {
	data, err := s.Client.CallMethod(ctx, methodRankingDeCorretores, periodParams(filters))
	if err != nil {
		return nil, err
	}

	var ranking []frappedomain.RankingCorretor
	if err := unmarshal(data, &ranking); err != nil {
		return nil, err
	}

	return ranking, nil
}

func (s *FrappeService) VendasPorCategoriaCorretor(ctx context.Context, filters *domain.FinanceiroFilters) ([]frappedomain.VendaPorCategoriaCorretor, error) {
	data, err := s.Client.CallMethod(ctx, methodVendasPorCategoriaCorretor, periodParams(filters))
	if err != nil {
		return nil, err
	}

	var vendas []frappedomain.VendaPorCategoriaCorretor
	if err := unmarshal(data, &vendas); err != nil {
		return nil, err
	}

	return vendas, nil
}

// periodParams monta os parâmetros de período dos métodos RPC; datas
// ausentes são simplesmente omitidas (o backend assume o período completo)
func periodParams(filters *domain.FinanceiroFilters) map[string]string {
	params := map[string]string{}
	if filters == nil {
		return params
	}

	if filters.StartDate != nil {
		params["start_date"] = filters.StartDate.Format(time.DateOnly)
	}
	if filters.EndDate != nil {
		params["end_date"] = filters.EndDate.Format(time.DateOnly)
	}

	return params
}
