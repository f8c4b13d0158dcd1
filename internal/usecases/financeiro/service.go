package financeiro

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe"
	frappedomain "github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/domain"
	"github.com/rbezerra/corretora-financeiro-api/infrastructure/repository"
	"github.com/rbezerra/corretora-financeiro-api/internal/domain"
	"github.com/rbezerra/corretora-financeiro-api/pkg/utils"
)

// Service implementa o motor de agregação financeira sobre os registros de
// seguros e metas do backend de recursos. Cada chamada busca os registros e
// recalcula do zero; não há cache entre invocações.
type Service struct {
	integrator   frappe.FrappeIntegrator
	snapshotRepo repository.SnapshotRepository

	// relógio injetável para a grade de status de metas
	now func() time.Time
}

func NewService(integrator frappe.FrappeIntegrator, snapshotRepo repository.SnapshotRepository) Financeiro {
	return &Service{
		integrator:   integrator,
		snapshotRepo: snapshotRepo,
		now:          time.Now,
	}
}

// fetchSegurosEMetas busca seguros e metas concorrentemente; as duas
// requisições ficam em voo ao mesmo tempo e qualquer falha propaga
func (s *Service) fetchSegurosEMetas(ctx context.Context) ([]frappedomain.Seguro, []frappedomain.Meta, error) {
	var (
		seguros    []frappedomain.Seguro
		metas      []frappedomain.Meta
		segurosErr error
		metasErr   error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		seguros, segurosErr = s.integrator.ListSeguros(ctx)
	}()

	go func() {
		defer wg.Done()
		metas, metasErr = s.integrator.ListMetas(ctx)
	}()

	wg.Wait()

	if segurosErr != nil {
		logrus.WithError(segurosErr).Error("Erro ao buscar seguros do backend")
		return nil, nil, segurosErr
	}

	if metasErr != nil {
		logrus.WithError(metasErr).Error("Erro ao buscar metas do backend")
		return nil, nil, metasErr
	}

	return seguros, metas, nil
}

// EvolucaoVendas monta a série mensal de vendas, meta e ano anterior para o
// período informado. Sem período explícito a série é vazia; a operação não
// assume "desde sempre".
func (s *Service) EvolucaoVendas(ctx context.Context, filters *domain.FinanceiroFilters) ([]domain.EvolucaoVendasItem, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return []domain.EvolucaoVendasItem{}, nil
	}

	seguros, metas, err := s.fetchSegurosEMetas(ctx)
	if err != nil {
		return nil, err
	}

	metasPorMes := metasDaCorretoraPorMes(metas)

	items := []domain.EvolucaoVendasItem{}

	current := utils.MonthStartOf(*filters.StartDate)
	last := utils.MonthStartOf(*filters.EndDate)

	for !current.After(last) {
		key := utils.FormatMonthKey(current)

		items = append(items, domain.EvolucaoVendasItem{
			Mes:    key,
			Vendas: utils.RoundWithTwoDecimalPlace(somaVendasDoMes(seguros, current)),
			Meta:   utils.RoundWithTwoDecimalPlace(metasPorMes[key]),
			// cada mês mapeia independentemente para o mesmo mês do
			// ano anterior, não é um deslocamento único do período
			AnoAnterior: utils.RoundWithTwoDecimalPlace(somaVendasDoMes(seguros, current.AddDate(-1, 0, 0))),
		})

		current = current.AddDate(0, 1, 0)
	}

	return items, nil
}

// somaVendasDoMes soma o valor dos seguros cuja vigência intersecta o mês
func somaVendasDoMes(seguros []frappedomain.Seguro, mes time.Time) float64 {
	total := 0.0

	for i := range seguros {
		if seguroCobreMes(&seguros[i], mes) {
			total += seguros[i].ValorDoSeguro
		}
	}

	return total
}

// metasDaCorretoraPorMes pré-agrega as metas mensais da corretora por chave
// de mês "MM/YYYY"; metas com mês irresolvível são ignoradas com aviso
func metasDaCorretoraPorMes(metas []frappedomain.Meta) map[string]float64 {
	totais := make(map[string]float64)

	for i := range metas {
		meta := &metas[i]

		if meta.Tipo() != frappedomain.TipoMetaMensal || !meta.DaCorretora() {
			continue
		}

		date := mesDaMeta(meta)
		if date == nil {
			logrus.WithFields(logrus.Fields{
				"meta": meta.Name,
				"mes":  meta.Mes,
				"ano":  meta.Ano,
			}).Warn("Meta mensal com mês irresolvível ignorada na agregação")
			continue
		}

		totais[utils.FormatMonthKey(*date)] += meta.ValorMeta
	}

	return totais
}

// MetasMensaisPorCategoria totaliza as metas mensais da corretora por
// categoria normalizada dentro do período
func (s *Service) MetasMensaisPorCategoria(ctx context.Context, filters *domain.FinanceiroFilters) (map[string]float64, error) {
	metas, err := s.integrator.ListMetas(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar metas do backend")
		return nil, err
	}

	totais := make(map[string]float64)
	start, end := periodBounds(filters)

	for i := range metas {
		meta := &metas[i]

		if meta.Tipo() != frappedomain.TipoMetaMensal || !meta.DaCorretora() {
			continue
		}

		if !metaNoPeriodo(meta, start, end) {
			continue
		}

		totais[normalizarCategoria(meta.Categoria)] += meta.ValorMeta
	}

	return totais, nil
}

// MetasMensaisPorCategoriaCorretor totaliza as metas mensais por corretor e
// categoria; metas da corretora inteira ficam de fora
func (s *Service) MetasMensaisPorCategoriaCorretor(ctx context.Context, filters *domain.FinanceiroFilters) (map[string]map[string]float64, error) {
	metas, err := s.integrator.ListMetas(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar metas do backend")
		return nil, err
	}

	totais := make(map[string]map[string]float64)
	start, end := periodBounds(filters)

	for i := range metas {
		meta := &metas[i]

		if meta.Tipo() != frappedomain.TipoMetaMensal || meta.DaCorretora() {
			continue
		}

		if !metaNoPeriodo(meta, start, end) {
			continue
		}

		if totais[meta.Corretor] == nil {
			totais[meta.Corretor] = make(map[string]float64)
		}

		totais[meta.Corretor][normalizarCategoria(meta.Categoria)] += meta.ValorMeta
	}

	return totais, nil
}

// CalcularRealizadoMeta soma o valor dos seguros que satisfazem uma meta:
// corretor e categoria casando, data efetiva no ano da meta e, para metas
// mensais, também no mês da meta. Metas anuais somam o ano inteiro.
func CalcularRealizadoMeta(meta *frappedomain.Meta, seguros []frappedomain.Seguro) float64 {
	mensal := meta.Tipo() == frappedomain.TipoMetaMensal

	mes := 0
	if mensal {
		mes = utils.MonthNameToNumber(meta.Mes)
		if mes == 0 {
			// meta mensal malformada não acumula nada
			return 0
		}
	}

	total := 0.0

	for i := range seguros {
		seguro := &seguros[i]

		if !corretorCorresponde(meta.Corretor, seguro) {
			continue
		}

		if !categoriaCorresponde(meta.Categoria, seguro.TipoSeguro) {
			continue
		}

		date := dataEfetiva(seguro)
		if date == nil || date.Year() != meta.Ano {
			continue
		}

		if mensal && int(date.Month()) != mes {
			continue
		}

		total += seguro.ValorDoSeguro
	}

	return total
}

// MetasMensaisGrafico monta a grade de status das metas mensais da corretora
// para os 12 meses de um ano
func (s *Service) MetasMensaisGrafico(ctx context.Context, ano int) ([]domain.MetaMensalItem, error) {
	seguros, metas, err := s.fetchSegurosEMetas(ctx)
	if err != nil {
		return nil, err
	}

	mesAtual := utils.MonthStartOf(s.now())

	items := make([]domain.MetaMensalItem, 0, len(utils.MesesDoAno))

	for i, nomeMes := range utils.MesesDoAno {
		mes := i + 1

		metaTotal := 0.0
		for j := range metas {
			meta := &metas[j]
			if meta.Tipo() != frappedomain.TipoMetaMensal || !meta.DaCorretora() || meta.Ano != ano {
				continue
			}
			if utils.MonthNameToNumber(meta.Mes) != mes {
				continue
			}
			metaTotal += meta.ValorMeta
		}

		realizado := 0.0
		for j := range seguros {
			date := dataEfetiva(&seguros[j])
			if date == nil || date.Year() != ano || int(date.Month()) != mes {
				continue
			}
			realizado += seguros[j].ValorDoSeguro
		}

		inicioDoMes := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.Local)

		// mês estritamente futuro ainda está em andamento; mês com meta
		// zerada nunca é considerado atingido, mesmo com realizado positivo
		status := domain.StatusMetaNaoAtingida
		if inicioDoMes.After(mesAtual) {
			status = domain.StatusMetaEmAndamento
		} else if metaTotal > 0 && realizado >= metaTotal {
			status = domain.StatusMetaAtingida
		}

		items = append(items, domain.MetaMensalItem{
			Mes:       nomeMes,
			Meta:      utils.RoundWithTwoDecimalPlace(metaTotal),
			Realizado: utils.RoundWithTwoDecimalPlace(realizado),
			Status:    status,
		})
	}

	return items, nil
}

// MetasPorCorretorRanking combina o ranking de vendas pré-agregado do
// backend com os totais de metas mensais de cada corretor no período.
// Corretores presentes no ranking e sem meta cadastrada ficam com meta zero.
func (s *Service) MetasPorCorretorRanking(ctx context.Context, filters *domain.FinanceiroFilters) ([]domain.RankingCorretorItem, error) {
	var (
		ranking    []frappedomain.RankingCorretor
		metas      []frappedomain.Meta
		rankingErr error
		metasErr   error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		ranking, rankingErr = s.integrator.RankingDeCorretores(ctx, filters)
	}()

	go func() {
		defer wg.Done()
		metas, metasErr = s.integrator.ListMetas(ctx)
	}()

	wg.Wait()

	if rankingErr != nil {
		logrus.WithError(rankingErr).Error("Erro ao buscar ranking de corretores do backend")
		return nil, rankingErr
	}

	if metasErr != nil {
		logrus.WithError(metasErr).Error("Erro ao buscar metas do backend")
		return nil, metasErr
	}

	start, end := periodBounds(filters)

	metasPorCorretor := make(map[string]float64)
	for i := range metas {
		meta := &metas[i]

		if meta.Tipo() != frappedomain.TipoMetaMensal || meta.DaCorretora() {
			continue
		}

		if !metaNoPeriodo(meta, start, end) {
			continue
		}

		metasPorCorretor[meta.Corretor] += meta.ValorMeta
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Total > ranking[j].Total
	})

	items := make([]domain.RankingCorretorItem, 0, len(ranking))

	for i, entry := range ranking {
		metaTotal := metasPorCorretor[entry.Corretor]

		percentual := 0.0
		if metaTotal > 0 {
			percentual = utils.RoundWithTwoDecimalPlace(entry.Total / metaTotal * 100)
		}

		items = append(items, domain.RankingCorretorItem{
			Corretor:              entry.Corretor,
			Vendas:                utils.RoundWithTwoDecimalPlace(entry.Total),
			Meta:                  utils.RoundWithTwoDecimalPlace(metaTotal),
			PercentualAtingimento: percentual,
			Posicao:               i + 1,
		})
	}

	return items, nil
}

// Snapshots retorna a série mensal persistida pelo agendador para um ano
func (s *Service) Snapshots(ctx context.Context, ano int) (*domain.FinanceiroSnapshotResponse, error) {
	return s.snapshotRepo.GetByYear(ano)
}

func periodBounds(filters *domain.FinanceiroFilters) (*time.Time, *time.Time) {
	if filters == nil {
		return nil, nil
	}
	return filters.StartDate, filters.EndDate
}
