package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe"
	"github.com/rbezerra/corretora-financeiro-api/internal/domain"
	"github.com/rbezerra/corretora-financeiro-api/internal/usecases/financeiro"
	"github.com/rbezerra/corretora-financeiro-api/pkg/apiErrors"
	"github.com/rbezerra/corretora-financeiro-api/pkg/log"
	"github.com/rbezerra/corretora-financeiro-api/pkg/utils"
)

// parseFinanceiroFilters monta o período a partir dos parâmetros start_date
// e end_date; parâmetro ausente vira limite nulo e formato irreconhecível
// também, a decisão do que fazer sem período é de cada operação
func parseFinanceiroFilters(r *http.Request) *domain.FinanceiroFilters {
	return &domain.FinanceiroFilters{
		StartDate: utils.ParseFlexibleDate(r.URL.Query().Get("start_date")),
		EndDate:   utils.ParseFlexibleDate(r.URL.Query().Get("end_date")),
	}
}

// parseAno lê o parâmetro ano, assumindo o ano corrente quando ausente ou
// inválido
func parseAno(r *http.Request) int {
	ano, err := strconv.Atoi(r.URL.Query().Get("ano"))
	if err != nil || ano <= 0 {
		return time.Now().Year()
	}
	return ano
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// o status 200 já foi enviado, escrever um documento de erro aqui
		// só corromperia a resposta
		log.ForContext(r.Context()).WithError(err).Error("financeiro: erro ao codificar resposta")
	}
}

// GetEvolucaoVendas responde a série mensal vendas × meta × ano anterior
func GetEvolucaoVendas(service financeiro.Financeiro) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		filters := parseFinanceiroFilters(r)

		items, err := service.EvolucaoVendas(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("financeiro: erro ao montar evolução de vendas")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o backend de recursos", nil)
			return
		}

		writeJSON(w, r, items)
	})
}

// GetMetasMensais responde a grade de status das metas mensais de um ano
func GetMetasMensais(service financeiro.Financeiro) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		ano := parseAno(r)

		items, err := service.MetasMensaisGrafico(r.Context(), ano)
		if err != nil {
			logger.WithError(err).WithField("ano", ano).Error("financeiro: erro ao montar grade de metas mensais")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o backend de recursos", nil)
			return
		}

		writeJSON(w, r, items)
	})
}

// GetMetasPorCategoria responde os totais de metas da corretora por categoria
func GetMetasPorCategoria(service financeiro.Financeiro) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		totais, err := service.MetasMensaisPorCategoria(r.Context(), parseFinanceiroFilters(r))
		if err != nil {
			logger.WithError(err).Error("financeiro: erro ao totalizar metas por categoria")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o backend de recursos", nil)
			return
		}

		writeJSON(w, r, totais)
	})
}

// GetMetasPorCategoriaCorretor responde os totais de metas por corretor e
// categoria
func GetMetasPorCategoriaCorretor(service financeiro.Financeiro) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		totais, err := service.MetasMensaisPorCategoriaCorretor(r.Context(), parseFinanceiroFilters(r))
		if err != nil {
			logger.WithError(err).Error("financeiro: erro ao totalizar metas por categoria e corretor")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o backend de recursos", nil)
			return
		}

		writeJSON(w, r, totais)
	})
}

// GetRankingCorretores responde o ranking de corretores com metas e
// percentual de atingimento
func GetRankingCorretores(service financeiro.Financeiro) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		items, err := service.MetasPorCorretorRanking(r.Context(), parseFinanceiroFilters(r))
		if err != nil {
			logger.WithError(err).Error("financeiro: erro ao montar ranking de corretores")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o backend de recursos", nil)
			return
		}

		writeJSON(w, r, items)
	})
}

// GetVendasPorCategoria repassa a agregação de vendas por categoria feita
// pelo próprio backend
func GetVendasPorCategoria(integrator frappe.FrappeIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		items, err := integrator.VendasPorCategoria(r.Context(), parseFinanceiroFilters(r))
		if err != nil {
			logger.WithError(err).Error("financeiro: erro ao consultar vendas por categoria")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o backend de recursos", nil)
			return
		}

		writeJSON(w, r, items)
	})
}

// GetVendasPorCategoriaCorretor repassa a agregação de vendas por categoria
// e corretor feita pelo próprio backend
func GetVendasPorCategoriaCorretor(integrator frappe.FrappeIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		items, err := integrator.VendasPorCategoriaCorretor(r.Context(), parseFinanceiroFilters(r))
		if err != nil {
			logger.WithError(err).Error("financeiro: erro ao consultar vendas por categoria e corretor")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o backend de recursos", nil)
			return
		}

		writeJSON(w, r, items)
	})
}

// GetSnapshots responde a série mensal persistida pelo agendador
func GetSnapshots(service financeiro.Financeiro) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		ano := parseAno(r)

		response, err := service.Snapshots(r.Context(), ano)
		if err != nil {
			logger.WithError(err).WithField("ano", ano).Error("financeiro: erro ao consultar snapshots")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar snapshots", nil)
			return
		}

		writeJSON(w, r, response)
	})
}
