package financeiro

import (
	"strings"
	"time"

	frappedomain "github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/domain"
	"github.com/rbezerra/corretora-financeiro-api/internal/domain"
	"github.com/rbezerra/corretora-financeiro-api/pkg/utils"
)

// categoriaCorresponde verifica se a categoria da meta casa com o tipo do
// seguro. Categoria vazia ou "Geral" casa com qualquer tipo; caso contrário a
// comparação é case-insensitive e um seguro sem tipo nunca casa.
func categoriaCorresponde(categoriaMeta, tipoSeguro string) bool {
	if categoriaMeta == "" || categoriaMeta == frappedomain.CategoriaGeral {
		return true
	}

	if tipoSeguro == "" {
		return false
	}

	return strings.EqualFold(categoriaMeta, tipoSeguro)
}

// corretorCorresponde verifica se o corretor da meta casa com o seguro.
// Corretor vazio ou a sentinela "Corretora" casa com qualquer seguro; caso
// contrário qualquer um dos dois campos de corretor do seguro satisfaz.
func corretorCorresponde(corretorMeta string, seguro *frappedomain.Seguro) bool {
	if corretorMeta == "" || corretorMeta == frappedomain.CorretoraSentinela {
		return true
	}

	return corretorMeta == seguro.CorretorNome || corretorMeta == seguro.CorretorResponsavel
}

// mesDaMeta resolve o início do mês de uma meta mensal a partir do nome do
// mês e do ano. Retorna nil quando o nome do mês não é reconhecido; metas
// assim são excluídas de todas as agregações.
func mesDaMeta(meta *frappedomain.Meta) *time.Time {
	mes := utils.MonthNameToNumber(meta.Mes)
	if mes == 0 || meta.Ano == 0 {
		return nil
	}

	date := time.Date(meta.Ano, time.Month(mes), 1, 0, 0, 0, 0, time.Local)
	return &date
}

// metaNoPeriodo verifica se o mês da meta cai dentro do período consultado
// (inclusivo, em granularidade de mês). Sem limites, toda meta resolvível é
// considerada; meta com mês irresolvível nunca está no período.
func metaNoPeriodo(meta *frappedomain.Meta, start, end *time.Time) bool {
	if start == nil && end == nil {
		return true
	}

	date := mesDaMeta(meta)
	if date == nil {
		return false
	}

	if start != nil && date.Before(utils.MonthStartOf(*start)) {
		return false
	}

	if end != nil && date.After(utils.MonthStartOf(*end)) {
		return false
	}

	return true
}

// dataEfetiva retorna a data de referência do seguro: início de vigência
// quando presente e interpretável, senão a data de criação do registro.
func dataEfetiva(seguro *frappedomain.Seguro) *time.Time {
	if date := utils.ParseFlexibleDate(seguro.InicioVigencia); date != nil {
		return date
	}

	return utils.ParseFlexibleDate(seguro.Creation)
}

// janelaVigencia retorna os limites da janela de cobertura do seguro. Sem
// fim de vigência, ou com fim anterior ao início, o seguro é tratado como
// evento pontual na data efetiva.
func janelaVigencia(seguro *frappedomain.Seguro) (*time.Time, *time.Time) {
	inicio := dataEfetiva(seguro)
	if inicio == nil {
		return nil, nil
	}

	fim := utils.ParseFlexibleDate(seguro.FimVigencia)
	if fim == nil || fim.Before(*inicio) {
		return inicio, inicio
	}

	return inicio, fim
}

// seguroCobreMes verifica se a janela de vigência do seguro intersecta o mês
// informado. Um seguro de vigência longa contribui para todos os meses que
// cobre, não apenas para o mês da venda.
func seguroCobreMes(seguro *frappedomain.Seguro, mes time.Time) bool {
	inicio, fim := janelaVigencia(seguro)
	if inicio == nil {
		return false
	}

	mesInicio := utils.MonthStartOf(mes)
	return !mesInicio.Before(utils.MonthStartOf(*inicio)) && !mesInicio.After(utils.MonthStartOf(*fim))
}

// normalizarCategoria reduz o rótulo de categoria à chave normalizada usada
// nas quebras por categoria; rótulos fora do conjunto conhecido caem em
// "outros".
func normalizarCategoria(categoria string) string {
	switch strings.ToLower(strings.TrimSpace(categoria)) {
	case domain.CategoriaAuto:
		return domain.CategoriaAuto
	case domain.CategoriaVida:
		return domain.CategoriaVida
	case domain.CategoriaResidencial:
		return domain.CategoriaResidencial
	case domain.CategoriaEmpresarial:
		return domain.CategoriaEmpresarial
	case domain.CategoriaCarga:
		return domain.CategoriaCarga
	default:
		return domain.CategoriaOutros
	}
}
