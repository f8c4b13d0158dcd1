package metas

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe"
	frappedomain "github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/domain"
	"github.com/rbezerra/corretora-financeiro-api/infrastructure/integrator/frappe/frappeclient"
	"github.com/rbezerra/corretora-financeiro-api/internal/usecases/financeiro"
	"github.com/rbezerra/corretora-financeiro-api/pkg/apiErrors"
	"github.com/rbezerra/corretora-financeiro-api/pkg/utils"
)

// Metas expõe o cadastro de metas sobre o backend de recursos, com a
// validação de domínio que o backend não faz
type Metas interface {
	ListMetas(ctx context.Context) ([]frappedomain.Meta, error)
	CreateMeta(ctx context.Context, meta *frappedomain.Meta) (*frappedomain.Meta, error)
	UpdateMeta(ctx context.Context, meta *frappedomain.Meta) error
	DeleteMeta(ctx context.Context, name string) error
}

type Service struct {
	integrator frappe.FrappeIntegrator
}

func NewService(integrator frappe.FrappeIntegrator) Metas {
	return &Service{
		integrator: integrator,
	}
}

// ListMetas lista as metas cadastradas com o realizado de cada uma calculado
// sobre os seguros do backend
func (s *Service) ListMetas(ctx context.Context) ([]frappedomain.Meta, error) {
	items, err := s.integrator.ListMetas(ctx)
	if err != nil {
		return nil, err
	}

	seguros, err := s.integrator.ListSeguros(ctx)
	if err != nil {
		// a listagem ainda serve sem o realizado
		logrus.WithError(err).Warn("Erro ao buscar seguros para calcular o realizado das metas")
		return items, nil
	}

	for i := range items {
		realizado := utils.RoundWithTwoDecimalPlace(financeiro.CalcularRealizadoMeta(&items[i], seguros))
		items[i].ValorAtingido = &realizado
	}

	return items, nil
}

// backendNotFound identifica a resposta 404 do backend para um documento
// inexistente
func backendNotFound(err error) bool {
	var reqErr *frappeclient.RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound
}

// validateMeta aplica as regras de cadastro: corretor e ano obrigatórios,
// valor positivo, tipo conhecido e, para metas mensais, nome de mês
// reconhecido por extenso
func validateMeta(meta *frappedomain.Meta) error {
	if meta.Corretor == "" || meta.Ano == 0 {
		return NewMetaError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Corretor e ano são obrigatórios")
	}

	if meta.ValorMeta <= 0 {
		return NewMetaError(ErrInvalidValue, apiErrors.ErrInvalidFormat, "Valor da meta deve ser positivo")
	}

	switch meta.Tipo() {
	case frappedomain.TipoMetaMensal:
		if utils.MonthNameToNumber(meta.Mes) == 0 {
			return NewMetaError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, "Mês deve ser o nome por extenso, de Janeiro a Dezembro")
		}
	case frappedomain.TipoMetaAnual:
		// meta anual não carrega mês
	default:
		return NewMetaError(ErrInvalidTipoMeta, apiErrors.ErrInvalidFormat, "Tipo de meta deve ser Mensal ou Anual")
	}

	return nil
}

func (s *Service) CreateMeta(ctx context.Context, meta *frappedomain.Meta) (*frappedomain.Meta, error) {
	if err := validateMeta(meta); err != nil {
		return nil, err
	}

	// o nome é gerado aqui para a chamada ser idempotente do lado do
	// backend em caso de retentativa
	if meta.Name == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}
		meta.Name = "META-" + id
	}

	created, err := s.integrator.CreateMeta(ctx, meta)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar meta no backend")
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateMeta(ctx context.Context, meta *frappedomain.Meta) error {
	if meta.Name == "" {
		return NewMetaError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Identificador da meta é obrigatório")
	}

	if err := validateMeta(meta); err != nil {
		return err
	}

	if err := s.integrator.UpdateMeta(ctx, meta); err != nil {
		if backendNotFound(err) {
			return NewMetaError(ErrMetaNotFound, apiErrors.ErrRecordNotFound, "Meta "+meta.Name+" não encontrada")
		}
		logrus.WithError(err).WithField("meta", meta.Name).Error("Erro ao atualizar meta no backend")
		return err
	}

	return nil
}

func (s *Service) DeleteMeta(ctx context.Context, name string) error {
	if name == "" {
		return NewMetaError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Identificador da meta é obrigatório")
	}

	if err := s.integrator.DeleteMeta(ctx, name); err != nil {
		if backendNotFound(err) {
			return NewMetaError(ErrMetaNotFound, apiErrors.ErrRecordNotFound, "Meta "+name+" não encontrada")
		}
		logrus.WithError(err).WithField("meta", name).Error("Erro ao remover meta no backend")
		return err
	}

	return nil
}
