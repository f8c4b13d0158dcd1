package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/rbezerra/corretora-financeiro-api/infrastructure/repository/mocks"
	"github.com/rbezerra/corretora-financeiro-api/internal/config"
	"github.com/rbezerra/corretora-financeiro-api/internal/domain"
	financeiromocks "github.com/rbezerra/corretora-financeiro-api/internal/usecases/financeiro/mocks"
)

func newSyncService(t *testing.T, lookback int) (*SnapshotSyncService, *financeiromocks.MockFinanceiro, *repomocks.MockSnapshotRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	financeiroService := financeiromocks.NewMockFinanceiro(ctrl)
	snapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)

	cfg := &config.Config{
		SnapshotSync: config.SnapshotSync{
			CronSchedule: "0 5 * * *",
			Enabled:      true,
			YearLookback: lookback,
		},
	}

	return NewSnapshotSyncService(financeiroService, snapshotRepo, cfg), financeiroService, snapshotRepo
}

func TestSyncNowPersisteSerieDoAno(t *testing.T) {
	service, financeiroService, snapshotRepo := newSyncService(t, 0)

	ano := time.Now().Year()

	items := []domain.EvolucaoVendasItem{
		{Mes: "01/" + formatYear(ano), Vendas: 1000, Meta: 40000, AnoAnterior: 800},
		{Mes: "02/" + formatYear(ano), Vendas: 2000, Meta: 40000, AnoAnterior: 900},
	}

	financeiroService.EXPECT().
		EvolucaoVendas(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters *domain.FinanceiroFilters) ([]domain.EvolucaoVendasItem, error) {
			require.NotNil(t, filters.StartDate)
			require.NotNil(t, filters.EndDate)
			assert.Equal(t, ano, filters.StartDate.Year())
			assert.Equal(t, time.January, filters.StartDate.Month())
			assert.Equal(t, time.December, filters.EndDate.Month())
			return items, nil
		})

	snapshotRepo.EXPECT().SaveOrUpdate(&domain.FinanceiroSnapshot{
		Periodo: items[0].Mes, Vendas: 1000, Meta: 40000, AnoAnterior: 800,
	}).Return(nil)
	snapshotRepo.EXPECT().SaveOrUpdate(&domain.FinanceiroSnapshot{
		Periodo: items[1].Mes, Vendas: 2000, Meta: 40000, AnoAnterior: 900,
	}).Return(nil)
	snapshotRepo.EXPECT().DeleteOlderThan(0).Return(int64(0), nil)

	service.SyncNow(context.Background())

	startedAt, completedAt := service.LastSync()
	assert.False(t, startedAt.IsZero())
	assert.False(t, completedAt.IsZero())
}

func TestSyncNowComLookbackCobreAnosAnteriores(t *testing.T) {
	service, financeiroService, snapshotRepo := newSyncService(t, 1)

	ano := time.Now().Year()
	anosConsultados := make([]int, 0, 2)

	financeiroService.EXPECT().
		EvolucaoVendas(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters *domain.FinanceiroFilters) ([]domain.EvolucaoVendasItem, error) {
			anosConsultados = append(anosConsultados, filters.StartDate.Year())
			return []domain.EvolucaoVendasItem{}, nil
		}).
		Times(2)

	// a janela de retenção acompanha a janela de recálculo
	snapshotRepo.EXPECT().DeleteOlderThan(1).Return(int64(3), nil)

	service.SyncNow(context.Background())

	assert.Equal(t, []int{ano - 1, ano}, anosConsultados)
}

func TestSyncNowContinuaAposErroDeUmAno(t *testing.T) {
	service, financeiroService, snapshotRepo := newSyncService(t, 1)

	ano := time.Now().Year()

	// o ano anterior falha mas o corrente ainda é sincronizado
	financeiroService.EXPECT().
		EvolucaoVendas(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters *domain.FinanceiroFilters) ([]domain.EvolucaoVendasItem, error) {
			if filters.StartDate.Year() == ano-1 {
				return nil, assert.AnError
			}
			return []domain.EvolucaoVendasItem{
				{Mes: "01/" + formatYear(ano), Vendas: 500},
			}, nil
		}).
		Times(2)

	snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	snapshotRepo.EXPECT().DeleteOlderThan(1).Return(int64(0), nil)

	service.SyncNow(context.Background())
}

func TestSyncNowConcluiMesmoComErroNaRetencao(t *testing.T) {
	service, financeiroService, snapshotRepo := newSyncService(t, 0)

	financeiroService.EXPECT().
		EvolucaoVendas(gomock.Any(), gomock.Any()).
		Return([]domain.EvolucaoVendasItem{}, nil)
	snapshotRepo.EXPECT().DeleteOlderThan(0).Return(int64(0), assert.AnError)

	service.SyncNow(context.Background())

	_, completedAt := service.LastSync()
	assert.False(t, completedAt.IsZero())
}

func TestLastSyncDuranteSincronizacaoConcorrente(t *testing.T) {
	service, financeiroService, snapshotRepo := newSyncService(t, 0)

	financeiroService.EXPECT().
		EvolucaoVendas(gomock.Any(), gomock.Any()).
		Return([]domain.EvolucaoVendasItem{}, nil).
		AnyTimes()
	snapshotRepo.EXPECT().DeleteOlderThan(0).Return(int64(0), nil).AnyTimes()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			service.SyncNow(context.Background())
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			service.LastSync()
		}
	}()

	wg.Wait()

	startedAt, completedAt := service.LastSync()
	assert.False(t, startedAt.IsZero())
	assert.False(t, completedAt.IsZero())
}

func formatYear(ano int) string {
	return time.Date(ano, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")
}
