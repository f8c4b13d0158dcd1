package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/rbezerra/corretora-financeiro-api/infrastructure/repository"
	"github.com/rbezerra/corretora-financeiro-api/internal/config"
	"github.com/rbezerra/corretora-financeiro-api/internal/domain"
	"github.com/rbezerra/corretora-financeiro-api/internal/usecases/financeiro"
)

// SnapshotSyncConfig representa a configuração do agendador de snapshots
type SnapshotSyncConfig struct {
	CronSchedule string
	YearLookback int
	SyncEnabled  bool
}

// SnapshotSyncService recalcula periodicamente a série mensal de vendas e
// metas e persiste o resultado para consulta histórica sem bater no backend
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	financeiroService   financeiro.Financeiro
	snapshotRepo        repository.SnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSnapshotSyncService(
	financeiroService financeiro.Financeiro,
	snapshotRepo repository.SnapshotRepository,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: appConfig.SnapshotSync.CronSchedule,
		YearLookback: appConfig.SnapshotSync.YearLookback,
		SyncEnabled:  appConfig.SnapshotSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"year_lookback": syncConfig.YearLookback,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots financeiros carregada")

	return &SnapshotSyncService{
		scheduler:         gocron.NewScheduler(time.Local),
		config:            syncConfig,
		financeiroService: financeiroService,
		snapshotRepo:      snapshotRepo,
		syncRunning:       false,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots financeiros desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots financeiros")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots financeiros")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSnapshots recalcula a série do ano corrente e dos anos anteriores
// configurados; execuções sobrepostas são ignoradas
func (s *SnapshotSyncService) syncAllSnapshots(ctx context.Context) {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	// escrito sob o mutex porque LastSync lê concorrentemente
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de snapshots financeiros")

	anoCorrente := time.Now().Year()
	salvos := 0

	for ano := anoCorrente - s.config.YearLookback; ano <= anoCorrente; ano++ {
		count, err := s.syncYear(ctx, ano)
		if err != nil {
			logrus.WithError(err).WithField("ano", ano).Error("Erro ao sincronizar snapshots do ano")
			continue
		}
		salvos += count
	}

	// anos que saíram da janela de recálculo não são mais atualizados,
	// então os snapshots deles são descartados
	removidos, err := s.snapshotRepo.DeleteOlderThan(s.config.YearLookback)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover snapshots fora da janela de retenção")
	} else if removidos > 0 {
		logrus.WithField("snapshots_removidos", removidos).Info("Snapshots fora da janela de retenção removidos")
	}

	logrus.WithFields(logrus.Fields{
		"snapshots_salvos": salvos,
		"duracao":          time.Since(startTime).String(),
	}).Info("Sincronização de snapshots financeiros concluída")
}

// syncYear recalcula a série de um ano inteiro e persiste cada período
func (s *SnapshotSyncService) syncYear(ctx context.Context, ano int) (int, error) {
	inicio := time.Date(ano, time.January, 1, 0, 0, 0, 0, time.Local)
	fim := time.Date(ano, time.December, 31, 0, 0, 0, 0, time.Local)

	items, err := s.financeiroService.EvolucaoVendas(ctx, &domain.FinanceiroFilters{
		StartDate: &inicio,
		EndDate:   &fim,
	})
	if err != nil {
		return 0, err
	}

	salvos := 0
	for _, item := range items {
		snapshot := &domain.FinanceiroSnapshot{
			Periodo:     item.Mes,
			Vendas:      item.Vendas,
			Meta:        item.Meta,
			AnoAnterior: item.AnoAnterior,
		}

		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			logrus.WithError(err).WithField("periodo", item.Mes).Error("Erro ao salvar snapshot")
			continue
		}
		salvos++
	}

	return salvos, nil
}

// SyncNow dispara uma sincronização imediata fora do agendamento
func (s *SnapshotSyncService) SyncNow(ctx context.Context) {
	s.syncAllSnapshots(ctx)
}

// LastSync retorna os horários da última execução
func (s *SnapshotSyncService) LastSync() (startedAt, completedAt time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastSyncStartedAt, s.lastSyncCompletedAt
}
