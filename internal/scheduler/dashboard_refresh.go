// Package scheduler contém os serviços de agendamento do dashboard
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/hk-dashboard-api/internal/config"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/dashboard"
)

// Reloader recarrega o período ativo ignorando a memória
type Reloader interface {
	Reload(ctx context.Context) (*dashboard.View, error)
}

type DashboardRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DashboardRefreshService recarrega periodicamente o período ativo para pegar os
// arquivos que o pipeline de dados regenera ao longo do dia
type DashboardRefreshService struct {
	scheduler           *gocron.Scheduler
	reloader            Reloader
	config              DashboardRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastStatus          string
	lastError           string
}

func NewDashboardRefreshService(reloader Reloader, cfg *config.Config) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule: cfg.DashboardRefresh.CronSchedule, // Default: a cada 30 minutos
		SyncEnabled:  cfg.DashboardRefresh.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de atualização do dashboard carregada")

	return &DashboardRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		reloader:  reloader,
		config:    refreshConfig,
	}
}

func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Refresh(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh recarrega o período ativo. Sem período selecionado não há o que fazer.
func (s *DashboardRefreshService) Refresh(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do dashboard já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	view, err := s.reloader.Reload(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = ""

	switch {
	case errors.Is(err, dashboard.ErrNoActivePeriod):
		s.lastStatus = "skipped"
		logrus.Info("Nenhum período ativo, atualização do dashboard ignorada")
		return nil
	case errors.Is(err, dashboard.ErrLoadInProgress):
		s.lastStatus = "skipped"
		logrus.Info("Seleção de período em andamento, atualização do dashboard ignorada")
		return nil
	case errors.Is(err, dashboard.ErrSuperseded):
		s.lastStatus = "superseded"
		logrus.Info("Atualização do dashboard substituída por nova seleção de período")
		return nil
	case err != nil:
		s.lastStatus = "failed"
		s.lastError = err.Error()
		return err
	}

	s.lastStatus = string(view.Status)

	logrus.WithFields(logrus.Fields{
		"period": view.Period.String(),
		"status": view.Status,
	}).Info("Atualização do dashboard concluída")

	return nil
}

// TriggerManualSync dispara a atualização fora do horário do cron
func (s *DashboardRefreshService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do dashboard já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do dashboard")
	go func() {
		if err := s.Refresh(context.WithoutCancel(ctx)); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do dashboard")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DashboardRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_status":            s.lastStatus,
		"last_error":             s.lastError,
	}
}
