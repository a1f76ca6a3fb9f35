// Package scheduler contém os serviços de agendamento para atualização das planilhas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/traffic-dashboard-api/internal/config"
	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/traffic-dashboard-api/pkg/log"
)

// FeedRefreshConfig representa a configuração do agendador de atualização das planilhas
type FeedRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// VariantStatus guarda o resultado da última atualização de uma variante
type VariantStatus struct {
	SnapshotID  string    `json:"snapshot_id,omitempty"`
	Rows        int       `json:"rows"`
	Error       string    `json:"error,omitempty"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

// FeedRefreshService recarrega periodicamente as planilhas configuradas no cache
type FeedRefreshService struct {
	scheduler           *gocron.Scheduler
	config              FeedRefreshConfig
	dashboards          dashboarding.Dashboarder
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	variants            map[domain.Variant]VariantStatus
}

// NewFeedRefreshService cria uma nova instância do serviço de atualização das planilhas
func NewFeedRefreshService(dashboards dashboarding.Dashboarder, cfg *config.Config) *FeedRefreshService {
	refreshConfig := FeedRefreshConfig{
		CronSchedule: cfg.FeedRefresh.CronSchedule,
		SyncEnabled:  cfg.FeedRefresh.Enabled,
	}

	log.L.WithFields(log.Fields{
		"feed_cron": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de atualização das planilhas carregada")

	return &FeedRefreshService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     refreshConfig,
		dashboards: dashboards,
		variants:   make(map[domain.Variant]VariantStatus),
	}
}

func (s *FeedRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Cron de atualização das planilhas desabilitada por configuração")
		return nil
	}

	log.L.WithField("feed_cron", s.config.CronSchedule).Info("Iniciando cron de atualização das planilhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshFeeds(context.Background(), nil); err != nil {
			log.L.WithError(err).Error("Erro na atualização das planilhas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização das planilhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando cron de atualização das planilhas")
		s.scheduler.Stop()
	}()

	return nil
}

// Stop encerra o agendador, se estiver em execução
func (s *FeedRefreshService) Stop() {
	s.scheduler.Stop()
}

// RefreshFeeds recarrega em paralelo as variantes informadas (todas as
// configuradas quando vazio). Falhas de uma variante não interrompem as outras.
func (s *FeedRefreshService) RefreshFeeds(ctx context.Context, variants []domain.Variant) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Warn("Atualização das planilhas já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	if len(variants) == 0 {
		variants = s.configuredVariants()
	}

	log.L.WithField("feeds", len(variants)).Info("Iniciando atualização das planilhas")

	group, groupCtx := errgroup.WithContext(ctx)
	for _, variant := range variants {
		variant := variant
		group.Go(func() error {
			snapshot, err := s.dashboards.Refresh(groupCtx, variant)
			s.record(variant, snapshot, err)
			if err != nil {
				log.L.WithError(err).WithField("variant", variant).Error("Erro ao atualizar planilha")
				return nil
			}

			log.L.WithFields(log.Fields{
				"variant": variant,
				"rows":    snapshot.Table.Len(),
			}).Info("Planilha atualizada")
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	log.L.Info("Atualização das planilhas concluída")
	return nil
}

// TriggerManualSync inicia manualmente a atualização das variantes informadas
func (s *FeedRefreshService) TriggerManualSync(variants ...domain.Variant) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Atualização das planilhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("Iniciando atualização manual das planilhas")
	go func() {
		if err := s.RefreshFeeds(context.Background(), variants); err != nil {
			log.L.WithError(err).Error("Erro na atualização manual das planilhas")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *FeedRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	variants := make(map[domain.Variant]VariantStatus, len(s.variants))
	for variant, status := range s.variants {
		variants[variant] = status
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"feeds":                  variants,
	}
}

func (s *FeedRefreshService) configuredVariants() []domain.Variant {
	variants := make([]domain.Variant, 0)
	for _, info := range s.dashboards.Variants() {
		if info.Configured {
			variants = append(variants, info.Variant)
		}
	}
	return variants
}

func (s *FeedRefreshService) record(variant domain.Variant, snapshot *loading.Snapshot, err error) {
	status := VariantStatus{RefreshedAt: time.Now()}
	if err != nil {
		status.Error = err.Error()
	} else {
		status.SnapshotID = snapshot.ID
		status.Rows = snapshot.Table.Len()
	}

	s.syncMutex.Lock()
	s.variants[variant] = status
	s.syncMutex.Unlock()
}
