package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/hk-dashboard-api/infrastructure/database"
	"github.com/vfg2006/hk-dashboard-api/infrastructure/integrator/reports"
	"github.com/vfg2006/hk-dashboard-api/infrastructure/integrator/reports/reportsclient"
	"github.com/vfg2006/hk-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/hk-dashboard-api/internal/api"
	"github.com/vfg2006/hk-dashboard-api/internal/config"
	"github.com/vfg2006/hk-dashboard-api/internal/domain"
	"github.com/vfg2006/hk-dashboard-api/internal/scheduler"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/acquiring"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/annotating"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/classifying"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/deriving"
	"github.com/vfg2006/hk-dashboard-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	annotationRepo := repository.NewAnnotationRepository(conn)
	annotator := annotating.NewService(annotationRepo)

	authenticator := authenticating.NewService(cfg)

	reportsClient := reportsclient.NewClient(cfg)
	reportsIntegrator := reports.New(reportsClient)

	loader := acquiring.NewService(reportsIntegrator)
	dashboardService := dashboard.NewService(
		loader,
		deriving.NewService(cfg),
		classifying.NewService(cfg),
	)
	session := dashboard.NewSession(dashboardService)

	// Seleção inicial em background para não atrasar a subida do servidor
	initialPeriod := defaultPeriod(cfg.App.DefaultPeriod, time.Now())
	go func() {
		view, err := session.Select(ctx, initialPeriod)
		if err != nil {
			logrus.WithError(err).WithField("period", initialPeriod.String()).Warn("Erro ao carregar o período inicial")
			return
		}
		logrus.WithFields(logrus.Fields{
			"period": initialPeriod.String(),
			"status": view.Status,
		}).Info("Período inicial carregado")
	}()

	refreshService := scheduler.NewDashboardRefreshService(session, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dashboard")
	} else {
		logrus.Info("Agendador de atualização do dashboard iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		session,
		annotator,
		authenticator,
		refreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// defaultPeriod usa DEFAULT_PERIOD quando válido, senão o mês anterior ao atual
func defaultPeriod(configured string, now time.Time) domain.PeriodKey {
	if configured != "" {
		period, err := domain.ParsePeriod(configured)
		if err == nil {
			return period
		}
		logrus.WithError(err).Warn("DEFAULT_PERIOD inválido, usando o mês anterior")
	}

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return domain.PeriodFromTime(firstOfMonth.AddDate(0, -1, 0))
}

// chdirToSource garante que o .env ao lado do código seja encontrado em desenvolvimento
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)
}

// dbconn cria a conexão com o banco de anotações
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de anotações")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de anotações estabelecida com sucesso")
	return conn
}
