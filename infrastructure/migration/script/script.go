package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/hk-dashboard-api/infrastructure/database"
	"github.com/vfg2006/hk-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/hk-dashboard-api/internal/config"
	"github.com/vfg2006/hk-dashboard-api/internal/domain"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/annotating"
	"github.com/vfg2006/hk-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const dumpFileEnv = "ANNOTATIONS_DUMP_FILE"

// Entry é uma anotação já no formato gravado pelo serviço
type Entry struct {
	Key   string
	Value string
}

// ImportStats resume o resultado de uma importação
type ImportStats struct {
	Imported int
	Ignored  int
	Errors   int
}

// Dump é o conteúdo exportado do navegador: chave -> valor bruto
type Dump map[string]string

func readDump(path string) (Dump, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo %s: %w", path, err)
	}

	dump := Dump{}
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("arquivo %s não é um objeto JSON de textos: %w", path, err)
	}
	return dump, nil
}

// prepareEntries mantém apenas as chaves conhecidas e converte cada valor
// para o formato gravado pelo serviço de anotações. Insights já são objetos
// JSON no navegador; os demais são textos simples.
func prepareEntries(dump Dump) ([]Entry, []string) {
	keys := make([]string, 0, len(dump))
	for k := range dump {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	ignored := make([]string, 0)

	for _, key := range keys {
		raw := dump[key]

		switch {
		case key == annotating.ReportDateKey:
			entries = append(entries, Entry{Key: key, Value: encodeText(raw)})
		case hasPeriodSuffix(key, annotating.InsightsKey):
			insights := map[string]string{}
			if err := json.Unmarshal([]byte(raw), &insights); err != nil {
				ignored = append(ignored, key)
				continue
			}
			entries = append(entries, Entry{Key: key, Value: raw})
		case hasPeriodSuffix(key, annotating.StoreAnalysisKey), hasPeriodSuffix(key, annotating.YOYSummaryKey):
			entries = append(entries, Entry{Key: key, Value: encodeText(raw)})
		default:
			ignored = append(ignored, key)
		}
	}

	return entries, ignored
}

// hasPeriodSuffix confere se a chave é exatamente keyFn(período) para algum período válido
func hasPeriodSuffix(key string, keyFn func(domain.PeriodKey) string) bool {
	prefix := strings.TrimSuffix(keyFn(domain.PeriodKey{}), domain.PeriodKey{}.String())
	if !strings.HasPrefix(key, prefix) {
		return false
	}

	period, err := domain.ParsePeriod(strings.TrimPrefix(key, prefix))
	if err != nil {
		return false
	}
	return keyFn(period) == key
}

func encodeText(text string) string {
	encoded, _ := json.Marshal(text)
	return string(encoded)
}

func importEntries(ctx context.Context, repo repository.AnnotationRepository, entries []Entry) ImportStats {
	logrus.Infof("Iniciando importação de %d anotações...", len(entries))
	startTime := time.Now()

	stats := ImportStats{}
	for i, e := range entries {
		if err := repo.Set(ctx, e.Key, e.Value); err != nil {
			logrus.Errorf("ERRO ao gravar anotação [%d/%d] %s: %v", i+1, len(entries), e.Key, err)
			stats.Errors++
			continue
		}
		stats.Imported++

		if i > 0 && i%10 == 0 {
			logrus.Infof("Progresso: %d/%d anotações processadas", i+1, len(entries))
		}
	}

	logrus.Infof("Importação concluída em %v. Sucesso: %d, Erros: %d", time.Since(startTime), stats.Imported, stats.Errors)
	return stats
}

func dumpPath() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return os.Getenv(dumpFileEnv)
}

func main() {
	path := dumpPath()
	if path == "" {
		logrus.Fatalf("Informe o arquivo exportado como argumento ou em %s", dumpFileEnv)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)
	logrus.Info("Iniciando script de importação de anotações...")

	dump, err := readDump(path)
	if err != nil {
		logrus.Fatal(err)
	}

	entries, ignored := prepareEntries(dump)
	for _, key := range ignored {
		logrus.Warnf("AVISO: chave ignorada %s", key)
	}

	ctx := context.Background()

	logrus.Info("Conectando ao banco de dados...")
	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	stats := importEntries(ctx, repository.NewAnnotationRepository(conn), entries)
	stats.Ignored = len(ignored)

	logrus.WithFields(logrus.Fields{
		"imported": stats.Imported,
		"ignored":  stats.Ignored,
		"errors":   stats.Errors,
	}).Info("Script finalizado")

	if stats.Errors > 0 {
		os.Exit(1)
	}
}
