package reportsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/sirupsen/logrus"

	reportsdomain "github.com/vfg2006/hk-dashboard-api/infrastructure/integrator/reports/domain"
)

type fetchOptions struct {
	// noStore desativa qualquer cache intermediário (painéis acumulado e mensal)
	noStore bool
}

func (c *ReportsClient) fetchJSON(ctx context.Context, file string, opts fetchOptions, target any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// Construir a URL do arquivo.
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return &reportsdomain.ResourceError{File: file, Err: reportsdomain.ErrResourceFetch, Cause: fmt.Errorf("erro ao analisar a URL base: %w", err)}
	}
	endpoint.Path = path.Join(endpoint.Path, file)

	if opts.noStore {
		query := endpoint.Query()
		query.Set("_ts", strconv.FormatInt(c.now().UnixMilli(), 10))
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return &reportsdomain.ResourceError{File: file, Err: reportsdomain.ErrResourceFetch, Cause: fmt.Errorf("erro ao criar a requisição: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	if opts.noStore {
		req.Header.Set("Cache-Control", "no-store")
		req.Header.Set("Pragma", "no-cache")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &reportsdomain.ResourceError{File: file, Err: reportsdomain.ErrResourceFetch, Cause: fmt.Errorf("erro ao executar a requisição: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Descarta o corpo para reaproveitar a conexão
		_, _ = io.Copy(io.Discard, resp.Body)
		return &reportsdomain.ResourceError{File: file, Status: resp.StatusCode, Err: reportsdomain.ErrResourceNotFound}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &reportsdomain.ResourceError{File: file, Err: reportsdomain.ErrResourceFetch, Cause: fmt.Errorf("erro ao decodificar a resposta: %w", err)}
	}

	logrus.WithField("file", file).Debug("reports: arquivo carregado")

	return nil
}
