// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/hk-dashboard-api/infrastructure/database"
)

const (
	annotationTable = "annotations"
)

// UpdateFunc recebe o valor atual da chave e devolve o novo valor
type UpdateFunc func(current string, found bool) (string, error)

// AnnotationRepository é o armazenamento chave-valor das anotações.
// Set não valida nem controla conflito: a última escrita vence. Update faz
// leitura e escrita da mesma chave de forma atômica.
type AnnotationRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	GetMany(ctx context.Context, keys []string) (map[string]string, error)
	Set(ctx context.Context, key string, value string) error
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

type annotationRepository struct {
	conn database.Conn
	now  func() time.Time
}

func NewAnnotationRepository(conn database.Conn) AnnotationRepository {
	return &annotationRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *annotationRepository) Get(ctx context.Context, key string) (string, bool, error) {
	return r.get(ctx, r.conn, key)
}

func (r *annotationRepository) get(ctx context.Context, q database.Queryer, key string) (string, bool, error) {
	query, args, err := squirrel.
		Select("value").
		From(annotationTable).
		Where(squirrel.Eq{"annotation_key": key}).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value string
	if err := q.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("erro ao buscar anotação %s: %w", key, err)
	}

	return value, true, nil
}

func (r *annotationRepository) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	values := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return values, nil
	}

	query, args, err := squirrel.
		Select("annotation_key", "value").
		From(annotationTable).
		Where(squirrel.Eq{"annotation_key": keys}).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("erro ao escanear anotação: %w", err)
		}
		values[key] = value
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return values, nil
}

// Set grava o valor exatamente como recebido (upsert)
func (r *annotationRepository) Set(ctx context.Context, key string, value string) error {
	return r.set(ctx, r.conn, key, value)
}

func (r *annotationRepository) set(ctx context.Context, q database.Queryer, key string, value string) error {
	query, args, err := squirrel.
		Insert(annotationTable).
		Columns("annotation_key", "value", "updated_at").
		Values(key, value, r.now().UTC()).
		Suffix("ON CONFLICT (annotation_key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar anotação %s: %w", key, err)
	}

	return nil
}

// Update serializa leitura e escrita da chave numa transação. No Postgres um
// advisory lock por chave cobre também a chave que ainda não existe; no
// SQLite a conexão única já serializa as transações.
func (r *annotationRepository) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if r.conn.Driver() == database.DriverPostgres {
			if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
				return fmt.Errorf("erro ao bloquear anotação %s: %w", key, err)
			}
		}

		current, found, err := r.get(ctx, tx, key)
		if err != nil {
			return err
		}

		value, err := fn(current, found)
		if err != nil {
			return err
		}

		return r.set(ctx, tx, key, value)
	})
}
