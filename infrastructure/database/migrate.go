package database

import "context"

// Migrate cria as tabelas que ainda não existem. As instruções valem para os dois drivers.
func (c *Connection) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS annotations (
			annotation_key VARCHAR(255) PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
	}

	for _, statement := range statements {
		if _, err := c.DB.ExecContext(ctx, statement); err != nil {
			return err
		}
	}

	return nil
}
