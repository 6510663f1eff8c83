package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/BarsilNzola/AutoPay-AI/internal/helpers"
	"github.com/BarsilNzola/AutoPay-AI/internal/interfaces"
	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/business"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PostgresAutomationStore is the durable automation repository adapter.
// Schema bootstrap lives in scripts/schema.sql.
type PostgresAutomationStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgresAutomationStore creates a Postgres-backed automation store.
func NewPostgresAutomationStore(pool *pgxpool.Pool) *PostgresAutomationStore {
	return &PostgresAutomationStore{
		pool:   pool,
		logger: logger.Log,
	}
}

const automationColumns = `id, user_address, type, params, status, created_at, next_run_at, delegation_hash, transaction_hash, simulated`

// Create persists a new automation intent, assigning identifier and pending
// status when absent.
func (s *PostgresAutomationStore) Create(ctx context.Context, intent *business.AutomationIntent) (*business.AutomationIntent, error) {
	now := time.Now().UTC()

	stored := *intent
	if stored.ID == "" {
		stored.ID = helpers.NewAutomationID(now)
	}
	if stored.Status == "" {
		stored.Status = business.AutomationPending
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UserAddress = helpers.NormalizeAddress(stored.UserAddress)

	paramsJSON, err := json.Marshal(stored.Params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal automation params: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO automations (`+automationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		stored.ID, stored.UserAddress, string(stored.Type), paramsJSON, string(stored.Status),
		stored.CreatedAt, stored.NextRunAt, stored.DelegationHash, stored.TransactionHash, stored.Simulated,
	)
	if err != nil {
		s.logger.Error("Failed to insert automation",
			zap.String("automation_id", stored.ID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create automation: %w", err)
	}

	return &stored, nil
}

// Get returns the automation with the given id owned by the user.
func (s *PostgresAutomationStore) Get(ctx context.Context, userAddress, automationID string) (*business.AutomationIntent, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+automationColumns+` FROM automations WHERE id = $1 AND user_address = $2`,
		automationID, helpers.NormalizeAddress(userAddress),
	)
	return scanAutomation(row)
}

// Update applies a partial merge to an automation. A nonexistent id reports
// not-found and changes nothing.
func (s *PostgresAutomationStore) Update(ctx context.Context, userAddress, automationID string, params interfaces.UpdateAutomationParams) (*business.AutomationIntent, error) {
	var nextRunAt *time.Time
	if params.NextRunAt != nil {
		if next, err := time.Parse(time.RFC3339, *params.NextRunAt); err == nil {
			nextRunAt = &next
		}
	}

	row := s.pool.QueryRow(ctx,
		`UPDATE automations SET
			status = COALESCE($3, status),
			delegation_hash = COALESCE($4, delegation_hash),
			transaction_hash = COALESCE($5, transaction_hash),
			simulated = COALESCE($6, simulated),
			next_run_at = COALESCE($7, next_run_at)
		 WHERE id = $1 AND user_address = $2
		 RETURNING `+automationColumns,
		automationID, helpers.NormalizeAddress(userAddress),
		statusText(params.Status), params.DelegationHash, params.TransactionHash, params.Simulated, nextRunAt,
	)
	return scanAutomation(row)
}

// UpdateStatus is the status-transition helper.
func (s *PostgresAutomationStore) UpdateStatus(ctx context.Context, userAddress, automationID string, status business.AutomationStatus) (*business.AutomationIntent, error) {
	return s.Update(ctx, userAddress, automationID, interfaces.UpdateAutomationParams{Status: &status})
}

// Delete removes an automation scoped to its owning user.
func (s *PostgresAutomationStore) Delete(ctx context.Context, userAddress, automationID string) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM automations WHERE id = $1 AND user_address = $2`,
		automationID, helpers.NormalizeAddress(userAddress),
	)
	if err != nil {
		s.logger.Error("Failed to delete automation",
			zap.String("automation_id", automationID),
			zap.Error(err))
		return false, fmt.Errorf("failed to delete automation: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByUser returns all automations owned by the user, oldest first.
func (s *PostgresAutomationStore) ListByUser(ctx context.Context, userAddress string) ([]business.AutomationIntent, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+automationColumns+` FROM automations WHERE user_address = $1 ORDER BY created_at ASC`,
		helpers.NormalizeAddress(userAddress),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list automations: %w", err)
	}
	defer rows.Close()

	var intents []business.AutomationIntent
	for rows.Next() {
		intent, err := scanAutomation(rows)
		if err != nil {
			return nil, err
		}
		intents = append(intents, *intent)
	}
	return intents, rows.Err()
}

// statusText converts an optional status to an optional SQL text value.
func statusText(status *business.AutomationStatus) *string {
	if status == nil {
		return nil
	}
	text := string(*status)
	return &text
}

// scanAutomation reads one automation row, mapping pgx.ErrNoRows to the
// repository's not-found sentinel.
func scanAutomation(row pgx.Row) (*business.AutomationIntent, error) {
	var (
		intent     business.AutomationIntent
		typeText   string
		statusText string
		paramsJSON []byte
	)
	err := row.Scan(
		&intent.ID, &intent.UserAddress, &typeText, &paramsJSON, &statusText,
		&intent.CreatedAt, &intent.NextRunAt, &intent.DelegationHash, &intent.TransactionHash, &intent.Simulated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, interfaces.ErrAutomationNotFound
		}
		return nil, fmt.Errorf("failed to scan automation: %w", err)
	}

	intent.Type = business.AutomationType(typeText)
	intent.Status = business.AutomationStatus(statusText)
	if err := json.Unmarshal(paramsJSON, &intent.Params); err != nil {
		return nil, fmt.Errorf("failed to decode automation params: %w", err)
	}
	return &intent, nil
}
