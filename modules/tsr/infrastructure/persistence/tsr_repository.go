package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/telvana/tsr-tracker/modules/tsr/domain/aggregates/tsr"
	"github.com/telvana/tsr-tracker/modules/tsr/infrastructure/persistence/models"
	"github.com/telvana/tsr-tracker/pkg/composables"
	"github.com/telvana/tsr-tracker/pkg/repo"
)

const (
	selectTSRQuery = `
		SELECT id, identifier, tsr_number, response_due, end_a, end_z, data_rate_required,
			created_by, created_at, updated_at
		FROM tsrs
	`
	insertTSRQuery = `
		INSERT INTO tsrs (identifier, tsr_number, response_due, end_a, end_z, data_rate_required, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, identifier, tsr_number, response_due, end_a, end_z, data_rate_required,
			created_by, created_at, updated_at
	`
)

type TSRRepository struct{}

func NewTSRRepository() tsr.Repository {
	return &TSRRepository{}
}

func (r *TSRRepository) GetAll(ctx context.Context, params tsr.FindParams) ([]tsr.TSR, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	query := selectTSRQuery + " ORDER BY updated_at DESC"
	if clause := repo.FormatLimitOffset(params.Limit, params.Offset); clause != "" {
		query += " " + clause
	}
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, gerrors.Wrap(err, "list tsrs")
	}
	defer rows.Close()

	entities := make([]tsr.TSR, 0)
	for rows.Next() {
		var row models.TSR
		if err := rows.Scan(
			&row.ID,
			&row.Identifier,
			&row.TSRNumber,
			&row.ResponseDue,
			&row.EndA,
			&row.EndZ,
			&row.DataRateRequired,
			&row.CreatedBy,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, gerrors.Wrap(err, "scan tsr")
		}
		entity, err := toDomainTSR(&row)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, gerrors.Wrap(err, "list tsrs")
	}
	return entities, nil
}

func (r *TSRRepository) GetByID(ctx context.Context, id uuid.UUID) (tsr.TSR, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return tsr.TSR{}, err
	}

	var row models.TSR
	err = tx.QueryRow(ctx, selectTSRQuery+" WHERE id = $1", id.String()).Scan(
		&row.ID,
		&row.Identifier,
		&row.TSRNumber,
		&row.ResponseDue,
		&row.EndA,
		&row.EndZ,
		&row.DataRateRequired,
		&row.CreatedBy,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tsr.TSR{}, tsr.ErrNotFound
		}
		return tsr.TSR{}, gerrors.Wrap(err, "get tsr")
	}
	return toDomainTSR(&row)
}

func (r *TSRRepository) Create(ctx context.Context, entity tsr.TSR) (tsr.TSR, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return tsr.TSR{}, err
	}

	var row models.TSR
	err = tx.QueryRow(ctx, insertTSRQuery,
		entity.Identifier(),
		entity.TSRNumber(),
		entity.ResponseDue(),
		entity.EndA(),
		entity.EndZ(),
		entity.DataRateRequired(),
		nullableUUID(entity.CreatedBy()),
	).Scan(
		&row.ID,
		&row.Identifier,
		&row.TSRNumber,
		&row.ResponseDue,
		&row.EndA,
		&row.EndZ,
		&row.DataRateRequired,
		&row.CreatedBy,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return tsr.TSR{}, gerrors.Wrap(err, "create tsr")
	}
	return toDomainTSR(&row)
}

func (r *TSRRepository) Update(ctx context.Context, id uuid.UUID, values tsr.ProposedValues, updatedAt time.Time) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	assignments := make([]string, 0, 7)
	args := make([]any, 0, 8)
	set := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	set("identifier", values.Identifier)
	set("tsr_number", values.TSRNumber)
	set("response_due", values.ResponseDue)
	set("end_a", values.EndA)
	set("end_z", values.EndZ)
	set("data_rate_required", values.DataRateRequired)

	args = append(args, updatedAt)
	assignments = append(assignments, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, id.String())

	query := fmt.Sprintf(
		"UPDATE tsrs SET %s WHERE id = $%d",
		strings.Join(assignments, ", "),
		len(args),
	)
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return gerrors.Wrap(err, "update tsr")
	}
	if tag.RowsAffected() == 0 {
		return tsr.ErrNotFound
	}
	return nil
}

func (r *TSRRepository) TouchUpdatedAt(ctx context.Context, id uuid.UUID, at time.Time) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, "UPDATE tsrs SET updated_at = $1 WHERE id = $2", at, id.String())
	if err != nil {
		return gerrors.Wrap(err, "touch tsr")
	}
	if tag.RowsAffected() == 0 {
		return tsr.ErrNotFound
	}
	return nil
}
