package trackerbun

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-qpic/qpic"
	"github.com/uptrace/bun"
)

// Tracker stores render records in a Bun-backed database.
type Tracker struct {
	DB          *bun.DB
	Now         func() time.Time
	IDGenerator func() string
}

// NewTracker creates a Bun-backed render tracker.
func NewTracker(db *bun.DB) *Tracker {
	return &Tracker{DB: db, Now: time.Now, IDGenerator: qpic.NewRecordID}
}

// Start creates a new render record.
func (t *Tracker) Start(ctx context.Context, record qpic.RenderRecord) (string, error) {
	if t == nil || t.DB == nil {
		return "", qpic.NewError(qpic.KindNotImpl, "tracker database not configured", nil)
	}
	if record.ID == "" {
		record.ID = t.nextID()
	}
	if record.State == "" {
		record.State = qpic.StateRunning
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = t.now()
	}

	model := modelFromRecord(record)
	if _, err := t.DB.NewInsert().Model(&model).Exec(ctx); err != nil {
		return "", err
	}
	return record.ID, nil
}

// Complete marks the render as completed.
func (t *Tracker) Complete(ctx context.Context, id string, bytes int64) error {
	if t == nil || t.DB == nil {
		return qpic.NewError(qpic.KindNotImpl, "tracker database not configured", nil)
	}
	if id == "" {
		return qpic.NewError(qpic.KindValidation, "render ID is required", nil)
	}

	res, err := t.DB.NewUpdate().Model((*recordModel)(nil)).
		Set("state = ?", qpic.StateCompleted).
		Set("bytes = ?", bytes).
		Set("completed_at = COALESCE(completed_at, ?)", t.now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return qpic.NewError(qpic.KindNotFound, fmt.Sprintf("render %q not found", id), nil)
	}
	return nil
}

// Fail marks the render as failed.
func (t *Tracker) Fail(ctx context.Context, id string, cause error) error {
	if t == nil || t.DB == nil {
		return qpic.NewError(qpic.KindNotImpl, "tracker database not configured", nil)
	}
	if id == "" {
		return qpic.NewError(qpic.KindValidation, "render ID is required", nil)
	}

	message := ""
	if cause != nil {
		message = cause.Error()
	}

	res, err := t.DB.NewUpdate().Model((*recordModel)(nil)).
		Set("state = ?", qpic.StateFailed).
		Set("error = ?", message).
		Set("completed_at = COALESCE(completed_at, ?)", t.now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return qpic.NewError(qpic.KindNotFound, fmt.Sprintf("render %q not found", id), nil)
	}
	return nil
}

// Status returns a render record.
func (t *Tracker) Status(ctx context.Context, id string) (qpic.RenderRecord, error) {
	if t == nil || t.DB == nil {
		return qpic.RenderRecord{}, qpic.NewError(qpic.KindNotImpl, "tracker database not configured", nil)
	}
	if id == "" {
		return qpic.RenderRecord{}, qpic.NewError(qpic.KindValidation, "render ID is required", nil)
	}

	model := new(recordModel)
	err := t.DB.NewSelect().Model(model).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		return qpic.RenderRecord{}, qpic.NewError(qpic.KindNotFound, fmt.Sprintf("render %q not found", id), err)
	}
	return model.toRecord(), nil
}

// List returns render records matching the filter, oldest first.
func (t *Tracker) List(ctx context.Context, filter qpic.RenderFilter) ([]qpic.RenderRecord, error) {
	if t == nil || t.DB == nil {
		return nil, qpic.NewError(qpic.KindNotImpl, "tracker database not configured", nil)
	}

	var models []recordModel
	query := t.DB.NewSelect().Model(&models).Order("created_at ASC")
	if filter.Format != "" {
		query = query.Where("format = ?", string(filter.Format))
	}
	if filter.State != "" {
		query = query.Where("state = ?", string(filter.State))
	}
	if !filter.Since.IsZero() {
		query = query.Where("created_at >= ?", filter.Since)
	}
	if !filter.Until.IsZero() {
		query = query.Where("created_at <= ?", filter.Until)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}

	records := make([]qpic.RenderRecord, 0, len(models))
	for _, model := range models {
		records = append(records, model.toRecord())
	}
	return records, nil
}

// Delete removes a render record.
func (t *Tracker) Delete(ctx context.Context, id string) error {
	if t == nil || t.DB == nil {
		return qpic.NewError(qpic.KindNotImpl, "tracker database not configured", nil)
	}
	if id == "" {
		return qpic.NewError(qpic.KindValidation, "render ID is required", nil)
	}
	_, err := t.DB.NewDelete().Model((*recordModel)(nil)).Where("id = ?", id).Exec(ctx)
	return err
}

type recordModel struct {
	bun.BaseModel `bun:"table:render_records,alias:render_records"`

	ID          string    `bun:",pk"`
	Filename    string    `bun:",notnull"`
	Format      string    `bun:",notnull"`
	State       string    `bun:",notnull"`
	Qubits      int       `bun:"qubits"`
	Gates       int       `bun:"gates"`
	Bytes       int64     `bun:"bytes"`
	Error       string    `bun:"error"`
	CreatedAt   time.Time `bun:"created_at"`
	CompletedAt time.Time `bun:"completed_at,nullzero"`
}

func modelFromRecord(record qpic.RenderRecord) recordModel {
	return recordModel{
		ID:          record.ID,
		Filename:    record.Filename,
		Format:      string(record.Format),
		State:       string(record.State),
		Qubits:      record.Qubits,
		Gates:       record.Gates,
		Bytes:       record.Bytes,
		Error:       record.Error,
		CreatedAt:   record.CreatedAt,
		CompletedAt: record.CompletedAt,
	}
}

func (m recordModel) toRecord() qpic.RenderRecord {
	return qpic.RenderRecord{
		ID:          m.ID,
		Filename:    m.Filename,
		Format:      qpic.Format(m.Format),
		State:       qpic.RenderState(m.State),
		Qubits:      m.Qubits,
		Gates:       m.Gates,
		Bytes:       m.Bytes,
		Error:       m.Error,
		CreatedAt:   m.CreatedAt,
		CompletedAt: m.CompletedAt,
	}
}

func (t *Tracker) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

func (t *Tracker) nextID() string {
	if t.IDGenerator != nil {
		return t.IDGenerator()
	}
	return qpic.NewRecordID()
}
