package repo

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"

	"SpudSRI/internal/calc/spudcan"
	"SpudSRI/internal/opt"
)

var ErrRigNotFound = errors.New("rig not found")

// Repository is the rig catalog: named spudcan geometries that analysis
// requests may refer to instead of repeating the dimensions.
type Repository interface {
	ListRigs(ctx context.Context) ([]spudcan.Spudcan, error)
	GetRig(ctx context.Context, name string) (spudcan.Spudcan, error)
	UpsertRig(ctx context.Context, rig spudcan.Spudcan) error
}

const schema = `CREATE TABLE IF NOT EXISTS rigs (
	name         TEXT PRIMARY KEY,
	diameter_m   DOUBLE PRECISION NOT NULL,
	area_m2      DOUBLE PRECISION NOT NULL,
	tip_offset_m DOUBLE PRECISION NOT NULL DEFAULT 0,
	preload_mn   DOUBLE PRECISION NOT NULL DEFAULT 0,
	beta_deg     DOUBLE PRECISION NULL,
	alpha        DOUBLE PRECISION NULL
)`

type PostgresRigRepository struct {
	db *sql.DB
}

func NewPostgresRigDB(db *sql.DB) *PostgresRigRepository {
	return &PostgresRigRepository{db: db}
}

// Migrate creates the rigs table when it does not exist.
func (r *PostgresRigRepository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *PostgresRigRepository) ListRigs(ctx context.Context) ([]spudcan.Spudcan, error) {
	query := "SELECT name, diameter_m, area_m2, tip_offset_m, preload_mn, beta_deg, alpha FROM rigs ORDER BY name"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rigs := []spudcan.Spudcan{}
	for rows.Next() {
		rig, err := scanRig(rows)
		if err != nil {
			return nil, err
		}
		rigs = append(rigs, rig)
	}
	return rigs, rows.Err()
}

func (r *PostgresRigRepository) GetRig(ctx context.Context, name string) (spudcan.Spudcan, error) {
	query := "SELECT name, diameter_m, area_m2, tip_offset_m, preload_mn, beta_deg, alpha FROM rigs WHERE name=$1"
	rig, err := scanRig(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return spudcan.Spudcan{}, ErrRigNotFound
		}
		return spudcan.Spudcan{}, err
	}
	return rig, nil
}

func (r *PostgresRigRepository) UpsertRig(ctx context.Context, rig spudcan.Spudcan) error {
	query := `INSERT INTO rigs (name, diameter_m, area_m2, tip_offset_m, preload_mn, beta_deg, alpha)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO UPDATE SET
			diameter_m = EXCLUDED.diameter_m,
			area_m2 = EXCLUDED.area_m2,
			tip_offset_m = EXCLUDED.tip_offset_m,
			preload_mn = EXCLUDED.preload_mn,
			beta_deg = EXCLUDED.beta_deg,
			alpha = EXCLUDED.alpha`
	_, err := r.db.ExecContext(ctx, query,
		rig.RigName, rig.Diameter, rig.Area, rig.TipOffset, rig.Preload,
		nullFloat(rig.Beta), nullFloat(rig.Alpha))
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRig(s scanner) (spudcan.Spudcan, error) {
	var rig spudcan.Spudcan
	var beta, alpha sql.NullFloat64
	err := s.Scan(&rig.RigName, &rig.Diameter, &rig.Area, &rig.TipOffset, &rig.Preload, &beta, &alpha)
	if err != nil {
		return spudcan.Spudcan{}, err
	}
	if beta.Valid {
		rig.Beta = opt.Some(beta.Float64)
	}
	if alpha.Valid {
		rig.Alpha = opt.Some(alpha.Float64)
	}
	return rig, nil
}

func nullFloat(f opt.Float) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f.Value, Valid: f.Valid}
}

// MemoryRigRepository keeps the catalog in process. It backs the API when no
// database is configured, and the tests.
type MemoryRigRepository struct {
	mu   sync.RWMutex
	rigs map[string]spudcan.Spudcan
}

func NewMemoryRigDB(seed ...spudcan.Spudcan) *MemoryRigRepository {
	m := &MemoryRigRepository{rigs: make(map[string]spudcan.Spudcan, len(seed))}
	for _, rig := range seed {
		m.rigs[rig.RigName] = rig
	}
	return m
}

func (m *MemoryRigRepository) ListRigs(_ context.Context) ([]spudcan.Spudcan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rigs := make([]spudcan.Spudcan, 0, len(m.rigs))
	for _, rig := range m.rigs {
		rigs = append(rigs, rig)
	}
	sort.Slice(rigs, func(i, j int) bool { return rigs[i].RigName < rigs[j].RigName })
	return rigs, nil
}

func (m *MemoryRigRepository) GetRig(_ context.Context, name string) (spudcan.Spudcan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rig, ok := m.rigs[name]
	if !ok {
		return spudcan.Spudcan{}, ErrRigNotFound
	}
	return rig, nil
}

func (m *MemoryRigRepository) UpsertRig(_ context.Context, rig spudcan.Spudcan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rigs[rig.RigName] = rig
	return nil
}
