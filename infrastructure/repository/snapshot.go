package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/rbezerra/corretora-financeiro-api/infrastructure/database/postgres"
	"github.com/rbezerra/corretora-financeiro-api/internal/domain"
)

const (
	snapshotsTable = "financeiro_snapshots"
)

// SnapshotRepository persiste a série mensal calculada pelo agendador de
// sincronização, uma linha por período "MM/YYYY"
type SnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.FinanceiroSnapshot) error
	GetByYear(ano int) (*domain.FinanceiroSnapshotResponse, error)
	DeleteOlderThan(anos int) (int64, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// parsePeriodo extrai mês e ano da chave "MM/YYYY"
func parsePeriodo(periodo string) (int, int, error) {
	var mes, ano int
	if _, err := fmt.Sscanf(periodo, "%2d/%4d", &mes, &ano); err != nil {
		return 0, 0, fmt.Errorf("período %q inválido: %w", periodo, err)
	}
	if mes < 1 || mes > 12 {
		return 0, 0, fmt.Errorf("período %q com mês fora do intervalo", periodo)
	}
	return mes, ano, nil
}

func (r *snapshotRepository) SaveOrUpdate(snapshot *domain.FinanceiroSnapshot) error {
	mes, ano, err := parsePeriodo(snapshot.Periodo)
	if err != nil {
		return err
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(snapshotsTable).
		Columns("periodo", "mes", "ano", "vendas", "meta", "ano_anterior").
		Values(snapshot.Periodo, mes, ano, snapshot.Vendas, snapshot.Meta, snapshot.AnoAnterior).
		Suffix(`
			ON CONFLICT (periodo) DO UPDATE SET
				vendas = EXCLUDED.vendas,
				meta = EXCLUDED.meta,
				ano_anterior = EXCLUDED.ano_anterior,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	return nil
}

func (r *snapshotRepository) GetByYear(ano int) (*domain.FinanceiroSnapshotResponse, error) {
	query, args, err := squirrel.
		Select("id, periodo, vendas, meta, ano_anterior, created_at, updated_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"ano": ano}).
		OrderBy("mes ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.FinanceiroSnapshotResponse{Snapshots: []domain.FinanceiroSnapshot{}}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	response := &domain.FinanceiroSnapshotResponse{
		Snapshots: make([]domain.FinanceiroSnapshot, 0, 12),
	}

	for rows.Next() {
		var snapshot domain.FinanceiroSnapshot
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.Periodo,
			&snapshot.Vendas,
			&snapshot.Meta,
			&snapshot.AnoAnterior,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}

		if snapshot.UpdatedAt.After(response.LastUpdate) {
			response.LastUpdate = snapshot.UpdatedAt
		}

		response.Snapshots = append(response.Snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return response, nil
}

// DeleteOlderThan remove snapshots de anos anteriores ao corte informado
func (r *snapshotRepository) DeleteOlderThan(anos int) (int64, error) {
	corte := time.Now().Year() - anos

	query, args, err := squirrel.
		Delete(snapshotsTable).
		Where(squirrel.Lt{"ano": corte}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover snapshots antigos: %w", err)
	}

	return result.RowsAffected()
}
