package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/traqbank/backoffice/internal/apperrors"
	"github.com/traqbank/backoffice/internal/core/domain"
	portsrepo "github.com/traqbank/backoffice/internal/core/ports/repositories"
	"github.com/traqbank/backoffice/internal/middleware"
	"github.com/traqbank/backoffice/internal/models"
)

type PgxPersonRepository struct {
	BaseRepository
}

// newPgxPersonRepository creates a new repository for person data.
func newPgxPersonRepository(pool PgxPool) portsrepo.PersonRepositoryFacade {
	return &PgxPersonRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPersonRepository implements portsrepo.PersonRepositoryFacade
var _ portsrepo.PersonRepositoryFacade = (*PgxPersonRepository)(nil)

// Helper to convert models.Person from DB to domain.Person
func toDomainPerson(m models.Person) domain.Person {
	return domain.Person{
		Code:     m.Code,
		Name:     m.Name,
		Surname:  m.Surname,
		IDNumber: m.IDNumber,
	}
}

func scanPerson(row pgx.Row) (models.Person, error) {
	var m models.Person
	var name, surname sql.NullString
	err := row.Scan(&m.Code, &name, &surname, &m.IDNumber)
	if err != nil {
		return m, err
	}
	m.Name = name.String
	m.Surname = surname.String
	return m, nil
}

// nullable maps the empty string to SQL NULL.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern escapes LIKE metacharacters so a search term always
// matches literally.
func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

// SavePerson inserts a new person and fills in the generated code.
func (r *PgxPersonRepository) SavePerson(ctx context.Context, person *domain.Person) error {
	query := `
		INSERT INTO persons (name, surname, id_number)
		VALUES ($1, $2, $3)
		RETURNING code;
	`
	err := r.Pool.QueryRow(ctx, query,
		nullable(person.Name),
		nullable(person.Surname),
		person.IDNumber,
	).Scan(&person.Code)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: person with ID number %s already exists", apperrors.ErrDuplicate, person.IDNumber)
		}
		return fmt.Errorf("failed to save person: %w", err)
	}
	return nil
}

// FindPersonByCode retrieves a person by primary key.
func (r *PgxPersonRepository) FindPersonByCode(ctx context.Context, code int64) (*domain.Person, error) {
	query := `
		SELECT code, name, surname, id_number
		FROM persons
		WHERE code = $1;
	`
	m, err := scanPerson(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find person by code %d: %w", code, err)
	}

	p := toDomainPerson(m)
	return &p, nil
}

// ListPersons retrieves one page of persons matching the search term plus the
// total number of matching rows. The match is a substring match on the ID
// number or the surname; ordering is surname then name.
func (r *PgxPersonRepository) ListPersons(ctx context.Context, search string, limit int, offset int) ([]domain.Person, int64, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	where := ""
	args := []any{}
	if search != "" {
		where = `WHERE id_number LIKE '%' || $1 || '%' OR surname LIKE '%' || $1 || '%'`
		args = append(args, escapeLikePattern(search))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM persons ` + where
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count persons: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT code, name, surname, id_number
		FROM persons
		%s
		ORDER BY surname NULLS FIRST, name NULLS FIRST
		LIMIT $%d OFFSET $%d;
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	persons := []domain.Person{}
	for rows.Next() {
		m, err := scanPerson(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan person row: %w", err)
		}
		persons = append(persons, toDomainPerson(m))
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating person rows: %w", err)
	}

	return persons, total, nil
}

// IDNumberExists reports whether another person already uses the ID number.
func (r *PgxPersonRepository) IDNumberExists(ctx context.Context, idNumber string, excludeCode int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM persons WHERE id_number = $1 AND code <> $2);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, idNumber, excludeCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ID number %s: %w", idNumber, err)
	}
	return exists, nil
}

// UpdatePerson updates an existing person's details.
func (r *PgxPersonRepository) UpdatePerson(ctx context.Context, person domain.Person) error {
	query := `
		UPDATE persons
		SET name = $2, surname = $3, id_number = $4
		WHERE code = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		person.Code,
		nullable(person.Name),
		nullable(person.Surname),
		person.IDNumber,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: person with ID number %s already exists", apperrors.ErrDuplicate, person.IDNumber)
		}
		return fmt.Errorf("failed to update person %d: %w", person.Code, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePerson removes a person together with their remaining (closed)
// accounts and those accounts' transactions, in one database transaction.
// The account and transaction FKs are RESTRICT, so the rows must go in
// dependency order. The service enforces that only account-less or fully
// closed persons reach this method; a guard here re-checks under the
// transaction so a concurrent reopen cannot slip through.
func (r *PgxPersonRepository) DeletePerson(ctx context.Context, code int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("rollback failed after person delete", "error", rbErr)
		}
	}()

	guard := `
		SELECT status_code
		FROM accounts
		WHERE person_code = $1
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, guard, code)
	if err != nil {
		return fmt.Errorf("failed to check accounts of person %d: %w", code, err)
	}
	for rows.Next() {
		var statusCode int16
		if err := rows.Scan(&statusCode); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan account status for person %d: %w", code, err)
		}
		if domain.StatusCode(statusCode) != domain.StatusClosed {
			rows.Close()
			return fmt.Errorf("%w: cannot delete person with open accounts", apperrors.ErrValidation)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating account statuses for person %d: %w", code, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE account_code IN (SELECT code FROM accounts WHERE person_code = $1);`, code); err != nil {
		return fmt.Errorf("failed to delete transactions of person %d: %w", code, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM accounts WHERE person_code = $1;`, code); err != nil {
		return fmt.Errorf("failed to delete accounts of person %d: %w", code, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM persons WHERE code = $1;`, code)
	if err != nil {
		return fmt.Errorf("failed to delete person %d: %w", code, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
