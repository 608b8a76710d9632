package user

import (
	"context"
	"database/sql"
	"errors"

	"mealmarket-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateAccount(ctx context.Context, acct *Account) error
	GetByPhone(ctx context.Context, phone string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	ListCaterers(ctx context.Context) ([]*Account, error)
	GetCatererByID(ctx context.Context, id string) (*Account, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const accountColumns = `
	id,
	username,
	phone,
	password_hash,
	role,
	business_name,
	business_address,
	created_at,
	updated_at
`

func scanAccount(row interface{ Scan(...any) error }) (*Account, error) {
	var (
		acct            Account
		businessName    sql.NullString
		businessAddress sql.NullString
	)

	err := row.Scan(
		&acct.ID,
		&acct.Username,
		&acct.Phone,
		&acct.PasswordHash,
		&acct.Role,
		&businessName,
		&businessAddress,
		&acct.CreatedAt,
		&acct.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if acct.Role == RoleCaterer {
		acct.Caterer = &CatererProfile{
			BusinessName:    businessName.String,
			BusinessAddress: businessAddress.String,
		}
	}

	return &acct, nil
}

func (r *repository) CreateAccount(ctx context.Context, acct *Account) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateAccount"),
		zap.String("role", string(acct.Role)),
	)

	var businessName, businessAddress sql.NullString
	if acct.Caterer != nil {
		businessName = sql.NullString{String: acct.Caterer.BusinessName, Valid: true}
		businessAddress = sql.NullString{String: acct.Caterer.BusinessAddress, Valid: true}
	}

	query := `
	INSERT INTO users (
		id,
		username,
		phone,
		password_hash,
		role,
		business_name,
		business_address
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		acct.ID,
		acct.Username,
		acct.Phone,
		acct.PasswordHash,
		acct.Role,
		businessName,
		businessAddress,
	).Scan(&acct.CreatedAt, &acct.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
		return ErrPhoneExists
	}
	if err != nil {
		log.Error("failed to create account", zap.Error(err))
		return err
	}

	log.Info("account created", zap.String("user_id", acct.ID))
	return nil
}

func (r *repository) GetByPhone(ctx context.Context, phone string) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE phone = $1`

	acct, err := scanAccount(r.db.QueryRowContext(ctx, query, phone))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return acct, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE id = $1`

	acct, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return acct, nil
}

func (r *repository) ListCaterers(ctx context.Context) ([]*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE role = $1 ORDER BY username ASC`

	rows, err := r.db.QueryContext(ctx, query, RoleCaterer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	caterers := make([]*Account, 0)
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		caterers = append(caterers, acct)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return caterers, nil
}

func (r *repository) GetCatererByID(ctx context.Context, id string) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE id = $1 AND role = $2`

	acct, err := scanAccount(r.db.QueryRowContext(ctx, query, id, RoleCaterer))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return acct, nil
}
