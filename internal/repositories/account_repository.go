package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"heritage-server/internal/interfaces"
	"heritage-server/internal/schemas"
)

const accountColumns = `id, username, email, password_hash, avatar, is_verified, verification_token,
	verification_token_expiry, interests, bookmarks, contributions, badges, posts, created_at`

// AccountRepository is the credential store of the auth service.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*schemas.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*schemas.Account, error)
	Insert(ctx context.Context, account *schemas.Account) error
	ConsumeVerificationToken(ctx context.Context, token string, now time.Time) (*schemas.Account, error)
	SetVerificationToken(ctx context.Context, id uuid.UUID, token string, expiry time.Time) error
	UpdateProfile(ctx context.Context, id uuid.UUID, username, email *string, interests []string) (*schemas.Account, error)
	AddBookmark(ctx context.Context, id uuid.UUID, itemId string) ([]string, error)
	RemoveBookmark(ctx context.Context, id uuid.UUID, itemId string) ([]string, error)
}

type PgAccountRepository struct {
	pool interfaces.PgxPoolIface
}

func NewAccountRepository(pool interfaces.PgxPoolIface) *PgAccountRepository {
	return &PgAccountRepository{pool: pool}
}

func scanAccount(row pgx.Row) (*schemas.Account, error) {
	account := &schemas.Account{}
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.Avatar,
		&account.IsVerified,
		&account.VerificationToken,
		&account.VerificationTokenExpiry,
		&account.Interests,
		&account.Bookmarks,
		&account.Contributions,
		&account.Badges,
		&account.Posts,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, mapNoRows(err)
	}

	return account, nil
}

func (r *PgAccountRepository) FindByEmail(ctx context.Context, email string) (*schemas.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return scanAccount(r.pool.QueryRow(ctx, query, email))
}

func (r *PgAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*schemas.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.pool.QueryRow(ctx, query, id))
}

// Insert stores a new account. Losing a registration race on the email surfaces as ErrDuplicateEmail.
func (r *PgAccountRepository) Insert(ctx context.Context, account *schemas.Account) error {
	query := `INSERT INTO accounts (id, username, email, password_hash, avatar, is_verified, verification_token,
		verification_token_expiry, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.Avatar,
		account.IsVerified,
		account.VerificationToken,
		account.VerificationTokenExpiry,
		account.CreatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}

	return err
}

// ConsumeVerificationToken marks the account holding an unexpired token as verified and clears the token.
// The single statement makes the transition happen exactly once, even for concurrent calls.
func (r *PgAccountRepository) ConsumeVerificationToken(ctx context.Context, token string, now time.Time) (*schemas.Account, error) {
	query := `UPDATE accounts SET is_verified = TRUE, verification_token = NULL, verification_token_expiry = NULL
		WHERE verification_token = $1 AND verification_token_expiry > $2 AND is_verified = FALSE
		RETURNING ` + accountColumns

	return scanAccount(r.pool.QueryRow(ctx, query, token, now))
}

// SetVerificationToken replaces token and expiry of an unverified account in one statement.
func (r *PgAccountRepository) SetVerificationToken(ctx context.Context, id uuid.UUID, token string, expiry time.Time) error {
	query := `UPDATE accounts SET verification_token = $2, verification_token_expiry = $3
		WHERE id = $1 AND is_verified = FALSE`

	tag, err := r.pool.Exec(ctx, query, id, token, expiry)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdateProfile updates the given fields, nil values are kept. Lists are overwritten as a whole.
func (r *PgAccountRepository) UpdateProfile(ctx context.Context, id uuid.UUID, username, email *string, interests []string) (*schemas.Account, error) {
	query := `UPDATE accounts SET username = COALESCE($2, username), email = COALESCE($3, email),
		interests = COALESCE($4, interests) WHERE id = $1 RETURNING ` + accountColumns

	account, err := scanAccount(r.pool.QueryRow(ctx, query, id, username, email, interests))
	if isUniqueViolation(err) {
		return nil, ErrDuplicateEmail
	}

	return account, err
}

// AddBookmark appends itemId unless it is already bookmarked.
func (r *PgAccountRepository) AddBookmark(ctx context.Context, id uuid.UUID, itemId string) ([]string, error) {
	query := `UPDATE accounts SET bookmarks = CASE WHEN $2::text = ANY(bookmarks) THEN bookmarks
		ELSE array_append(bookmarks, $2::text) END WHERE id = $1 RETURNING bookmarks`

	return r.updateBookmarks(ctx, query, id, itemId)
}

func (r *PgAccountRepository) RemoveBookmark(ctx context.Context, id uuid.UUID, itemId string) ([]string, error) {
	query := `UPDATE accounts SET bookmarks = array_remove(bookmarks, $2::text) WHERE id = $1 RETURNING bookmarks`

	return r.updateBookmarks(ctx, query, id, itemId)
}

func (r *PgAccountRepository) updateBookmarks(ctx context.Context, query string, id uuid.UUID, itemId string) ([]string, error) {
	var bookmarks []string
	if err := r.pool.QueryRow(ctx, query, id, itemId).Scan(&bookmarks); err != nil {
		return nil, mapNoRows(err)
	}

	return bookmarks, nil
}
