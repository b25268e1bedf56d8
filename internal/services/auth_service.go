package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"heritage-server/internal/managers"
	"heritage-server/internal/repositories"
	"heritage-server/internal/schemas"
	"heritage-server/internal/utils"
)

// dummyPassword is hashed once so logins for unknown emails spend the same time in bcrypt.
const dummyPassword = "not-a-real-password-1A"

// AuthService drives the account lifecycle: unverified on registration, verified exactly once.
type AuthService struct {
	accounts     repositories.AccountRepository
	jwt          managers.JWTMgr
	passwords    managers.PasswordMgr
	verification managers.VerificationMgr
	mail         managers.MailMgr
	dummyDigest  string
}

func NewAuthService(accounts repositories.AccountRepository, jwt managers.JWTMgr, passwords managers.PasswordMgr,
	verification managers.VerificationMgr, mail managers.MailMgr) *AuthService {
	dummyDigest, _ := passwords.Hash(dummyPassword)

	return &AuthService{
		accounts:     accounts,
		jwt:          jwt,
		passwords:    passwords,
		verification: verification,
		mail:         mail,
		dummyDigest:  dummyDigest,
	}
}

// NormalizeEmail trims and lower-cases an email so lookups are case insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unverified account and sends the verification mail.
// A failing mail is only logged, the account can ask for a new mail later.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*schemas.Account, error) {
	email = NormalizeEmail(email)

	_, err := s.accounts.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, storeError(err)
	}

	digest, err := s.passwords.Hash(password)
	if err != nil {
		if errors.Is(err, managers.ErrEmptySecret) {
			return nil, ErrValidation
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, expiry, err := s.verification.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	account := &schemas.Account{
		ID:                      uuid.New(),
		Username:                username,
		Email:                   email,
		PasswordHash:            digest,
		IsVerified:              false,
		VerificationToken:       &token,
		VerificationTokenExpiry: &expiry,
		Interests:               []string{},
		Bookmarks:               []string{},
		Contributions:           []string{},
		Badges:                  []string{},
		Posts:                   []schemas.PostSummary{},
		CreatedAt:               s.verification.Now(),
	}

	if err := s.accounts.Insert(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, storeError(err)
	}
	utils.LogMessageWithFields(ctx, "info", "Registered account "+account.ID.String())

	if err := s.mail.SendVerificationMail(ctx, email, username, token); err != nil {
		utils.LogMessageWithFieldsAndError(ctx, "warn", "Verification mail could not be sent", err)
	}

	return account, nil
}

// Verify consumes a verification token and returns a session token for the now verified account.
// Unknown, expired and already used tokens fail the same way.
func (s *AuthService) Verify(ctx context.Context, token string) (string, *schemas.Account, error) {
	if token == "" {
		return "", nil, ErrInvalidOrExpiredToken
	}

	account, err := s.accounts.ConsumeVerificationToken(ctx, token, s.verification.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidOrExpiredToken
		}
		return "", nil, storeError(err)
	}
	utils.LogMessageWithFields(ctx, "info", "Verified account "+account.ID.String())

	sessionToken, err := s.jwt.GenerateJWT(account.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.mail.SendConfirmationMail(ctx, account.Email, account.Username); err != nil {
		utils.LogMessageWithFieldsAndError(ctx, "warn", "Confirmation mail could not be sent", err)
	}

	return sessionToken, account, nil
}

// ResendVerification replaces the verification token and sends it again.
// Unlike at registration, a failing mail fails the operation.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	account, err := s.accounts.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return storeError(err)
	}

	if account.IsVerified {
		return ErrAlreadyVerified
	}

	token, expiry, err := s.verification.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate verification token: %w", err)
	}

	if err := s.accounts.SetVerificationToken(ctx, account.ID, token, expiry); err != nil {
		// verified in the meantime
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAlreadyVerified
		}
		return storeError(err)
	}

	if err := s.mail.SendVerificationMail(ctx, account.Email, account.Username, token); err != nil {
		return fmt.Errorf("%w: %w", ErrDependencyFailure, err)
	}

	return nil
}

// Login checks the credentials of a verified account and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *schemas.Account, error) {
	account, err := s.accounts.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.passwords.Verify(password, s.dummyDigest)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, storeError(err)
	}

	if !s.passwords.Verify(password, account.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	if !account.IsVerified {
		return "", nil, ErrVerificationRequired
	}

	token, err := s.jwt.GenerateJWT(account.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, account, nil
}
