package services

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"heritage-server/internal/managers"
	managerMocks "heritage-server/internal/managers/mocks"
	"heritage-server/internal/repositories"
	repoMocks "heritage-server/internal/repositories/mocks"
	"heritage-server/internal/schemas"
)

type authFixture struct {
	service  *AuthService
	accounts *memoryAccounts
	mail     *managerMocks.MockMailManager
	jwt      *managers.JWTManager
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	accounts := newMemoryAccounts()
	mail := &managerMocks.MockMailManager{}
	jwtMgr := managers.NewJWTManager(privateKey, publicKey, "heritage-test", 24*time.Hour)

	service := NewAuthService(accounts, jwtMgr, managers.NewPasswordManagerWithCost(bcrypt.MinCost),
		managers.NewVerificationManager(24*time.Hour), mail)

	return &authFixture{service: service, accounts: accounts, mail: mail, jwt: jwtMgr}
}

func TestAuthService_RegisterVerifyLoginScenario(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.mail.On("SendVerificationMail", mock.Anything, "maya@x.com", "maya", mock.AnythingOfType("string")).Return(nil)
	f.mail.On("SendConfirmationMail", mock.Anything, "maya@x.com", "maya").Return(nil)

	account, err := f.service.Register(ctx, "maya", "maya@x.com", "Secret123")
	require.NoError(t, err)
	assert.False(t, account.IsVerified)
	assert.NotEqual(t, "Secret123", account.PasswordHash)

	_, _, err = f.service.Login(ctx, "maya@x.com", "Secret123")
	assert.ErrorIs(t, err, ErrVerificationRequired)

	token := f.accounts.tokenOf("maya@x.com")
	require.NotEmpty(t, token)

	sessionToken, verified, err := f.service.Verify(ctx, token)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	resolved, err := f.jwt.ValidateJWT(sessionToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, resolved)

	_, _, err = f.service.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)

	loginToken, loggedIn, err := f.service.Login(ctx, "maya@x.com", "Secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.True(t, loggedIn.IsVerified)

	f.mail.AssertExpectations(t)
}

func TestAuthService_RegisterNormalizesEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.mail.On("SendVerificationMail", mock.Anything, "maya@x.com", "maya", mock.Anything).Return(nil)

	account, err := f.service.Register(context.Background(), "maya", "  Maya@X.com ", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "maya@x.com", account.Email)

	_, err = f.service.Register(context.Background(), "maya2", "MAYA@x.com", "Secret123")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthService_RegisterSucceedsWhenMailFails(t *testing.T) {
	f := newAuthFixture(t)
	f.mail.On("SendVerificationMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("mailgun down"))

	account, err := f.service.Register(context.Background(), "maya", "maya@x.com", "Secret123")
	require.NoError(t, err)

	stored, err := f.accounts.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsVerified)
}

func TestAuthService_RegisterLosesInsertRace(t *testing.T) {
	accounts := &repoMocks.MockAccountRepository{}
	accounts.On("FindByEmail", mock.Anything, "maya@x.com").Return(nil, repositories.ErrNotFound)
	accounts.On("Insert", mock.Anything, mock.Anything).Return(repositories.ErrDuplicateEmail)

	service := NewAuthService(accounts, &managerMocks.MockJwtManager{}, managers.NewPasswordManagerWithCost(bcrypt.MinCost),
		managers.NewVerificationManager(time.Hour), &managerMocks.MockMailManager{})

	_, err := service.Register(context.Background(), "maya", "maya@x.com", "Secret123")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthService_RegisterStoreFailure(t *testing.T) {
	accounts := &repoMocks.MockAccountRepository{}
	accounts.On("FindByEmail", mock.Anything, "maya@x.com").Return(nil, errors.New("connection refused"))

	service := NewAuthService(accounts, &managerMocks.MockJwtManager{}, managers.NewPasswordManagerWithCost(bcrypt.MinCost),
		managers.NewVerificationManager(time.Hour), &managerMocks.MockMailManager{})

	_, err := service.Register(context.Background(), "maya", "maya@x.com", "Secret123")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestAuthService_VerifyExpiredTokenLooksUnknown(t *testing.T) {
	f := newAuthFixture(t)
	f.mail.On("SendVerificationMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.Register(context.Background(), "maya", "maya@x.com", "Secret123")
	require.NoError(t, err)
	token := f.accounts.tokenOf("maya@x.com")
	f.accounts.expire("maya@x.com")

	_, _, expiredErr := f.service.Verify(context.Background(), token)
	_, _, unknownErr := f.service.Verify(context.Background(), "never-issued")
	_, _, emptyErr := f.service.Verify(context.Background(), "")

	assert.ErrorIs(t, expiredErr, ErrInvalidOrExpiredToken)
	assert.Equal(t, expiredErr, unknownErr)
	assert.Equal(t, expiredErr, emptyErr)
}

func TestAuthService_VerifySucceedsWhenConfirmationFails(t *testing.T) {
	f := newAuthFixture(t)
	f.mail.On("SendVerificationMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.mail.On("SendConfirmationMail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("timeout"))

	_, err := f.service.Register(context.Background(), "maya", "maya@x.com", "Secret123")
	require.NoError(t, err)

	token, account, err := f.service.Verify(context.Background(), f.accounts.tokenOf("maya@x.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, account.IsVerified)
}

func TestAuthService_ResendVerification(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.mail.On("SendVerificationMail", mock.Anything, "maya@x.com", "maya", mock.Anything).Return(nil)
	f.mail.On("SendConfirmationMail", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	assert.ErrorIs(t, f.service.ResendVerification(ctx, "nobody@x.com"), ErrNotFound)

	_, err := f.service.Register(ctx, "maya", "maya@x.com", "Secret123")
	require.NoError(t, err)
	oldToken := f.accounts.tokenOf("maya@x.com")

	require.NoError(t, f.service.ResendVerification(ctx, "Maya@x.com"))
	newToken := f.accounts.tokenOf("maya@x.com")
	assert.NotEqual(t, oldToken, newToken)

	_, _, err = f.service.Verify(ctx, oldToken)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)

	_, _, err = f.service.Verify(ctx, newToken)
	require.NoError(t, err)

	assert.ErrorIs(t, f.service.ResendVerification(ctx, "maya@x.com"), ErrAlreadyVerified)
}

func TestAuthService_ResendVerificationMailFailure(t *testing.T) {
	f := newAuthFixture(t)
	f.mail.On("SendVerificationMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	f.mail.On("SendVerificationMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("mailgun down"))

	_, err := f.service.Register(context.Background(), "maya", "maya@x.com", "Secret123")
	require.NoError(t, err)

	err = f.service.ResendVerification(context.Background(), "maya@x.com")
	assert.ErrorIs(t, err, ErrDependencyFailure)
}

func TestAuthService_ResendVerificationRacesVerify(t *testing.T) {
	account := &schemas.Account{Email: "maya@x.com", Username: "maya"}
	accounts := &repoMocks.MockAccountRepository{}
	accounts.On("FindByEmail", mock.Anything, "maya@x.com").Return(account, nil)
	accounts.On("SetVerificationToken", mock.Anything, account.ID, mock.Anything, mock.Anything).
		Return(repositories.ErrNotFound)

	service := NewAuthService(accounts, &managerMocks.MockJwtManager{}, managers.NewPasswordManagerWithCost(bcrypt.MinCost),
		managers.NewVerificationManager(time.Hour), &managerMocks.MockMailManager{})

	assert.ErrorIs(t, service.ResendVerification(context.Background(), "maya@x.com"), ErrAlreadyVerified)
}

func TestAuthService_LoginDoesNotRevealWhichCredentialIsWrong(t *testing.T) {
	f := newAuthFixture(t)
	f.mail.On("SendVerificationMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.mail.On("SendConfirmationMail", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.Register(context.Background(), "maya", "maya@x.com", "Secret123")
	require.NoError(t, err)
	_, _, err = f.service.Verify(context.Background(), f.accounts.tokenOf("maya@x.com"))
	require.NoError(t, err)

	_, _, wrongPassword := f.service.Login(context.Background(), "maya@x.com", "Wrong1234")
	_, _, unknownEmail := f.service.Login(context.Background(), "nobody@x.com", "Secret123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestAuthService_LoginChecksPasswordBeforeVerification(t *testing.T) {
	f := newAuthFixture(t)
	f.mail.On("SendVerificationMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.Register(context.Background(), "maya", "maya@x.com", "Secret123")
	require.NoError(t, err)

	_, _, err = f.service.Login(context.Background(), "maya@x.com", "Wrong1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
