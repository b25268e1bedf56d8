package managers

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"heritage-server/internal/config"
	"heritage-server/internal/goerrors"
	"heritage-server/internal/utils"
)

const bearerPrefix = "Bearer "

// ErrInvalidToken is returned for every token that cannot be trusted.
// Malformed, badly signed and expired tokens are not told apart.
var ErrInvalidToken = errors.New("invalid token")

type JWTMgr interface {
	GenerateJWT(accountId uuid.UUID) (string, error)
	ValidateJWT(tokenString string) (uuid.UUID, error)
	JWTMiddleware() gin.HandlerFunc
}

// JWTManager handles JWT generation, signing, and validation.
type JWTManager struct {
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
	issuer     string
	lifetime   time.Duration
	now        func() time.Time
}

// NewJWTManager creates a new JWTManager with the given key pair.
func NewJWTManager(privateKey ed25519.PrivateKey, publicKey ed25519.PublicKey, issuer string, lifetime time.Duration) *JWTManager {
	return &JWTManager{
		privateKey: privateKey,
		publicKey:  publicKey,
		issuer:     issuer,
		lifetime:   lifetime,
		now:        time.Now,
	}
}

// NewJWTManagerFromConfig loads the key pair from the configured path.
// If there is no key pair yet, a new one is generated and saved for the next start.
func NewJWTManagerFromConfig(cfg config.Auth) (JWTMgr, error) {
	log.Info("Initializing JWT manager")

	privateKey, publicKey, err := loadKeyPair(cfg.KeyPairPath)
	if err != nil {
		log.Info("No key pair found, generating a new one")
		privateKey, publicKey, err = generateKeyPair(cfg.KeyPairPath)
		if err != nil {
			return nil, err
		}
	}

	return NewJWTManager(privateKey, publicKey, cfg.Issuer, cfg.TokenLifetime), nil
}

// GenerateJWT issues a signed token for the given account.
func (jm *JWTManager) GenerateJWT(accountId uuid.UUID) (string, error) {
	now := jm.now()
	claims := jwt.RegisteredClaims{
		Issuer:    jm.issuer,
		Subject:   accountId.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(jm.lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return token.SignedString(jm.privateKey)
}

// ValidateJWT validates the given JWT and returns the account id it was issued for.
func (jm *JWTManager) ValidateJWT(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jm.publicKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithIssuer(jm.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(jm.now),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	accountId, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return accountId, nil
}

// JWTMiddleware resolves the acting account from the Authorization header.
// The header is accepted with or without the "Bearer " prefix.
func (jm *JWTManager) JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if tokenString == "" {
			utils.WriteAndLogError(c, goerrors.NoToken, nil)
			return
		}

		accountId, err := jm.ValidateJWT(tokenString)
		if err != nil {
			utils.WriteAndLogError(c, goerrors.InvalidToken, err)
			return
		}

		c.Set(utils.AccountIdKey.String(), accountId)
		c.Next()
	}
}

// generateKeyPair generates a new key pair and saves it to a file.
func generateKeyPair(path string) (ed25519.PrivateKey, ed25519.PublicKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}

	if err := saveKeyPair(privateKey, publicKey, path); err != nil {
		return nil, nil, err
	}

	return privateKey, publicKey, nil
}

// saveKeyPair saves the key pair to the specified file.
func saveKeyPair(privateKey ed25519.PrivateKey, publicKey ed25519.PublicKey, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}

	keyPairBytes := make([]byte, 0, len(privateKey)+len(publicKey))
	keyPairBytes = append(keyPairBytes, privateKey...)
	keyPairBytes = append(keyPairBytes, publicKey...)
	return os.WriteFile(path, keyPairBytes, 0o600)
}

// loadKeyPair loads the key pair from the specified file.
// The file is the concatenation of private and public key.
func loadKeyPair(path string) (ed25519.PrivateKey, ed25519.PublicKey, error) {
	keyPairBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	if len(keyPairBytes) != ed25519.PrivateKeySize+ed25519.PublicKeySize {
		return nil, nil, fmt.Errorf("invalid key pair format")
	}

	privateKey := ed25519.PrivateKey(keyPairBytes[:ed25519.PrivateKeySize])
	publicKey := ed25519.PublicKey(keyPairBytes[ed25519.PrivateKeySize:])
	return privateKey, publicKey, nil
}
