// package managers wraps the collaborators of the services: database pool, tokens, passwords, mails, blobs and rate limits.
package managers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"heritage-server/internal/interfaces"
)

// DatabaseMgr defines the interface for database management.
// It provides methods for interacting with the database connection pool.
type DatabaseMgr interface {
	GetPool() interfaces.PgxPoolIface
	Ping(ctx context.Context) error
}

// DatabaseManager is responsible for managing the database connection pool.
// It implements the DatabaseMgr interface and provides methods to interact with the database.
type DatabaseManager struct {
	Pool interfaces.PgxPoolIface
}

// GetPool returns the database connection pool managed by the DatabaseManager.
// This pool is used for executing database operations.
func (dbMgr *DatabaseManager) GetPool() interfaces.PgxPoolIface {
	return dbMgr.Pool
}

// Ping checks that the database is reachable, it backs the health endpoint.
func (dbMgr *DatabaseManager) Ping(ctx context.Context) error {
	return dbMgr.Pool.Ping(ctx)
}

// NewDatabaseManager creates and initializes a new instance of DatabaseManager with the provided database connection pool.
func NewDatabaseManager(pool interfaces.PgxPoolIface) DatabaseMgr {
	log.Info("Initializing database manager")
	return &DatabaseManager{Pool: pool}
}
