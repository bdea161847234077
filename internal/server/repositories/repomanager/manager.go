// Package repomanager vends repositories bound to a dbx.DBTX and owns the
// schema migrations for the configured database backend.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/commpro-auth/internal/dbx"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/resettokens"
	"github.com/dmitrijs2005/commpro-auth/internal/server/repositories/users"
)

// RepositoryManager builds repositories over either the pool or a
// transaction, so the same code path serves both.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	ResetTokens(db dbx.DBTX) resettokens.Repository
}
