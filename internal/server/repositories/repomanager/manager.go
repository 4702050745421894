// Package repomanager vends repository implementations bound to a database
// handle and owns the schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/feedbackhub/internal/dbx"
	"github.com/dmitrijs2005/feedbackhub/internal/server/repositories/feedback"
	"github.com/dmitrijs2005/feedbackhub/internal/server/repositories/users"
)

// RepositoryManager builds repositories over either the pool or a
// transaction, so services can choose per operation.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Feedback(db dbx.DBTX) feedback.Repository
}
