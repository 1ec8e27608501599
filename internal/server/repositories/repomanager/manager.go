package repomanager

import (
	"context"
	"database/sql"

	"github.com/inkspot/inkspot/internal/dbx"
	"github.com/inkspot/inkspot/internal/server/repositories/blogs"
	"github.com/inkspot/inkspot/internal/server/repositories/comments"
	"github.com/inkspot/inkspot/internal/server/repositories/messages"
	"github.com/inkspot/inkspot/internal/server/repositories/search"
	"github.com/inkspot/inkspot/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Blogs(db dbx.DBTX) blogs.Repository
	Comments(db dbx.DBTX) comments.Repository
	Messages(db dbx.DBTX) messages.Repository
	Search(db dbx.DBTX) search.Repository
}
