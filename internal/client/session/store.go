package session

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/auctionhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/auctionhub/internal/dbx"
)

// Keys under which the session is persisted.
const (
	KeyToken       = "auth_token"
	KeyCurrentUser = "current_user"
)

// Store persists the token and the encoded current user as one unit.
type Store interface {
	Load(ctx context.Context) (token, user string, err error)
	Save(ctx context.Context, token, user string) error
	Erase(ctx context.Context) error
}

// SQLStore keeps the session in the local session_kv table.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Load(ctx context.Context) (string, string, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, _, err := repo.Get(ctx, KeyToken)
	if err != nil {
		return "", "", err
	}
	user, _, err := repo.Get(ctx, KeyCurrentUser)
	if err != nil {
		return "", "", err
	}
	return token, user, nil
}

// Save writes both keys in one transaction.
func (s *SQLStore) Save(ctx context.Context, token, user string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, KeyCurrentUser, user)
	})
}

func (s *SQLStore) Erase(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, KeyToken, KeyCurrentUser)
}
