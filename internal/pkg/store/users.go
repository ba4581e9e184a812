package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"fishreg/internal/domain"
	"fishreg/internal/pkg/store/xpgx"
)

var fisherColumns = []string{
	"id", "first_name", "last_name", "personal_number", "date_of_birth",
	"address", "phone", "email", "is_active", "created_at",
}

var userColumns = []string{"id", "email", "password_hash", "role", "created_at"}

func (s *store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"email": email})

	selected, err := xpgx.Getx[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
