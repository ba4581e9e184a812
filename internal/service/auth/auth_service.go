package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"fishreg/internal/domain"
	"fishreg/internal/pkg/constants"
	"fishreg/internal/pkg/logger"
	"fishreg/internal/pkg/store"
	"fishreg/internal/pkg/utils"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// Login verifies credentials and returns a signed auth token carrying the
// user's role.
func (svc *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := svc.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", constants.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", constants.ErrUnauthorized
	}

	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		return nil, "", err
	}

	logger.Debugf(ctx, "login: userID: [%v]", user.ID)
	return user, token, nil
}
