package usecase

import (
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/services/users"
)

// UserUC implements the users.UserUC interface
type UserUC struct {
	userRepo users.UserRepo
	cfg      *models.Config
}

// NewUserUC creates a new user usecase instance
func NewUserUC(userRepo users.UserRepo, cfg *models.Config) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		cfg:      cfg,
	}
}
