package usecase

import (
	"context"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/apperrors"
	jwtpkg "github.com/rescuerush/rescuerush/internal/pkg/jwt"
	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Register creates a new user account and returns a signed bearer token.
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Phone == "" || req.Password == "" || req.Name == "" {
		return nil, apperrors.BadRequest("Phone, password, and name are required")
	}

	phone := utils.NormalizePhone(req.Phone)

	if existing, err := u.userRepo.GetUserByPhone(ctx, phone); err == nil && existing != nil {
		return nil, apperrors.Conflict("User already exists with this phone number")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperrors.Internal("Registration failed", err)
	}

	now := time.Now()
	user := &models.User{
		Phone:             phone,
		Name:              req.Name,
		Password:          string(hashed),
		EmergencyContacts: []models.EmergencyContact{},
		LastLogin:         now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		// The unique phone index closes the check-then-insert race.
		if apperrors.IsKind(err, apperrors.KindConflict) {
			return nil, apperrors.Conflict("User already exists with this phone number")
		}
		return nil, apperrors.Internal("Registration failed", err)
	}

	token, _, err := jwtpkg.GenerateToken(user.ID.Hex(), user.Phone, u.cfg)
	if err != nil {
		return nil, apperrors.Internal("Registration failed", err)
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.Hex()),
		logger.String("phone", user.Phone))

	return &models.AuthResponse{
		Token: token,
		User:  user.Summary(),
	}, nil
}

// Login authenticates phone+password credentials. Unknown phone and hash
// mismatch return the same error to avoid account enumeration.
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Phone == "" || req.Password == "" {
		return nil, apperrors.BadRequest("Phone and password are required")
	}

	phone := utils.NormalizePhone(req.Phone)

	user, err := u.userRepo.GetUserByPhone(ctx, phone)
	if err != nil || user == nil {
		return nil, apperrors.Unauthorized("Invalid phone or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid phone or password")
	}

	if err := u.userRepo.UpdateLastLogin(ctx, user.ID.Hex(), time.Now()); err != nil {
		logger.Warn("Failed to update last login",
			logger.String("user_id", user.ID.Hex()),
			logger.Err(err))
	}

	token, _, err := jwtpkg.GenerateToken(user.ID.Hex(), user.Phone, u.cfg)
	if err != nil {
		return nil, apperrors.Internal("Login failed", err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  user.Summary(),
	}, nil
}

// VerifyToken validates a bearer token and resolves its user.
func (u *UserUC) VerifyToken(ctx context.Context, token string) (*models.UserSummary, error) {
	if token == "" {
		return nil, apperrors.Unauthorized("No token provided")
	}

	claims, err := jwtpkg.ValidateToken(token, u.cfg.JWT.Secret)
	if err != nil {
		return nil, apperrors.Unauthorized("Invalid token")
	}

	user, err := u.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil || user == nil {
		return nil, apperrors.Unauthorized("User not found")
	}

	return user.Summary(), nil
}
