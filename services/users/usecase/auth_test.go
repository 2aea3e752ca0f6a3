package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rescuerush/rescuerush/internal/pkg/apperrors"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{Secret: "test-secret"},
	}
}

func TestUserUC_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	userID := primitive.NewObjectID()

	mockRepo.EXPECT().
		GetUserByPhone(gomock.Any(), "+6281234567890").
		Return(nil, apperrors.NotFound("User not found"))
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			u.ID = userID
			return nil
		})

	resp, err := uc.Register(context.Background(), &models.RegisterRequest{
		Phone:    "+62 812-3456-7890",
		Password: "s3cret-pass",
		Name:     "Jane Doe",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, userID.Hex(), resp.User.ID)
	assert.Equal(t, "+6281234567890", resp.User.Phone)
	assert.Empty(t, resp.User.EmergencyContacts)
}

func TestUserUC_Register_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	var stored *models.User
	mockRepo.EXPECT().
		GetUserByPhone(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NotFound("User not found"))
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			u.ID = primitive.NewObjectID()
			stored = u
			return nil
		})

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Phone:    "+15551234567",
		Password: "plaintext",
		Name:     "Jane",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "plaintext", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("plaintext")))
}

func TestUserUC_Register_DuplicatePhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	existing := &models.User{ID: primitive.NewObjectID(), Phone: "+15551234567"}
	mockRepo.EXPECT().
		GetUserByPhone(gomock.Any(), "+15551234567").
		Return(existing, nil)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Phone:    "+15551234567",
		Password: "pass",
		Name:     "Jane",
	})

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestUserUC_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewUserUC(mocks.NewMockUserRepo(ctrl), testConfig())

	_, err := uc.Register(context.Background(), &models.RegisterRequest{Phone: "+15551234567"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
}

func TestUserUC_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-pass"), bcrypt.MinCost)
	user := &models.User{
		ID:       primitive.NewObjectID(),
		Phone:    "+15551234567",
		Name:     "Jane",
		Password: string(hashed),
	}

	mockRepo.EXPECT().
		GetUserByPhone(gomock.Any(), "+15551234567").
		Return(user, nil)
	mockRepo.EXPECT().
		UpdateLastLogin(gomock.Any(), user.ID.Hex(), gomock.Any()).
		Return(nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Phone:    "+15551234567",
		Password: "correct-pass",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID.Hex(), resp.User.ID)
}

func TestUserUC_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-pass"), bcrypt.MinCost)
	user := &models.User{ID: primitive.NewObjectID(), Phone: "+15551234567", Password: string(hashed)}

	mockRepo.EXPECT().
		GetUserByPhone(gomock.Any(), "+15551234567").
		Return(user, nil)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Phone:    "+15551234567",
		Password: "wrong-pass",
	})

	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
	assert.Equal(t, "Invalid phone or password", err.Error())
}

func TestUserUC_Login_UnknownPhoneSameError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	mockRepo.EXPECT().
		GetUserByPhone(gomock.Any(), "+15550000000").
		Return(nil, apperrors.NotFound("User not found"))

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Phone:    "+15550000000",
		Password: "anything",
	})

	// Unknown phone must be indistinguishable from a bad password.
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
	assert.Equal(t, "Invalid phone or password", err.Error())
}

func TestUserUC_Login_LastLoginFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("pass"), bcrypt.MinCost)
	user := &models.User{ID: primitive.NewObjectID(), Phone: "+15551234567", Password: string(hashed)}

	mockRepo.EXPECT().GetUserByPhone(gomock.Any(), "+15551234567").Return(user, nil)
	mockRepo.EXPECT().
		UpdateLastLogin(gomock.Any(), user.ID.Hex(), gomock.Any()).
		Return(assert.AnError)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Phone:    "+15551234567",
		Password: "pass",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestUserUC_VerifyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	cfg := testConfig()
	uc := NewUserUC(mockRepo, cfg)

	userID := primitive.NewObjectID()
	user := &models.User{ID: userID, Phone: "+15551234567", Name: "Jane", LastLogin: time.Now()}

	mockRepo.EXPECT().
		GetUserByPhone(gomock.Any(), "+15551234567").
		Return(nil, apperrors.NotFound("User not found"))
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			u.ID = userID
			return nil
		})
	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID.Hex()).
		Return(user, nil)

	resp, err := uc.Register(context.Background(), &models.RegisterRequest{
		Phone:    "+15551234567",
		Password: "pass",
		Name:     "Jane",
	})
	assert.NoError(t, err)

	summary, err := uc.VerifyToken(context.Background(), resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, userID.Hex(), summary.ID)

	_, err = uc.VerifyToken(context.Background(), "not-a-token")
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
}
