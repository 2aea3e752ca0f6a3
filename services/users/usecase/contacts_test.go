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
)

func userWithContacts(contacts ...models.EmergencyContact) *models.User {
	return &models.User{
		ID:                primitive.NewObjectID(),
		Phone:             "+15550001111",
		Name:              "Owner",
		EmergencyContacts: contacts,
	}
}

func contact(id string, priority int) models.EmergencyContact {
	return models.EmergencyContact{
		ID:           id,
		Name:         "Contact " + id,
		Phone:        "+1555000" + id,
		Email:        id + "@example.com",
		Relationship: models.DefaultRelationship,
		Priority:     priority,
		AddedAt:      time.Now(),
	}
}

func TestUserUC_ListContacts_SortedByPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	user := userWithContacts(contact("2002", 2), contact("3003", 3), contact("1001", 1))
	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID.Hex()).Return(user, nil)

	contacts, err := uc.ListContacts(context.Background(), user.ID.Hex())

	assert.NoError(t, err)
	assert.Len(t, contacts, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{contacts[0].Priority, contacts[1].Priority, contacts[2].Priority})
	assert.Equal(t, "1001", contacts[0].ID)
}

func TestUserUC_AddContact_AssignsNextPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	user := userWithContacts(contact("1001", 1), contact("2002", 2))
	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID.Hex()).Return(user, nil)

	var saved []models.EmergencyContact
	mockRepo.EXPECT().
		ReplaceContacts(gomock.Any(), user.ID.Hex(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id string, contacts []models.EmergencyContact) error {
			saved = contacts
			return nil
		})

	added, err := uc.AddContact(context.Background(), user.ID.Hex(), &models.AddContactRequest{
		Name:  "New Person",
		Phone: "+1 (555) 999-0000",
		Email: "new@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, added.Priority)
	assert.Equal(t, "+15559990000", added.Phone)
	assert.Equal(t, models.DefaultRelationship, added.Relationship)
	assert.NotEmpty(t, added.ID)
	assert.Len(t, saved, 3)
}

func TestUserUC_AddContact_DuplicatePhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	existing := contact("1001", 1)
	user := userWithContacts(existing)
	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID.Hex()).Return(user, nil)

	_, err := uc.AddContact(context.Background(), user.ID.Hex(), &models.AddContactRequest{
		Name:  "Other Name",
		Phone: existing.Phone,
		Email: "other@example.com",
	})

	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestUserUC_AddContact_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	existing := contact("1001", 1)
	user := userWithContacts(existing)
	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID.Hex()).Return(user, nil)

	_, err := uc.AddContact(context.Background(), user.ID.Hex(), &models.AddContactRequest{
		Name:  "Other Name",
		Phone: "+15559998888",
		Email: existing.Email,
	})

	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestUserUC_AddContact_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewUserUC(mocks.NewMockUserRepo(ctrl), testConfig())

	_, err := uc.AddContact(context.Background(), primitive.NewObjectID().Hex(), &models.AddContactRequest{
		Name:  "Person",
		Phone: "+15559990000",
		Email: "not-an-email",
	})

	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
}

func TestUserUC_UpdateContact_PatchesFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	c1 := contact("1001", 1)
	user := userWithContacts(c1, contact("2002", 2))
	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID.Hex()).Return(user, nil)
	mockRepo.EXPECT().ReplaceContacts(gomock.Any(), user.ID.Hex(), gomock.Any()).Return(nil)

	newName := "Renamed"
	updated, err := uc.UpdateContact(context.Background(), user.ID.Hex(), c1.ID, &models.UpdateContactRequest{
		Name: &newName,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	// Untouched fields survive the patch.
	assert.Equal(t, c1.Phone, updated.Phone)
	assert.Equal(t, 1, updated.Priority)
}

func TestUserUC_UpdateContact_DuplicateEmailExcludesSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	c1 := contact("1001", 1)
	c2 := contact("2002", 2)
	user := userWithContacts(c1, c2)
	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID.Hex()).Return(user, nil).Times(2)

	// Re-submitting a contact's own email is not a conflict.
	mockRepo.EXPECT().ReplaceContacts(gomock.Any(), user.ID.Hex(), gomock.Any()).Return(nil)
	ownEmail := c1.Email
	_, err := uc.UpdateContact(context.Background(), user.ID.Hex(), c1.ID, &models.UpdateContactRequest{Email: &ownEmail})
	assert.NoError(t, err)

	// Taking a sibling's email is.
	siblingEmail := c2.Email
	_, err = uc.UpdateContact(context.Background(), user.ID.Hex(), c1.ID, &models.UpdateContactRequest{Email: &siblingEmail})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestUserUC_UpdateContact_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	user := userWithContacts(contact("1001", 1))
	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID.Hex()).Return(user, nil)

	name := "X"
	_, err := uc.UpdateContact(context.Background(), user.ID.Hex(), "missing-id", &models.UpdateContactRequest{Name: &name})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestUserUC_RemoveContact_RenumbersPriorities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	user := userWithContacts(contact("1001", 1), contact("2002", 2), contact("3003", 3))
	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID.Hex()).Return(user, nil)

	var saved []models.EmergencyContact
	mockRepo.EXPECT().
		ReplaceContacts(gomock.Any(), user.ID.Hex(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id string, contacts []models.EmergencyContact) error {
			saved = contacts
			return nil
		})

	err := uc.RemoveContact(context.Background(), user.ID.Hex(), "2002")

	assert.NoError(t, err)
	assert.Len(t, saved, 2)
	assert.Equal(t, "1001", saved[0].ID)
	assert.Equal(t, 1, saved[0].Priority)
	assert.Equal(t, "3003", saved[1].ID)
	assert.Equal(t, 2, saved[1].Priority)
}

func TestUserUC_RemoveContact_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	user := userWithContacts(contact("1001", 1))
	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID.Hex()).Return(user, nil)

	err := uc.RemoveContact(context.Background(), user.ID.Hex(), "missing-id")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
