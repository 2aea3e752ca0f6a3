package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rescuerush/rescuerush/internal/pkg/apperrors"
	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/internal/utils"
)

// ListContacts returns the user's emergency contacts sorted by ascending
// priority.
func (u *UserUC) ListContacts(ctx context.Context, userID string) ([]models.EmergencyContact, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	contacts := make([]models.EmergencyContact, len(user.EmergencyContacts))
	copy(contacts, user.EmergencyContacts)
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].Priority < contacts[j].Priority
	})

	return contacts, nil
}

// AddContact appends a contact at the lowest priority, enforcing phone and
// email uniqueness within the user.
func (u *UserUC) AddContact(ctx context.Context, userID string, req *models.AddContactRequest) (*models.EmergencyContact, error) {
	if req.Name == "" || req.Phone == "" || req.Email == "" {
		return nil, apperrors.BadRequest("Name, phone, and email are required")
	}
	if !utils.ValidEmail(req.Email) {
		return nil, apperrors.BadRequest("Invalid email address")
	}

	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	phone := utils.NormalizePhone(req.Phone)
	for _, c := range user.EmergencyContacts {
		if c.Phone == phone {
			return nil, apperrors.Conflict("Contact with this phone already exists")
		}
		if c.Email == req.Email {
			return nil, apperrors.Conflict("Contact with this email already exists")
		}
	}

	relationship := req.Relationship
	if relationship == "" {
		relationship = models.DefaultRelationship
	}

	contact := models.EmergencyContact{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Phone:        phone,
		Email:        req.Email,
		Relationship: relationship,
		Priority:     len(user.EmergencyContacts) + 1,
		AddedAt:      time.Now(),
	}

	contacts := append(user.EmergencyContacts, contact)
	if err := u.userRepo.ReplaceContacts(ctx, userID, contacts); err != nil {
		return nil, apperrors.Internal("Failed to add contact", err)
	}

	logger.Info("Emergency contact added",
		logger.String("user_id", userID),
		logger.String("contact_id", contact.ID),
		logger.Int("priority", contact.Priority))

	return &contact, nil
}

// UpdateContact patches the provided fields of one contact.
func (u *UserUC) UpdateContact(ctx context.Context, userID, contactID string, req *models.UpdateContactRequest) (*models.EmergencyContact, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	contacts := user.EmergencyContacts
	idx := -1
	for i, c := range contacts {
		if c.ID == contactID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.NotFound("Contact not found")
	}

	if req.Email != nil {
		if !utils.ValidEmail(*req.Email) {
			return nil, apperrors.BadRequest("Invalid email address")
		}
		for i, c := range contacts {
			if i != idx && c.Email == *req.Email {
				return nil, apperrors.Conflict("Contact with this email already exists")
			}
		}
		contacts[idx].Email = *req.Email
	}
	if req.Phone != nil {
		phone := utils.NormalizePhone(*req.Phone)
		for i, c := range contacts {
			if i != idx && c.Phone == phone {
				return nil, apperrors.Conflict("Contact with this phone already exists")
			}
		}
		contacts[idx].Phone = phone
	}
	if req.Name != nil {
		contacts[idx].Name = *req.Name
	}
	if req.Relationship != nil {
		contacts[idx].Relationship = *req.Relationship
	}

	if err := u.userRepo.ReplaceContacts(ctx, userID, contacts); err != nil {
		return nil, apperrors.Internal("Failed to update contact", err)
	}

	updated := contacts[idx]
	return &updated, nil
}

// RemoveContact deletes one contact and renumbers the remaining priorities
// to a contiguous 1..N-1 sequence preserving list order.
func (u *UserUC) RemoveContact(ctx context.Context, userID, contactID string) error {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	contacts := user.EmergencyContacts
	remaining := make([]models.EmergencyContact, 0, len(contacts))
	found := false
	for _, c := range contacts {
		if c.ID == contactID {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return apperrors.NotFound("Contact not found")
	}

	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].Priority < remaining[j].Priority
	})
	for i := range remaining {
		remaining[i].Priority = i + 1
	}

	if err := u.userRepo.ReplaceContacts(ctx, userID, remaining); err != nil {
		return apperrors.Internal("Failed to remove contact", err)
	}

	logger.Info("Emergency contact removed",
		logger.String("user_id", userID),
		logger.String("contact_id", contactID),
		logger.Int("remaining", len(remaining)))

	return nil
}

func (u *UserUC) loadUser(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, apperrors.BadRequest("User ID is required")
	}
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Internal("Failed to load user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	return user, nil
}
