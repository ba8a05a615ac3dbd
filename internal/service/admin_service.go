package service

import (
	"context"

	"murmur/internal/models"
	"murmur/internal/repository"
)

type AdminService struct {
	userRepo repository.UserRepository
}

func NewAdminService(userRepo repository.UserRepository) *AdminService {
	return &AdminService{userRepo: userRepo}
}

func (s *AdminService) PromoteAdmin(ctx context.Context, targetID uint) (string, error) {
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return "", err
	}
	if err := s.userRepo.UpdateRole(ctx, target, models.RoleAdmin); err != nil {
		return "", err
	}
	return "User promoted to admin", nil
}

// DemoteAdmin demotes an ADMIN back to USER. Demoting a user who is not an
// admin is a bad request, not a no-op.
func (s *AdminService) DemoteAdmin(ctx context.Context, targetID uint) (string, error) {
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return "", err
	}
	if target.Role != models.RoleAdmin {
		return "", models.NewValidationError("User is not an admin")
	}
	if err := s.userRepo.UpdateRole(ctx, target, models.RoleUser); err != nil {
		return "", err
	}
	return "User demoted to user", nil
}

// DeactivateUser soft-deletes an account: the row stays so username and
// email remain reserved, and the ledger records who pulled the trigger.
func (s *AdminService) DeactivateUser(ctx context.Context, owner *models.User, targetID uint) error {
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	objectType := models.ObjectUser
	activity := &models.Activity{
		ActorID:      owner.ID,
		Verb:         models.VerbUserDeleted,
		ObjectType:   &objectType,
		ObjectID:     &target.ID,
		TargetUserID: &target.ID,
		Message:      "User deleted by 'Owner'",
	}
	return s.userRepo.Deactivate(ctx, target, activity)
}
