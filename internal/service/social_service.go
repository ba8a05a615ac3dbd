package service

import (
	"context"
	"fmt"

	"murmur/internal/models"
	"murmur/internal/repository"
)

type SocialService struct {
	socialRepo repository.SocialRepository
	userRepo   repository.UserRepository
}

func NewSocialService(socialRepo repository.SocialRepository, userRepo repository.UserRepository) *SocialService {
	return &SocialService{socialRepo: socialRepo, userRepo: userRepo}
}

// Follow creates a directed follow edge. There is no reverse operation;
// unfollow is an intentional product gap.
func (s *SocialService) Follow(ctx context.Context, actor *models.User, targetID uint) (string, error) {
	if actor.ID == targetID {
		return "", models.NewValidationError("Cannot follow yourself")
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return "", err
	}

	exists, err := s.socialRepo.FollowExists(ctx, actor.ID, target.ID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", models.NewConflictError("Already following")
	}

	msg := fmt.Sprintf("%s followed %s", actor.Username, target.Username)
	objectType := models.ObjectUser
	activity := &models.Activity{
		ActorID:      actor.ID,
		Verb:         models.VerbFollowedUser,
		ObjectType:   &objectType,
		ObjectID:     &target.ID,
		TargetUserID: &target.ID,
		Message:      msg,
	}
	follow := &models.Follow{FollowerID: actor.ID, FollowingID: target.ID}
	if err := s.socialRepo.CreateFollow(ctx, follow, activity); err != nil {
		return "", err
	}
	return msg, nil
}

// Block creates a directed block edge. Blocking writes no ledger row and
// leaves any existing follow edge in place.
func (s *SocialService) Block(ctx context.Context, actor *models.User, targetID uint) (string, error) {
	if actor.ID == targetID {
		return "", models.NewValidationError("Cannot block yourself")
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return "", err
	}

	exists, err := s.socialRepo.BlockExists(ctx, actor.ID, target.ID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", models.NewConflictError("Already blocked")
	}

	block := &models.Block{BlockerID: actor.ID, BlockedID: target.ID}
	if err := s.socialRepo.CreateBlock(ctx, block); err != nil {
		return "", err
	}
	return fmt.Sprintf("Blocked %s", target.Username), nil
}
