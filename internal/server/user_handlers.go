package server

import (
	"murmur/internal/cache"
	"murmur/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMe handles GET /users/me
func (s *Server) GetMe(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}

// GetUser handles GET /users/:id. Public profile reads go through the
// cache; auth never does.
func (s *Server) GetUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var user models.User
	err = cache.Aside(c.Context(), cache.UserKey(userID), &user, cache.UserTTL,
		func() error {
			u, err := s.userRepo.GetByID(c.Context(), userID)
			if err != nil {
				return err
			}
			user = *u
			return nil
		})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user)
}

// FollowUser handles POST /users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	msg, err := s.socialService.Follow(c.Context(), currentUser(c), targetID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"detail": msg})
}

// BlockUser handles POST /users/:id/block
func (s *Server) BlockUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	msg, err := s.socialService.Block(c.Context(), currentUser(c), targetID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"detail": msg})
}
