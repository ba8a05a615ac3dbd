package server

import (
	"murmur/internal/models"

	"github.com/gofiber/fiber/v2"
)

// MakeAdmin handles POST /admin/users/:id/make-admin (owner only).
func (s *Server) MakeAdmin(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	msg, err := s.adminService.PromoteAdmin(c.Context(), targetID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"detail": msg})
}

// RemoveAdmin handles POST /admin/users/:id/remove-admin (owner only).
func (s *Server) RemoveAdmin(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	msg, err := s.adminService.DemoteAdmin(c.Context(), targetID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"detail": msg})
}

// DeleteUser handles DELETE /admin/users/:id (owner only). The account is
// deactivated, never dropped.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.adminService.DeactivateUser(c.Context(), currentUser(c), targetID); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
