package server

import (
	"murmur/internal/models"
	"murmur/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /activity/feed. The feed is filtered by who has
// blocked the viewer, not by who the viewer follows.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	p := parsePagination(c, repository.FeedPageSize)

	activities, err := s.activityRepo.Feed(c.Context(), currentUser(c).ID, p.Limit)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(activities)
}
