// Package seed creates demo data for development databases. Not meant for
// production use.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"murmur/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much data the seeder creates.
type Options struct {
	Users   int
	Posts   int
	Follows int
	Likes   int
	Blocks  int
	Clean   bool
}

// DefaultOptions matches a small but lively development instance.
func DefaultOptions() Options {
	return Options{Users: 25, Posts: 100, Follows: 60, Likes: 150, Blocks: 5, Clean: true}
}

// Seeder builds and persists demo entities.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db, rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// ClearAll removes all domain rows. Order respects foreign keys.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{
		&models.Activity{}, &models.Like{}, &models.Block{},
		&models.Follow{}, &models.Post{}, &models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// Seed populates the database. The first created user is the OWNER, exactly
// as a real first signup would be.
func (s *Seeder) Seed(opts Options) error {
	if opts.Clean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
	}

	users, err := s.createUsers(opts.Users)
	if err != nil {
		return fmt.Errorf("users: %w", err)
	}
	posts, err := s.createPosts(users, opts.Posts)
	if err != nil {
		return fmt.Errorf("posts: %w", err)
	}
	if err := s.createFollows(users, opts.Follows); err != nil {
		return fmt.Errorf("follows: %w", err)
	}
	if err := s.createLikes(users, posts, opts.Likes); err != nil {
		return fmt.Errorf("likes: %w", err)
	}
	if err := s.createBlocks(users, opts.Blocks); err != nil {
		return fmt.Errorf("blocks: %w", err)
	}

	log.Printf("seeded %d users, %d posts", len(users), len(posts))
	return nil
}

func (s *Seeder) createUsers(count int) ([]models.User, error) {
	if count < 1 {
		count = 1
	}

	// One shared hash keeps seeding fast; these are throwaway accounts.
	hash, err := bcrypt.GenerateFromPassword([]byte("Seed-Passw0rd!"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		role := models.RoleUser
		if i == 0 {
			role = models.RoleOwner
		} else if i == 1 {
			role = models.RoleAdmin
		}
		users = append(users, models.User{
			Username:     fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:        gofakeit.Email(),
			PasswordHash: string(hash),
			Role:         role,
			IsActive:     true,
			CreatedAt:    s.pastTime(90),
		})
	}
	if err := s.db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Seeder) createPosts(users []models.User, count int) ([]models.Post, error) {
	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[s.rand.Intn(len(users))]
		createdAt := s.pastTime(60)
		post := models.Post{
			AuthorID:  author.ID,
			Content:   gofakeit.Paragraph(1, 3, 8, " "),
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
		posts = append(posts, post)
	}
	if err := s.db.Create(&posts).Error; err != nil {
		return nil, err
	}

	// Ledger rows, same as the live POST /posts path writes.
	activities := make([]models.Activity, 0, len(posts))
	byID := usersByID(users)
	for i := range posts {
		p := posts[i]
		objectType := models.ObjectPost
		activities = append(activities, models.Activity{
			ActorID:      p.AuthorID,
			Verb:         models.VerbPostCreated,
			ObjectType:   &objectType,
			ObjectID:     &posts[i].ID,
			TargetUserID: &posts[i].AuthorID,
			Message:      fmt.Sprintf("%s made a post", byID[p.AuthorID].Username),
			CreatedAt:    p.CreatedAt,
		})
	}
	if err := s.db.Create(&activities).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Seeder) createFollows(users []models.User, count int) error {
	byID := usersByID(users)
	seen := map[[2]uint]bool{}
	for created := 0; created < count; {
		a := users[s.rand.Intn(len(users))]
		b := users[s.rand.Intn(len(users))]
		key := [2]uint{a.ID, b.ID}
		if a.ID == b.ID || seen[key] {
			continue
		}
		seen[key] = true

		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&models.Follow{FollowerID: a.ID, FollowingID: b.ID}).Error; err != nil {
				return err
			}
			objectType := models.ObjectUser
			return tx.Create(&models.Activity{
				ActorID:      a.ID,
				Verb:         models.VerbFollowedUser,
				ObjectType:   &objectType,
				ObjectID:     &b.ID,
				TargetUserID: &b.ID,
				Message:      fmt.Sprintf("%s followed %s", byID[a.ID].Username, byID[b.ID].Username),
				CreatedAt:    s.pastTime(30),
			}).Error
		})
		if err != nil {
			return err
		}
		created++
	}
	return nil
}

func (s *Seeder) createLikes(users []models.User, posts []models.Post, count int) error {
	if len(posts) == 0 {
		return nil
	}
	byID := usersByID(users)
	seen := map[[2]uint]bool{}
	for created := 0; created < count; {
		u := users[s.rand.Intn(len(users))]
		p := posts[s.rand.Intn(len(posts))]
		key := [2]uint{u.ID, p.ID}
		if seen[key] {
			continue
		}
		seen[key] = true

		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&models.Like{UserID: u.ID, PostID: p.ID}).Error; err != nil {
				return err
			}
			objectType := models.ObjectPost
			return tx.Create(&models.Activity{
				ActorID:      u.ID,
				Verb:         models.VerbLikedPost,
				ObjectType:   &objectType,
				ObjectID:     &p.ID,
				TargetUserID: &p.AuthorID,
				Message:      fmt.Sprintf("%s liked %s's post", byID[u.ID].Username, byID[p.AuthorID].Username),
				CreatedAt:    s.pastTime(30),
			}).Error
		})
		if err != nil {
			return err
		}
		created++
	}
	return nil
}

// createBlocks writes block edges only. Blocking never touches the ledger.
func (s *Seeder) createBlocks(users []models.User, count int) error {
	if len(users) < 2 {
		return nil
	}
	seen := map[[2]uint]bool{}
	for created := 0; created < count; {
		a := users[s.rand.Intn(len(users))]
		b := users[s.rand.Intn(len(users))]
		key := [2]uint{a.ID, b.ID}
		if a.ID == b.ID || seen[key] {
			continue
		}
		seen[key] = true
		if err := s.db.Create(&models.Block{BlockerID: a.ID, BlockedID: b.ID}).Error; err != nil {
			return err
		}
		created++
	}
	return nil
}

func (s *Seeder) pastTime(maxDays int) time.Time {
	days := s.rand.Intn(maxDays)
	mins := s.rand.Intn(24 * 60)
	return time.Now().Add(-time.Duration(days)*24*time.Hour - time.Duration(mins)*time.Minute)
}

func usersByID(users []models.User) map[uint]models.User {
	m := make(map[uint]models.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return m
}
