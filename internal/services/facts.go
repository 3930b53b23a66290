package services

import (
	"errors"
	"strings"
	"time"

	"factshub/internal/apperror"
	"factshub/internal/db"
	"factshub/internal/models"

	"gorm.io/gorm"
)

// PageSize is the fixed size of archive pages.
const PageSize = 10

const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// FactDraft is the submission input before any status is decided.
type FactDraft struct {
	Title      string
	Content    string
	Source     string
	CategoryID uint
}

// SubmitFact validates a draft and inserts it with the status the author's
// role dictates: moderators and admins publish immediately, everyone else
// lands in the moderation queue.
func SubmitFact(actor Identity, draft FactDraft) (*models.Fact, error) {
	if !actor.IsAuthenticated() {
		return nil, apperror.New(apperror.ErrAuthentication, "you must be signed in to submit a fact")
	}

	draft.Title = strings.TrimSpace(draft.Title)
	draft.Content = strings.TrimSpace(draft.Content)
	if draft.Title == "" {
		return nil, apperror.New(apperror.ErrValidation, "title is required")
	}
	if draft.Content == "" {
		return nil, apperror.New(apperror.ErrValidation, "content is required")
	}
	if draft.CategoryID == 0 {
		return nil, apperror.New(apperror.ErrValidation, "category is required")
	}

	fact := models.Fact{
		Title:      draft.Title,
		Content:    draft.Content,
		Source:     strings.TrimSpace(draft.Source),
		CategoryID: &draft.CategoryID,
		AuthorID:   &actor.UserID,
		Status:     models.FactStatusPending,
	}
	if actor.Role.CanModerate() {
		now := time.Now()
		fact.Status = models.FactStatusPublished
		fact.PublishedAt = &now
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, draft.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.New(apperror.ErrValidation, "category does not exist")
			}
			return apperror.Store(err)
		}
		if err := tx.Create(&fact).Error; err != nil {
			return apperror.Store(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &fact, nil
}

// ApproveFact publishes a queued or previously rejected fact. The status
// change and the publication timestamp are written atomically.
func ApproveFact(actor Identity, factID uint) (*models.Fact, error) {
	if !actor.Role.CanModerate() {
		return nil, apperror.New(apperror.ErrPermission, "moderator role required")
	}

	var fact models.Fact
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&fact, factID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.New(apperror.ErrNotFound, "fact not found")
			}
			return apperror.Store(err)
		}
		now := time.Now()
		fact.Status = models.FactStatusPublished
		fact.PublishedAt = &now
		if err := tx.Model(&models.Fact{}).Where("id = ?", fact.ID).Updates(map[string]interface{}{
			"status":       models.FactStatusPublished,
			"published_at": &now,
		}).Error; err != nil {
			return apperror.Store(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &fact, nil
}

// RejectFact moves a fact to rejected. The publication timestamp is cleared
// so that only published facts ever carry one; a rejected fact can still be
// re-approved later.
func RejectFact(actor Identity, factID uint) (*models.Fact, error) {
	if !actor.Role.CanModerate() {
		return nil, apperror.New(apperror.ErrPermission, "moderator role required")
	}

	var fact models.Fact
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&fact, factID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.New(apperror.ErrNotFound, "fact not found")
			}
			return apperror.Store(err)
		}
		fact.Status = models.FactStatusRejected
		fact.PublishedAt = nil
		if err := tx.Model(&models.Fact{}).Where("id = ?", fact.ID).Updates(map[string]interface{}{
			"status":       models.FactStatusRejected,
			"published_at": nil,
		}).Error; err != nil {
			return apperror.Store(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &fact, nil
}

// ListPublished returns one 1-indexed page of published facts, newest or
// oldest first by publication time, optionally restricted to a category.
// The total count is returned for page links.
func ListPublished(categoryID *uint, sort string, page int) ([]models.Fact, int64, error) {
	if page < 1 {
		page = 1
	}
	order := "published_at DESC"
	if sort == SortOldest {
		order = "published_at ASC"
	}

	query := db.DB.Model(&models.Fact{}).Where("status = ?", models.FactStatusPublished)
	if categoryID != nil && *categoryID != 0 {
		query = query.Where("category_id = ?", *categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperror.Store(err)
	}

	var facts []models.Fact
	if err := query.Preload("Category").Preload("Author").
		Order(order).
		Limit(PageSize).
		Offset((page - 1) * PageSize).
		Find(&facts).Error; err != nil {
		return nil, 0, apperror.Store(err)
	}
	return facts, total, nil
}

// RecentPublished returns the latest published facts for the home page.
func RecentPublished(limit int) ([]models.Fact, error) {
	var facts []models.Fact
	if err := db.DB.Preload("Category").Preload("Author").
		Where("status = ?", models.FactStatusPublished).
		Order("published_at DESC").
		Limit(limit).
		Find(&facts).Error; err != nil {
		return nil, apperror.Store(err)
	}
	return facts, nil
}

// PickRandomPublished returns one uniformly random published fact, or nil
// when nothing is published yet.
func PickRandomPublished() (*models.Fact, error) {
	var fact models.Fact
	err := db.DB.Preload("Category").Preload("Author").
		Where("status = ?", models.FactStatusPublished).
		Order("RANDOM()").
		First(&fact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Store(err)
	}
	return &fact, nil
}

// GetFact loads a single fact with its category and author for the detail
// view. Unpublished facts are returned too; the read routes decide what to
// expose.
func GetFact(factID uint) (*models.Fact, error) {
	var fact models.Fact
	err := db.DB.Preload("Category").Preload("Author").First(&fact, factID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.ErrNotFound, "fact not found")
		}
		return nil, apperror.Store(err)
	}
	return &fact, nil
}

// ModerationQueue returns pending and rejected facts, newest first, together
// with the number still pending.
func ModerationQueue(actor Identity) ([]models.Fact, int64, error) {
	if !actor.Role.CanModerate() {
		return nil, 0, apperror.New(apperror.ErrPermission, "moderator role required")
	}

	var facts []models.Fact
	if err := db.DB.Preload("Category").Preload("Author").
		Where("status IN ?", []models.FactStatus{models.FactStatusPending, models.FactStatusRejected}).
		Order("created_at DESC").
		Find(&facts).Error; err != nil {
		return nil, 0, apperror.Store(err)
	}

	var pending int64
	for _, f := range facts {
		if f.Status == models.FactStatusPending {
			pending++
		}
	}
	return facts, pending, nil
}

// FactsByAuthor returns every fact a user submitted, any status, newest
// first (profile page).
func FactsByAuthor(userID uint) ([]models.Fact, error) {
	var facts []models.Fact
	if err := db.DB.Preload("Category").
		Where("author_id = ?", userID).
		Order("created_at DESC").
		Find(&facts).Error; err != nil {
		return nil, apperror.Store(err)
	}
	return facts, nil
}

// Categories returns all categories ordered by name for filter bars and
// submission forms.
func Categories() ([]models.Category, error) {
	var categories []models.Category
	if err := db.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperror.Store(err)
	}
	return categories, nil
}
