package articles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	idxArticleNumber = "idx_articles_article_number"
	searchLimit      = 20
)

var ErrArticleNotFound = services.NotFound("article")

// summaryColumns is the list projection; the long text fields are left out.
var summaryColumns = []string{
	"id", "tenant_id", "article_number", "title", "part", "chapter",
	"category", "simplified_explanation", "is_active", "created_at", "updated_at",
}

type ArticleService struct {
	db *gorm.DB
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{db: db}
}

// library restricts a query to the caller's own articles plus the shared
// library, hiding shared articles the firm has replaced with its own number.
func (s *ArticleService) library(ctx context.Context, scope tenant.Scope) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		own := s.db.WithContext(ctx).Model(&models.Article{}).
			Select("article_number").
			Where("tenant_id = ? AND is_active = ?", scope.TenantID, true)
		return db.Where("is_active = ?", true).
			Where("(tenant_id = ? OR (tenant_id = ? AND article_number NOT IN (?)))", scope.TenantID, uuid.Nil, own)
	}
}

func (s *ArticleService) List(ctx context.Context, scope tenant.Scope, category string, page, limit int) (*dto.ListResponse[models.Article], error) {
	q := s.db.WithContext(ctx).Model(&models.Article{}).Scopes(s.library(ctx, scope))
	if category = strings.ToLower(strings.TrimSpace(category)); category != "" {
		q = q.Where("category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	articles := []models.Article{}
	err := q.Select(summaryColumns).
		Order("article_number ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return &dto.ListResponse[models.Article]{Data: articles, Pagination: dto.NewPagination(total, page, limit)}, nil
}

// Search matches the term against number, title, text and keywords.
func (s *ArticleService) Search(ctx context.Context, scope tenant.Scope, term string) ([]models.Article, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		var v dto.Validator
		v.Add("q", "is required")
		return nil, v.Err()
	}

	pattern := "%" + term + "%"
	articles := []models.Article{}
	err := s.db.WithContext(ctx).Model(&models.Article{}).
		Scopes(s.library(ctx, scope)).
		Where("(LOWER(article_number) LIKE ? OR LOWER(title) LIKE ? OR LOWER(simplified_explanation) LIKE ? OR LOWER(original_text) LIKE ? OR LOWER(CAST(keywords AS TEXT)) LIKE ?)",
			pattern, pattern, pattern, pattern, pattern).
		Select(summaryColumns).
		Order("article_number ASC").
		Limit(searchLimit).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}
	return articles, nil
}

func (s *ArticleService) ByCategory(ctx context.Context, scope tenant.Scope, category string) ([]models.Article, error) {
	articles := []models.Article{}
	err := s.db.WithContext(ctx).Model(&models.Article{}).
		Scopes(s.library(ctx, scope)).
		Where("category = ?", strings.ToLower(strings.TrimSpace(category))).
		Select(summaryColumns).
		Order("article_number ASC").
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list articles by category: %w", err)
	}
	return articles, nil
}

// ByNumber returns the full article, preferring the firm's own copy.
func (s *ArticleService) ByNumber(ctx context.Context, scope tenant.Scope, number string) (*models.Article, error) {
	var found []models.Article
	err := s.db.WithContext(ctx).
		Where("is_active = ? AND article_number = ? AND tenant_id IN ?", true, strings.TrimSpace(number), []uuid.UUID{scope.TenantID, uuid.Nil}).
		Limit(2).
		Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load article: %w", err)
	}
	if len(found) == 0 {
		return nil, ErrArticleNotFound
	}
	for i := range found {
		if found[i].TenantID == scope.TenantID {
			return &found[i], nil
		}
	}
	return &found[0], nil
}

func (s *ArticleService) Create(ctx context.Context, scope tenant.Scope, req *ArticleRequest) (*models.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkNumberFree(ctx, scope, req.ArticleNumber, uuid.Nil); err != nil {
		return nil, err
	}

	a := models.Article{TenantID: scope.TenantID, IsActive: true, CreatedBy: scope.UserID}
	if err := req.apply(&a); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		if database.UniqueViolation(err, idxArticleNumber) {
			return nil, services.ErrArticleNumberTaken
		}
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return &a, nil
}

// Update only reaches the firm's own articles; shared ones are read-only.
func (s *ArticleService) Update(ctx context.Context, scope tenant.Scope, id uuid.UUID, req *ArticleRequest) (*models.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.own(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if req.ArticleNumber != a.ArticleNumber {
		if err := s.checkNumberFree(ctx, scope, req.ArticleNumber, a.ID); err != nil {
			return nil, err
		}
	}
	if err := req.apply(a); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(a).Error; err != nil {
		if database.UniqueViolation(err, idxArticleNumber) {
			return nil, services.ErrArticleNumberTaken
		}
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	return a, nil
}

// Delete removes the row outright; a shared article with the same number
// becomes visible again.
func (s *ArticleService) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Scopes(scope.Query).Where("id = ?", id).Delete(&models.Article{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

func (s *ArticleService) own(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Article, error) {
	var a models.Article
	if err := s.db.WithContext(ctx).Scopes(scope.Query).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to load article: %w", err)
	}
	return &a, nil
}

func (s *ArticleService) checkNumberFree(ctx context.Context, scope tenant.Scope, number string, except uuid.UUID) error {
	q := s.db.WithContext(ctx).Model(&models.Article{}).Scopes(scope.WithInactive().Query).Where("article_number = ?", number)
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check article number: %w", err)
	}
	if n > 0 {
		return services.ErrArticleNumberTaken
	}
	return nil
}
