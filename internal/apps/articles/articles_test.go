package articles

import (
	"context"
	"net/http"
	"testing"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/apps/apptest"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedShared(t *testing.T, db *gorm.DB, number, title, category string) models.Article {
	t.Helper()
	a := models.Article{
		TenantID: uuid.Nil, ArticleNumber: number, Title: title, Category: category,
		SimplifiedExplanation: "Explained for " + title, OriginalText: "Full text of " + title,
		Keywords: datatypes.JSON(`["liberty","due process"]`), IsActive: true,
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func TestArticleService_SharedLibrary(t *testing.T) {
	env := apptest.New(t, New())
	svc := NewArticleService(env.DB)
	ctx := context.Background()

	a := env.Member(t, env.Tenant(t, "firm-a"), models.RoleAdmin)
	b := env.Member(t, env.Tenant(t, "firm-b"), models.RoleAdmin)
	shared := seedShared(t, env.DB, "21", "Protection of life", "fundamental_rights")
	seedShared(t, env.DB, "14", "Equality before law", "fundamental_rights")

	list, err := svc.List(ctx, a.Scope, "", 1, 20)
	require.NoError(t, err)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "14", list.Data[0].ArticleNumber)
	assert.Empty(t, list.Data[0].OriginalText)

	found, err := svc.ByNumber(ctx, a.Scope, "21")
	require.NoError(t, err)
	assert.Equal(t, shared.ID, found.ID)
	assert.Equal(t, "Full text of Protection of life", found.OriginalText)

	// A firm's own article shadows the shared one for that firm only.
	own, err := svc.Create(ctx, a.Scope, &ArticleRequest{
		ArticleNumber: "21", Title: "Protection of life (firm notes)", Category: " Fundamental_Rights ",
		Keywords: []string{"Liberty", "liberty ", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, "fundamental_rights", own.Category)
	assert.JSONEq(t, `["liberty"]`, string(own.Keywords))

	found, err = svc.ByNumber(ctx, a.Scope, "21")
	require.NoError(t, err)
	assert.Equal(t, own.ID, found.ID)
	found, err = svc.ByNumber(ctx, b.Scope, "21")
	require.NoError(t, err)
	assert.Equal(t, shared.ID, found.ID)

	list, err = svc.List(ctx, a.Scope, "fundamental_rights", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Pagination.Total)

	// Shared rows are read-only to every firm.
	_, err = svc.Update(ctx, a.Scope, shared.ID, &ArticleRequest{ArticleNumber: "21", Title: "Rewritten"})
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, b.Scope, shared.ID), services.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, b.Scope, own.ID), services.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, a.Scope, own.ID))
	found, err = svc.ByNumber(ctx, a.Scope, "21")
	require.NoError(t, err)
	assert.Equal(t, shared.ID, found.ID)

	_, err = svc.ByNumber(ctx, a.Scope, "999")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestArticleService_NumbersAndSearch(t *testing.T) {
	env := apptest.New(t, New())
	svc := NewArticleService(env.DB)
	ctx := context.Background()

	a := env.Member(t, env.Tenant(t, "firm-a"), models.RoleOwner)
	b := env.Member(t, env.Tenant(t, "firm-b"), models.RoleOwner)
	seedShared(t, env.DB, "19", "Freedom of speech", "fundamental_rights")

	_, err := svc.Create(ctx, a.Scope, &ArticleRequest{
		ArticleNumber: "300A", Title: "Right to property",
		Clauses: []models.ArticleClause{{Clause: ""}},
	})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "clauses[0].clause", verr.Fields[0].Field)

	first, err := svc.Create(ctx, a.Scope, &ArticleRequest{
		ArticleNumber: "300A", Title: "Right to property", Keywords: []string{"Acquisition"},
		Amendments: []models.ArticleAmendment{{AmendmentAct: "44th Amendment", Year: "1978", WhatChanged: "Moved out of Part III"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.Amendments)

	_, err = svc.Create(ctx, a.Scope, &ArticleRequest{ArticleNumber: "300A", Title: "Duplicate"})
	assert.ErrorIs(t, err, services.ErrArticleNumberTaken)

	// Numbers are unique per library, not globally.
	_, err = svc.Create(ctx, b.Scope, &ArticleRequest{ArticleNumber: "300A", Title: "Right to property"})
	require.NoError(t, err)

	second, err := svc.Create(ctx, a.Scope, &ArticleRequest{ArticleNumber: "301", Title: "Freedom of trade"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, a.Scope, second.ID, &ArticleRequest{ArticleNumber: "300A", Title: "Freedom of trade"})
	assert.ErrorIs(t, err, services.ErrArticleNumberTaken)

	_, err = svc.Search(ctx, a.Scope, "  ")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "q", verr.Fields[0].Field)

	hits, err := svc.Search(ctx, a.Scope, "ACQUISITION")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, first.ID, hits[0].ID)

	hits, err = svc.Search(ctx, a.Scope, "due process")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "19", hits[0].ArticleNumber)

	hits, err = svc.Search(ctx, b.Scope, "acquisition")
	require.NoError(t, err)
	assert.Empty(t, hits)

	byCat, err := svc.ByCategory(ctx, b.Scope, "FUNDAMENTAL_RIGHTS")
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	assert.Equal(t, "19", byCat[0].ArticleNumber)
}

func TestArticleHandlers(t *testing.T) {
	env := apptest.New(t, New())
	tenantA := env.Tenant(t, "firm-a")
	admin := env.Member(t, tenantA, models.RoleAdmin)
	advocate := env.Member(t, tenantA, models.RoleAdvocate)
	seedShared(t, env.DB, "21", "Protection of life", "fundamental_rights")

	body := ArticleRequest{ArticleNumber: "21A", Title: "Right to education"}
	status, _ := env.Do(t, advocate, http.MethodPost, "/api/articles", body)
	assert.Equal(t, http.StatusForbidden, status)

	status, raw := env.Do(t, admin, http.MethodPost, "/api/articles", body)
	require.Equal(t, http.StatusCreated, status, string(raw))
	var created models.Article
	apptest.Decode(t, raw, &created)

	status, _ = env.Do(t, admin, http.MethodPost, "/api/articles", body)
	assert.Equal(t, http.StatusConflict, status)

	status, raw = env.Do(t, advocate, http.MethodGet, "/api/articles/search?q=life", nil)
	require.Equal(t, http.StatusOK, status)
	var hits struct {
		Data  []models.Article `json:"data"`
		Count int              `json:"count"`
	}
	apptest.Decode(t, raw, &hits)
	assert.Equal(t, 1, hits.Count)

	status, _ = env.Do(t, advocate, http.MethodGet, "/api/articles/search", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw = env.Do(t, advocate, http.MethodGet, "/api/articles/21A", nil)
	require.Equal(t, http.StatusOK, status)
	var got models.Article
	apptest.Decode(t, raw, &got)
	assert.Equal(t, created.ID, got.ID)

	status, raw = env.Do(t, advocate, http.MethodGet, "/api/articles/category/fundamental_rights", nil)
	require.Equal(t, http.StatusOK, status)
	apptest.Decode(t, raw, &hits)
	assert.Equal(t, 1, hits.Count)

	status, raw = env.Do(t, advocate, http.MethodGet, "/api/articles?page=1&limit=1", nil)
	require.Equal(t, http.StatusOK, status)
	var page dto.ListResponse[models.Article]
	apptest.Decode(t, raw, &page)
	assert.Equal(t, int64(2), page.Pagination.Total)
	assert.Len(t, page.Data, 1)

	status, _ = env.Do(t, admin, http.MethodDelete, "/api/articles/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = env.Do(t, advocate, http.MethodGet, "/api/articles/21A", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
