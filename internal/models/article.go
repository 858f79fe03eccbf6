package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Article is one provision of the legal reference library. Rows with a nil
// TenantID form the shared library every firm can read; firms may add their
// own rows, which shadow shared ones with the same number.
type Article struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID              uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_articles_article_number,priority:1" json:"tenant_id"`
	ArticleNumber         string         `gorm:"size:50;not null;uniqueIndex:idx_articles_article_number,priority:2" json:"article_number"`
	Title                 string         `gorm:"size:255;not null" json:"title"`
	Part                  string         `gorm:"size:100" json:"part,omitempty"`
	Chapter               string         `gorm:"size:100" json:"chapter,omitempty"`
	Category              string         `gorm:"size:100;index" json:"category,omitempty"`
	OriginalText          string         `gorm:"type:text" json:"original_text,omitempty"`
	SimplifiedExplanation string         `gorm:"type:text" json:"simplified_explanation,omitempty"`
	PurposeAndIntent      string         `gorm:"type:text" json:"purpose_and_intent,omitempty"`
	Clauses               datatypes.JSON `json:"clauses,omitempty"`
	Amendments            datatypes.JSON `json:"amendments,omitempty"`
	Interpretations       datatypes.JSON `json:"interpretations,omitempty"`
	PracticalExamples     datatypes.JSON `json:"practical_examples,omitempty"`
	RelatedArticles       datatypes.JSON `json:"related_articles,omitempty"`
	Keywords              datatypes.JSON `json:"keywords,omitempty"`
	IsActive              bool           `gorm:"not null" json:"is_active"`
	CreatedBy             uuid.UUID      `gorm:"type:uuid" json:"created_by"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type ArticleClause struct {
	Clause      string `json:"clause"`
	Explanation string `json:"explanation"`
}

type ArticleAmendment struct {
	AmendmentAct string `json:"amendment_act"`
	Year         string `json:"year"`
	WhatChanged  string `json:"what_changed"`
	Impact       string `json:"impact,omitempty"`
}

type JudicialInterpretation struct {
	CaseName         string   `json:"case_name"`
	Year             string   `json:"year,omitempty"`
	Court            string   `json:"court,omitempty"`
	JudgementSummary string   `json:"judgement_summary"`
	KeyPoints        []string `json:"key_points,omitempty"`
	Impact           string   `json:"impact,omitempty"`
}
