package articles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"gorm.io/datatypes"
)

// ArticleRequest is the body of both create and update; update replaces every field.
type ArticleRequest struct {
	ArticleNumber         string                          `json:"article_number"`
	Title                 string                          `json:"title"`
	Part                  string                          `json:"part"`
	Chapter               string                          `json:"chapter"`
	Category              string                          `json:"category"`
	OriginalText          string                          `json:"original_text"`
	SimplifiedExplanation string                          `json:"simplified_explanation"`
	PurposeAndIntent      string                          `json:"purpose_and_intent"`
	Clauses               []models.ArticleClause          `json:"clauses"`
	Amendments            []models.ArticleAmendment       `json:"amendments"`
	Interpretations       []models.JudicialInterpretation `json:"interpretations"`
	PracticalExamples     []string                        `json:"practical_examples"`
	RelatedArticles       []string                        `json:"related_articles"`
	Keywords              []string                        `json:"keywords"`
}

func (r *ArticleRequest) Validate() error {
	r.ArticleNumber = strings.TrimSpace(r.ArticleNumber)
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	r.Keywords = normalizeKeywords(r.Keywords)

	var v dto.Validator
	v.Length("article_number", r.ArticleNumber, 1, 50)
	v.Length("title", r.Title, 2, 255)
	if r.Category != "" {
		v.Length("category", r.Category, 1, 100)
	}
	for i, c := range r.Clauses {
		if strings.TrimSpace(c.Clause) == "" {
			v.Add(fmt.Sprintf("clauses[%d].clause", i), "is required")
		}
	}
	for i, a := range r.Amendments {
		if strings.TrimSpace(a.AmendmentAct) == "" {
			v.Add(fmt.Sprintf("amendments[%d].amendment_act", i), "is required")
		}
	}
	for i, in := range r.Interpretations {
		if strings.TrimSpace(in.CaseName) == "" {
			v.Add(fmt.Sprintf("interpretations[%d].case_name", i), "is required")
		}
	}
	return v.Err()
}

func (r *ArticleRequest) apply(a *models.Article) error {
	a.ArticleNumber = r.ArticleNumber
	a.Title = r.Title
	a.Part = r.Part
	a.Chapter = r.Chapter
	a.Category = r.Category
	a.OriginalText = r.OriginalText
	a.SimplifiedExplanation = r.SimplifiedExplanation
	a.PurposeAndIntent = r.PurposeAndIntent

	fields := []struct {
		dst *datatypes.JSON
		src interface{}
		n   int
	}{
		{&a.Clauses, r.Clauses, len(r.Clauses)},
		{&a.Amendments, r.Amendments, len(r.Amendments)},
		{&a.Interpretations, r.Interpretations, len(r.Interpretations)},
		{&a.PracticalExamples, r.PracticalExamples, len(r.PracticalExamples)},
		{&a.RelatedArticles, r.RelatedArticles, len(r.RelatedArticles)},
		{&a.Keywords, r.Keywords, len(r.Keywords)},
	}
	for _, f := range fields {
		if f.n == 0 {
			*f.dst = nil
			continue
		}
		raw, err := json.Marshal(f.src)
		if err != nil {
			return fmt.Errorf("failed to encode article: %w", err)
		}
		*f.dst = datatypes.JSON(raw)
	}
	return nil
}

// normalizeKeywords lower-cases, trims and de-duplicates, keeping first-seen order.
func normalizeKeywords(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, k := range in {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
