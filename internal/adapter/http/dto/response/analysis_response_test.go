package response

import (
	"testing"
	"time"

	"legal_intake/internal/domain/entities"
	"legal_intake/internal/usecase"
)

func TestFromAnalysis(t *testing.T) {
	now := time.Now().UTC()
	a := entities.Analysis{
		ID:             "ana-1",
		OrderID:        "ord-1",
		PreviewContent: "Short summary.",
		FullContent:    "The complete analysis.",
		CreatedBy:      "op-1",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res := FromAnalysis(a)
	if res.ID != "ana-1" || res.OrderID != "ord-1" || res.CreatedBy != "op-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.FullContent != "The complete analysis." {
		t.Fatalf("unexpected content: %+v", res)
	}
}

func TestFromAnalysisPreview(t *testing.T) {
	now := time.Now().UTC()
	p := usecase.AnalysisPreview{
		ID:             "ana-1",
		OrderID:        "ord-1",
		PreviewContent: "Short summary.",
		HasFullContent: true,
		CreatedAt:      now,
	}

	res := FromAnalysisPreview(p)
	if res.ID != "ana-1" || !res.HasFullContent {
		t.Fatalf("unexpected preview: %+v", res)
	}
	if res.PreviewContent != "Short summary." || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}
