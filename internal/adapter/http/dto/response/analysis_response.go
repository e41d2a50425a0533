package response

import (
	"time"

	"legal_intake/internal/domain/entities"
	"legal_intake/internal/usecase"
)

// AnalysisResponse carries the full analysis; it is only ever built after
// the visibility gate has allowed the read.

type AnalysisResponse struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"order_id"`
	PreviewContent string    `json:"preview_content,omitempty"`
	FullContent    string    `json:"full_content"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromAnalysis(a entities.Analysis) AnalysisResponse {
	return AnalysisResponse{
		ID:             a.ID,
		OrderID:        a.OrderID,
		PreviewContent: a.PreviewContent,
		FullContent:    a.FullContent,
		CreatedBy:      a.CreatedBy,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// AnalysisPreviewResponse is the ungated view: the public fragment plus a
// flag telling the client there is paid content behind the gate.

type AnalysisPreviewResponse struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"order_id"`
	PreviewContent string    `json:"preview_content,omitempty"`
	HasFullContent bool      `json:"has_full_content"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromAnalysisPreview(p usecase.AnalysisPreview) AnalysisPreviewResponse {
	return AnalysisPreviewResponse{
		ID:             p.ID,
		OrderID:        p.OrderID,
		PreviewContent: p.PreviewContent,
		HasFullContent: p.HasFullContent,
		CreatedAt:      p.CreatedAt,
	}
}
