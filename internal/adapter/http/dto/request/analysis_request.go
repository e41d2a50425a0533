package request

// AnalysisCreateRequest is the payload for attaching an analysis to an
// order. FullContent is the paid deliverable and must be present;
// PreviewContent is the public fragment and may be empty.

type AnalysisCreateRequest struct {
	OrderID        string `json:"order_id" binding:"required"`
	PreviewContent string `json:"preview_content"`
	FullContent    string `json:"full_content" binding:"required"`
}

// AnalysisUpdateRequest is the operator content edit payload.

type AnalysisUpdateRequest struct {
	PreviewContent *string `json:"preview_content"`
	FullContent    *string `json:"full_content"`
}

func (r AnalysisUpdateRequest) IsEmpty() bool {
	return r.PreviewContent == nil && r.FullContent == nil
}
