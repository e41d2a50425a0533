package entities

import "time"

// Analysis is the operator-authored result attached to one order.
//
// Storage model (DynamoDB):
//   - PK: order_id
//
// We purposely use the order id as PK to guarantee at most one analysis per
// order: the conditional put that creates the analysis is the uniqueness
// check. PreviewContent is visible to the order owner before payment;
// FullContent is gated until the order is COMPLETED.

type Analysis struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"order_id"`
	PreviewContent string    `json:"preview_content,omitempty"`
	FullContent    string    `json:"full_content,omitempty"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasFullContent reports whether a paid version of the analysis exists.
func (a Analysis) HasFullContent() bool {
	return a.FullContent != ""
}

// AnalysisUpdate is an allow-listed content update applied by operators.

type AnalysisUpdate struct {
	PreviewContent *string
	FullContent    *string
}

func (u AnalysisUpdate) IsZero() bool {
	return u.PreviewContent == nil && u.FullContent == nil
}
