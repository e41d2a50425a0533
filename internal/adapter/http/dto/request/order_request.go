package request

// OrderCreateRequest is the payload for creating an intake order.

type OrderCreateRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// OrderUpdateRequest is the payload for editing an order. Which fields are
// honored depends on the caller's role: clients may send title/description
// only, and any privileged field in a client request is rejected outright
// rather than silently dropped.

type OrderUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Status      *string  `json:"status"`
	OperatorID  *string  `json:"operator_id"`
}

// HasPrivilegedFields reports whether the payload touches staff-only fields.
func (r OrderUpdateRequest) HasPrivilegedFields() bool {
	return r.Status != nil || r.OperatorID != nil || r.Price != nil
}

// IsEmpty reports whether the payload carries no fields at all.
func (r OrderUpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Price == nil && r.Status == nil && r.OperatorID == nil
}
