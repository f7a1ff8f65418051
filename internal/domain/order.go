package domain

type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "PENDING"
	OrderStatusUnderEvaluation OrderStatus = "UNDER_EVALUATION"
	OrderStatusApproved        OrderStatus = "APPROVED"
	OrderStatusRejected        OrderStatus = "REJECTED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
	OrderStatusActive          OrderStatus = "ACTIVE"
	OrderStatusCompleted       OrderStatus = "COMPLETED"
)

// RentalOrder is a client's request to rent a vehicle for a date range.
// Dates are yyyy-mm-dd strings; all references are by ID.
type RentalOrder struct {
	ID               int32       `json:"id"`
	ClientID         int32       `json:"client_id"`
	VehicleID        int32       `json:"vehicle_id"`
	StartDate        string      `json:"start_date"`
	EndDate          string      `json:"end_date"`
	TotalAmountCents int64       `json:"total_amount_cents"`
	Status           OrderStatus `json:"status"`
	EvaluatedBy      *int32      `json:"evaluated_by,omitempty"`
	EvaluationNotes  string      `json:"evaluation_notes"`
	Observations     string      `json:"observations"`
	CreatedOn        string      `json:"created_on"`
	UpdatedOn        string      `json:"updated_on"`
}

// CanBeEvaluated reports whether an agent may still decide on the order.
func (o *RentalOrder) CanBeEvaluated() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusUnderEvaluation
}

// CanBeCancelled reports whether the order may still be cancelled.
func (o *RentalOrder) CanBeCancelled() bool {
	return o.Status != OrderStatusCancelled && o.Status != OrderStatusCompleted
}

// CanBeModified reports whether the client may still edit the order.
func (o *RentalOrder) CanBeModified() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusUnderEvaluation
}

// IsTerminal reports whether the order reached a final state.
func (o *RentalOrder) IsTerminal() bool {
	switch o.Status {
	case OrderStatusRejected, OrderStatusCancelled, OrderStatusCompleted:
		return true
	}
	return false
}
