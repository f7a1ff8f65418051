package domain

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
	VehicleStatusUnavailable VehicleStatus = "UNAVAILABLE"
)

type OwnerType string

const (
	OwnerTypeClient  OwnerType = "CLIENT"
	OwnerTypeCompany OwnerType = "COMPANY"
	OwnerTypeBank    OwnerType = "BANK"
)

type Vehicle struct {
	ID             int32         `json:"id"`
	Registration   string        `json:"registration"`
	Plate          string        `json:"plate"`
	Brand          string        `json:"brand"`
	Model          string        `json:"model"`
	Year           int32         `json:"year"`
	Color          string        `json:"color"`
	DailyRateCents int64         `json:"daily_rate_cents"`
	Status         VehicleStatus `json:"status"`
	OwnerID        *int32        `json:"owner_id,omitempty"`
	OwnerType      OwnerType     `json:"owner_type"`
	CreatedOn      string        `json:"created_on"`
	UpdatedOn      string        `json:"updated_on"`
}
