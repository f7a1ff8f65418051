package domain

// DashboardReport aggregates counts for the agent dashboard.
type DashboardReport struct {
	OrdersByStatus    map[OrderStatus]int32    `json:"orders_by_status"`
	VehiclesByStatus  map[VehicleStatus]int32  `json:"vehicles_by_status"`
	ContractsByStatus map[ContractStatus]int32 `json:"contracts_by_status"`
	TotalClients      int32                    `json:"total_clients"`
	ActiveClients     int32                    `json:"active_clients"`
}
