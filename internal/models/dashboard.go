package models

const (
	DashboardBookingLimit = 5
	RecentContactLimit    = 5
)

// Dashboard is the aggregated workspace overview. The three lists are read
// independently and are not a consistent snapshot.
type Dashboard struct {
	TodayBookings  []*Booking       `json:"todayBookings"`
	LowStockItems  []*InventoryItem `json:"lowStockItems"`
	RecentContacts []*Contact       `json:"recentContacts"`
}
