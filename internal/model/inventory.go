package model

// InventoryEntry is the per (room, calendar date) availability counter.
// AvailableCount never goes below zero: it is decremented only when a
// booking is confirmed for that night and incremented only when such a
// booking is cancelled.  Price is the nightly price snapshot locked in
// when the inventory row was seeded.
type InventoryEntry struct {
	ID             uint64  `json:"inventory_id"`    // room_inventory.inventory_id
	RoomID         uint64  `json:"room_id"`         // room_inventory.room_id
	Date           Date    `json:"date"`            // room_inventory.date (date only, UTC)
	AvailableCount int     `json:"available_count"` // room_inventory.available_count
	Price          float64 `json:"price"`           // room_inventory.price
}
