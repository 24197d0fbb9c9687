package session

// Item is a cosmetic shop entry. Purchases only move shells and write
// a history line; nothing here changes gameplay.
type Item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

var shopItems = []Item{
	{ID: "skin-gold", Name: "Gold Shell Skin", Price: 200},
	{ID: "skin-silver", Name: "Silver Shell Skin", Price: 120},
	{ID: "name-change", Name: "Change Display Name", Price: 500},
}

// Items lists the catalog in display order.
func (s *Service) Items() []Item {
	return append([]Item(nil), shopItems...)
}
