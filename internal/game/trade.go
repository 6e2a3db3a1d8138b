package game

import (
	"fmt"
	"math"
)

// SellItems never rejects: counts beyond stock leave negative inventory.
func SellItems(s GameState, items map[string]int) (GameState, Result) {
	next := s.Clone()
	profit := 0
	for id, count := range items {
		item, _ := ItemByID(id)
		profit += item.Price * count
		next.Inventory[id] -= count
	}
	next.Money += profit
	return next, succeeded("Merchant trade concluded. Profit: $%d.", profit)
}

func BuyShopItem(s GameState, itemID string, count int) (GameState, Result) {
	item, ok := ItemByID(itemID)
	if !ok || !item.Purchasable() {
		return s, invalidTarget("The store does not stock %q.", itemID)
	}
	if count < 1 {
		return s, invalidTarget("Cannot buy %d of %s.", count, item.Name)
	}
	if count > math.MaxInt/item.BuyPrice {
		return s, Result{
			Notice:  NoticeError,
			Message: "Insufficient Capital.",
			Err:     fmt.Errorf("%w: %d x %s exceeds any balance", ErrInsufficientFunds, count, item.Name),
		}
	}
	total := item.BuyPrice * count
	if s.Money < total {
		return s, lacksFunds(total, s.Money)
	}

	next := s.Clone()
	next.Money -= total
	next.Inventory[itemID] += count
	return next, succeeded("Supplies procured: %d x %s.", count, item.Name)
}
