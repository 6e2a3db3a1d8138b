package game

import (
	"errors"
	"math"
	"testing"
)

func TestSellThenBuyRestoresMoney(t *testing.T) {
	s := testState()
	s.Money = 1000
	s.Inventory["BEEF"] = 4

	sold, res := SellItems(s, map[string]int{"BEEF": 4})
	if !res.OK() || sold.Money != 1200 {
		t.Fatalf("expected money 1200 after sale, got %d", sold.Money)
	}
	if sold.Inventory["BEEF"] != 0 {
		t.Fatalf("expected beef sold out")
	}

	bought, res := BuyShopItem(sold, "ENERGY_DRINK", 4)
	if !res.OK() {
		t.Fatalf("buy failed: %v", res.Err)
	}
	if bought.Money != s.Money {
		t.Fatalf("expected money restored to %d, got %d", s.Money, bought.Money)
	}
	if bought.Inventory["ENERGY_DRINK"] != 4 {
		t.Fatalf("expected 4 drinks")
	}
}

func TestSellItemsAllowsNegativeStock(t *testing.T) {
	s := testState()
	s.Money = 0
	next, _ := SellItems(s, map[string]int{"WOOL": 2, "UNLISTED": 3})
	if next.Inventory["WOOL"] != -2 {
		t.Fatalf("expected wool -2, got %d", next.Inventory["WOOL"])
	}
	if next.Money != 30 {
		t.Fatalf("expected unknown items priced at 0, money=%d", next.Money)
	}
}

func TestBuyShopItemRejections(t *testing.T) {
	s := testState()
	if _, res := BuyShopItem(s, "STEAK", 1); !errors.Is(res.Err, ErrInvalidTarget) {
		t.Fatalf("expected unstocked item rejected")
	}
	if _, res := BuyShopItem(s, "BASIC_FEED", 0); !errors.Is(res.Err, ErrInvalidTarget) {
		t.Fatalf("expected zero count rejected")
	}
	s.Money = 999
	next, res := BuyShopItem(s, "IRON_CLEAVER", 2)
	if !errors.Is(res.Err, ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", res.Err)
	}
	if next.Money != 999 || next.Inventory["IRON_CLEAVER"] != 0 {
		t.Fatalf("state changed on failure")
	}
}

func TestBuyShopItemHugeCountCannotWrapMoney(t *testing.T) {
	s := testState()
	s.Money = 100

	for _, count := range []int{math.MaxInt/500 + 1, math.MaxInt / 500, math.MaxInt} {
		next, res := BuyShopItem(s, "IRON_CLEAVER", count)
		if !errors.Is(res.Err, ErrInsufficientFunds) {
			t.Fatalf("count %d: expected insufficient funds, got %+v", count, res)
		}
		if next.Money != 100 || next.Inventory["IRON_CLEAVER"] != 0 {
			t.Fatalf("count %d: state changed: money=%d cleavers=%d", count, next.Money, next.Inventory["IRON_CLEAVER"])
		}
	}
}
