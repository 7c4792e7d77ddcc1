package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestWarehouseLayout(t *testing.T) {
	t.Run("no layout", func(t *testing.T) {
		w := &Warehouse{ID: 1}
		grid, err := w.Layout()
		if err != nil || grid != nil {
			t.Fatalf("expected nil grid and no error, got %v %v", grid, err)
		}
	})

	t.Run("grid", func(t *testing.T) {
		raw := "[[0,1,2],[3,4,0]]"
		w := &Warehouse{ID: 1, LayoutConfig: &raw}
		grid, err := w.Layout()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(grid) != 2 || grid[0][1] != CellShelf || grid[1][1] != CellWall {
			t.Fatalf("unexpected grid %v", grid)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		raw := `{"rows":2}`
		w := &Warehouse{ID: 7, LayoutConfig: &raw}
		if _, err := w.Layout(); err == nil {
			t.Fatalf("expected an error for a non-grid layout")
		}
	})
}

func TestAuthStateString(t *testing.T) {
	cases := map[AuthState]string{
		StateAnonymous:      "anonymous",
		StateAuthenticating: "authenticating",
		StateAuthenticated:  "authenticated",
		AuthState(42):       "anonymous",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fatalf("AuthState(%d).String() = %q, want %q", int(state), got, want)
		}
	}
}

func TestMoneyEncodesAsNumber(t *testing.T) {
	price := MustParseMoney("12.50")
	raw, err := json.Marshal(InventoryUpdate{UnitPrice: &price})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"unit_price":12.5}` {
		t.Fatalf("unexpected encoding %s", raw)
	}

	// Plain decimals keep the library default.
	raw, err = json.Marshal(decimal.RequireFromString("12.50"))
	if err != nil {
		t.Fatalf("marshal decimal: %v", err)
	}
	if string(raw) != `"12.5"` {
		t.Fatalf("expected quoted decimal, got %s", raw)
	}
}

func TestMoneyDecodesNumbersAndStrings(t *testing.T) {
	cases := map[string]string{
		`{"total_amount":199.98}`:   "199.98",
		`{"total_amount":"199.98"}`: "199.98",
		`{"total_amount":0}`:        "0",
	}
	for in, want := range cases {
		var o Order
		if err := json.Unmarshal([]byte(in), &o); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if !o.TotalAmount.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("%s: expected %s, got %s", in, want, o.TotalAmount)
		}
	}

	var item InventoryItem
	if err := json.Unmarshal([]byte(`{"unit_price":null}`), &item); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if item.UnitPrice != nil {
		t.Fatalf("expected nil unit price, got %s", item.UnitPrice)
	}
}
