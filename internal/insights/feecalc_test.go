package insights

import "testing"

func TestSimulateFeeEndToEnd(t *testing.T) {
	got := SimulateFee(SimulateFeeInputs{
		BuyPrice:           "50",
		SellPrice:          "100",
		ShippingCost:       "5",
		PlatformFeePercent: "15",
	})

	if got.PlatformFee != 15.0 {
		t.Fatalf("expected fee 15 got %v", got.PlatformFee)
	}
	if got.NetProfit != 30.0 {
		t.Fatalf("expected net 30 got %v", got.NetProfit)
	}
	if got.MarginPercent != 30.0 {
		t.Fatalf("expected margin 30%% got %v", got.MarginPercent)
	}
}

func TestSimulateFeeCoercesBadInputToZero(t *testing.T) {
	got := SimulateFee(SimulateFeeInputs{
		BuyPrice:           "abc",
		SellPrice:          "100",
		ShippingCost:       "",
		PlatformFeePercent: "10",
	})

	if got.BuyPrice != 0 || got.ShippingCost != 0 {
		t.Fatalf("bad input must coerce to zero, got %+v", got)
	}
	if got.NetProfit != 90 {
		t.Fatalf("expected net 90 got %v", got.NetProfit)
	}
}

func TestSimulateFeeZeroSellPrice(t *testing.T) {
	got := SimulateFee(SimulateFeeInputs{BuyPrice: "10"})

	if got.MarginPercent != 0 {
		t.Fatalf("zero sell price must give zero margin, got %v", got.MarginPercent)
	}
	if got.NetProfit != -10 {
		t.Fatalf("expected net -10 got %v", got.NetProfit)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"19.99", 19.99},
		{"-3", -3},
		{"", 0},
		{"12x", 0},
		{"NaN+", 0},
	}
	for _, c := range cases {
		if got := ParseAmount(c.raw); got != c.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}
