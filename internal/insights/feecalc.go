package insights

import "strconv"

// SimulateFeeInputs carries the calculator's free-form fields exactly
// as the user typed them.
type SimulateFeeInputs struct {
	BuyPrice           string `json:"buy_price"`
	SellPrice          string `json:"sell_price"`
	ShippingCost       string `json:"shipping_cost"`
	PlatformFeePercent string `json:"platform_fee_percent"`
}

// FeeSimulation is a what-if margin breakdown for a single unit.
type FeeSimulation struct {
	BuyPrice      float64 `json:"buy_price"`
	SellPrice     float64 `json:"sell_price"`
	ShippingCost  float64 `json:"shipping_cost"`
	PlatformFee   float64 `json:"platform_fee"`
	NetProfit     float64 `json:"net_profit"`
	MarginPercent float64 `json:"margin_percent"`
}

// ParseAmount reads a free-form money field. Anything that does not
// parse as a number counts as zero; the calculator never rejects input.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// SimulateFee computes per-unit economics from raw calculator input.
func SimulateFee(in SimulateFeeInputs) FeeSimulation {
	sim := FeeSimulation{
		BuyPrice:     ParseAmount(in.BuyPrice),
		SellPrice:    ParseAmount(in.SellPrice),
		ShippingCost: ParseAmount(in.ShippingCost),
	}
	feePercent := ParseAmount(in.PlatformFeePercent)
	sim.PlatformFee = feePercent / 100 * sim.SellPrice
	sim.NetProfit = sim.SellPrice - sim.BuyPrice - sim.PlatformFee - sim.ShippingCost
	if sim.SellPrice > 0 {
		sim.MarginPercent = sim.NetProfit / sim.SellPrice * 100
	}
	return sim
}
