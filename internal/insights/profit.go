package insights

import (
	"sort"

	"github.com/clothmarket/clothmarket/internal/catalog"
	"github.com/clothmarket/clothmarket/internal/orders"
)

const dayLayout = "2006-01-02"

// DefaultOpportunityLimit caps the arbitrage board when no limit is given.
const DefaultOpportunityLimit = 10

type DailySummary struct {
	Day         string  `json:"day"`
	Revenue     float64 `json:"revenue"`
	Profit      float64 `json:"profit"`
	OrdersCount int     `json:"orders_count"`
	ItemsSold   int     `json:"items_sold"`
}

type MonthlyEntry struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

type CategoryStat struct {
	Category  string  `json:"category"`
	Revenue   float64 `json:"revenue"`
	UnitsSold int     `json:"units_sold"`
}

type Opportunity struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	SellingPrice  float64 `json:"selling_price"`
	UnitCost      float64 `json:"unit_cost"`
	Margin        float64 `json:"margin"`
	MarginPercent float64 `json:"margin_percent"`
}

// Index keys products by ID for line-level cost lookups.
func Index(products []catalog.Product) map[string]catalog.Product {
	idx := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}

// OrderProfit is the order total minus the summed unit costs of its
// lines. A line whose product no longer exists carries zero cost, so
// its revenue counts as pure profit.
func OrderProfit(o orders.Order, idx map[string]catalog.Product) float64 {
	var cost float64
	for _, it := range o.Items {
		if p, ok := idx[it.ProductID]; ok {
			cost += p.UnitCost() * float64(it.Quantity)
		}
	}
	return o.TotalPrice - cost
}

// ComputeDailySummary aggregates orders created on the given calendar
// day. ItemsSold counts distinct order lines, not unit quantities.
func ComputeDailySummary(all []orders.Order, idx map[string]catalog.Product, day string) DailySummary {
	s := DailySummary{Day: day}
	for _, o := range all {
		if o.CreatedAt.UTC().Format(dayLayout) != day {
			continue
		}
		s.Revenue += o.TotalPrice
		s.Profit += OrderProfit(o, idx)
		s.OrdersCount++
		s.ItemsSold += len(o.Items)
	}
	return s
}

// ComputeMonthlyPnL buckets orders by calendar month, newest month
// first. Cost is derived as revenue minus attributed profit.
func ComputeMonthlyPnL(all []orders.Order, idx map[string]catalog.Product) []MonthlyEntry {
	byMonth := map[string]*MonthlyEntry{}
	for _, o := range all {
		month := o.CreatedAt.UTC().Format("2006-01")
		e, ok := byMonth[month]
		if !ok {
			e = &MonthlyEntry{Month: month}
			byMonth[month] = e
		}
		e.Revenue += o.TotalPrice
		e.Profit += OrderProfit(o, idx)
	}

	out := make([]MonthlyEntry, 0, len(byMonth))
	for _, e := range byMonth {
		e.Cost = e.Revenue - e.Profit
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out
}

// ComputeCategoryPerformance rolls order lines up to their product's
// category. Lines whose product is gone are skipped; a matched product
// without a category lands in the Uncategorized bucket. Sorted by
// revenue, highest first.
func ComputeCategoryPerformance(all []orders.Order, idx map[string]catalog.Product) []CategoryStat {
	byCategory := map[string]*CategoryStat{}
	for _, o := range all {
		for _, it := range o.Items {
			p, ok := idx[it.ProductID]
			if !ok {
				continue
			}
			category := p.Category
			if category == "" {
				category = "Uncategorized"
			}
			s, ok := byCategory[category]
			if !ok {
				s = &CategoryStat{Category: category}
				byCategory[category] = s
			}
			s.Revenue += it.Price * float64(it.Quantity)
			s.UnitsSold += it.Quantity
		}
	}

	out := make([]CategoryStat, 0, len(byCategory))
	for _, s := range byCategory {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out
}

// ComputeTopArbitrage ranks products by absolute per-unit margin at
// the base price; an active sale price is ignored. Margin percent is
// reported but never used for ordering.
func ComputeTopArbitrage(products []catalog.Product, limit int) []Opportunity {
	if limit <= 0 {
		limit = DefaultOpportunityLimit
	}

	out := make([]Opportunity, 0, len(products))
	for _, p := range products {
		price := p.Price
		cost := p.UnitCost()
		op := Opportunity{
			ProductID:    p.ID,
			Name:         p.Name,
			SellingPrice: price,
			UnitCost:     cost,
			Margin:       price - cost,
		}
		if price > 0 {
			op.MarginPercent = op.Margin / price * 100
		}
		out = append(out, op)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Margin > out[j].Margin })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
