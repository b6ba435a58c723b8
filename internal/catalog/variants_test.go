package catalog

import "testing"

func TestParseLabels(t *testing.T) {
	labels := ParseLabels(" S, M ,,L ,")
	if len(labels) != 3 {
		t.Fatalf("expected 3 labels got %d", len(labels))
	}
	for i, want := range []string{"S", "M", "L"} {
		if labels[i] != want {
			t.Fatalf("label %d: expected %q got %q", i, want, labels[i])
		}
	}
}

func TestGenerateVariantsCartesian(t *testing.T) {
	variants, total := GenerateVariants([]string{"S", "M"}, []string{"Red", "Blue"}, nil)
	if len(variants) != 4 {
		t.Fatalf("expected 4 variants got %d", len(variants))
	}
	// Size-major ordering.
	want := []Variant{
		{Size: "S", Color: "Red"},
		{Size: "S", Color: "Blue"},
		{Size: "M", Color: "Red"},
		{Size: "M", Color: "Blue"},
	}
	for i := range want {
		if variants[i] != want[i] {
			t.Fatalf("variant %d: expected %+v got %+v", i, want[i], variants[i])
		}
	}
	if total != 0 {
		t.Fatalf("expected zero total stock got %d", total)
	}
}

func TestGenerateVariantsPreservesOverlap(t *testing.T) {
	existing := []Variant{
		{Size: "S", Color: "Red", Stock: 5},
		{Size: "M", Color: "Red", Stock: 3},
	}
	variants, total := GenerateVariants([]string{"S", "M", "L"}, []string{"Red"}, existing)
	if len(variants) != 3 {
		t.Fatalf("expected 3 variants got %d", len(variants))
	}
	if variants[0].Stock != 5 || variants[1].Stock != 3 || variants[2].Stock != 0 {
		t.Fatalf("stock not preserved: %+v", variants)
	}
	if variants[2].Size != "L" || variants[2].Color != "Red" {
		t.Fatalf("unexpected new pair %+v", variants[2])
	}
	if total != 8 {
		t.Fatalf("expected total 8 got %d", total)
	}
}

func TestGenerateVariantsDropsStalePairs(t *testing.T) {
	existing := []Variant{
		{Size: "S", Color: "Red", Stock: 5},
		{Size: "S", Color: "Green", Stock: 7},
	}
	variants, total := GenerateVariants([]string{"S"}, []string{"Red"}, existing)
	if len(variants) != 1 {
		t.Fatalf("expected 1 variant got %d", len(variants))
	}
	if variants[0].Stock != 5 {
		t.Fatalf("expected surviving stock 5 got %d", variants[0].Stock)
	}
	if total != 5 {
		t.Fatalf("expected total 5 got %d", total)
	}
}

func TestGenerateVariantsSingleAxis(t *testing.T) {
	existing := []Variant{{Size: "M", Color: AxisNone, Stock: 2}}
	variants, total := GenerateVariants([]string{"S", "M"}, nil, existing)
	if len(variants) != 2 {
		t.Fatalf("expected 2 variants got %d", len(variants))
	}
	if variants[0].Color != AxisNone || variants[1].Color != AxisNone {
		t.Fatalf("expected sentinel color, got %+v", variants)
	}
	if variants[1].Stock != 2 || total != 2 {
		t.Fatalf("expected existing (M, N/A) stock carried, got %+v total %d", variants, total)
	}

	variants, total = GenerateVariants(nil, []string{"Red"}, nil)
	if len(variants) != 1 || variants[0].Size != AxisNone {
		t.Fatalf("expected sentinel size, got %+v", variants)
	}
	if total != 0 {
		t.Fatalf("expected zero total got %d", total)
	}
}

func TestGenerateVariantsBothAxesEmpty(t *testing.T) {
	existing := []Variant{{Size: "S", Color: "Red", Stock: 4}}
	variants, total := GenerateVariants(nil, nil, existing)
	if len(variants) != 1 || variants[0] != existing[0] {
		t.Fatalf("expected no-op, got %+v", variants)
	}
	if total != 4 {
		t.Fatalf("expected total 4 got %d", total)
	}
}

func TestSetVariantStock(t *testing.T) {
	variants := []Variant{
		{Size: "S", Color: "Red", Stock: 5},
		{Size: "M", Color: "Red", Stock: 3},
	}

	total := SetVariantStock(variants, 1, "10")
	if variants[1].Stock != 10 {
		t.Fatalf("expected stock 10 got %d", variants[1].Stock)
	}
	if total != 15 {
		t.Fatalf("expected total 15 got %d", total)
	}

	// Malformed and negative input both coerce to zero.
	total = SetVariantStock(variants, 1, "abc")
	if variants[1].Stock != 0 || total != 5 {
		t.Fatalf("expected coercion to zero, stock %d total %d", variants[1].Stock, total)
	}
	total = SetVariantStock(variants, 0, "-3")
	if variants[0].Stock != 0 || total != 0 {
		t.Fatalf("expected negative clamped to zero, stock %d total %d", variants[0].Stock, total)
	}
}

func TestSetVariantStockOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-range index")
		}
	}()
	SetVariantStock([]Variant{{Size: "S", Color: "Red"}}, 3, "1")
}

func TestStockInvariantHolds(t *testing.T) {
	existing := []Variant{
		{Size: "S", Color: "Red", Stock: 2},
		{Size: "M", Color: "Blue", Stock: 9},
	}
	variants, total := GenerateVariants([]string{"S", "M"}, []string{"Red", "Blue"}, existing)
	if total != TotalStock(variants) {
		t.Fatalf("aggregate %d diverges from variant sum %d", total, TotalStock(variants))
	}
	total = SetVariantStock(variants, 2, "4")
	if total != TotalStock(variants) {
		t.Fatalf("aggregate %d diverges from variant sum %d after set", total, TotalStock(variants))
	}
}
