package model

import "testing"

func TestFormatCount(t *testing.T) {
	cases := map[int]string{
		999:       "999",
		1_000:     "1K",
		750_000:   "750K",
		1_200_000: "1.2M",
		3_100_000: "3.1M",
	}
	for in, want := range cases {
		if got := FormatCount(in); got != want {
			t.Fatalf("FormatCount(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFilterLabels(t *testing.T) {
	min, max := 1_000_000, 2_500_000
	if got := SizeLabel(nil, nil); got != "Influencer size" {
		t.Fatalf("placeholder: %q", got)
	}
	if got := SizeLabel(&min, &max); got != "1.0M - 2.5M" {
		t.Fatalf("range: %q", got)
	}
	if got := ViewsLabel(nil, &max); got != "< 2.5M" {
		t.Fatalf("max only: %q", got)
	}
	eng := 4.5
	if got := EngagementLabel(&eng); got != "> 4.5%" {
		t.Fatalf("engagement: %q", got)
	}
	if got := GroupDigits(1_200_000); got != "1,200,000" {
		t.Fatalf("group digits: %q", got)
	}
}

func TestDetailPatchApplyLeavesOriginal(t *testing.T) {
	d := DefaultDetail()
	d.Budget = &Budget{Value: 100, Currency: "USD"}
	notes := "call booked"
	out := DetailPatch{Notes: &notes, Deliverables: []string{"https://example.com/v"}, ClearBudget: true}.Apply(d)
	if out.Notes != notes || len(out.Deliverables) != 1 || out.Budget != nil {
		t.Fatalf("patch not applied: %+v", out)
	}
	if d.Notes != "" || len(d.Deliverables) != 0 || d.Budget == nil {
		t.Fatalf("original mutated: %+v", d)
	}
	if out.ProgressStatus != DefaultProgressStatus {
		t.Fatalf("unprovided field changed: %q", out.ProgressStatus)
	}
}
