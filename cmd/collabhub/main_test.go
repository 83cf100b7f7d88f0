package main

import "testing"

func TestParsePair(t *testing.T) {
	from, to, err := parsePair(" 2, 0 ")
	if err != nil || from != 2 || to != 0 {
		t.Fatalf("pair: %d %d %v", from, to, err)
	}
	for _, bad := range []string{"", "1", "a,2", "1,b", "1,2,3"} {
		if _, _, err := parsePair(bad); err == nil {
			t.Fatalf("%q must fail", bad)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" 1, ,5,")
	if len(got) != 2 || got[0] != "1" || got[1] != "5" {
		t.Fatalf("split: %v", got)
	}
}

func TestSizeTier(t *testing.T) {
	tier, ok := sizeTier("MICRO")
	if !ok || tier.Min != 10_000 || tier.Max == nil || *tier.Max != 100_000 {
		t.Fatalf("micro: %+v %v", tier, ok)
	}
	if tier, ok := sizeTier("mega"); !ok || tier.Max != nil {
		t.Fatalf("mega: %+v %v", tier, ok)
	}
	if _, ok := sizeTier("giga"); ok {
		t.Fatal("unknown preset matched")
	}
}

func TestStatusParsers(t *testing.T) {
	if v, err := parseContent("not live yet"); err != nil || v != "Not Live Yet" {
		t.Fatalf("content: %q %v", v, err)
	}
	if v, err := parsePayment("fulfilled"); err != nil || v != "Fulfilled" {
		t.Fatalf("payment: %q %v", v, err)
	}
	if _, err := parsePayment("later"); err == nil {
		t.Fatal("unknown payment status accepted")
	}
}

func TestOptionalFlags(t *testing.T) {
	if optInt(-1) != nil || optFloat(-1) != nil {
		t.Fatal("negative values mean unset")
	}
	if v := optInt(0); v == nil || *v != 0 {
		t.Fatal("zero is a real bound")
	}
}
