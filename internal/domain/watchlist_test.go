package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestWatchlistEntry_ChangeString(t *testing.T) {
	cases := map[string]string{
		"2.34":  "+2.34%",
		"0":     "+0.00%",
		"-0.89": "-0.89%",
		"1.5":   "+1.50%",
	}
	for in, want := range cases {
		e := WatchlistEntry{ChangePct: decimal.RequireFromString(in)}
		if got := e.ChangeString(); got != want {
			t.Errorf("ChangeString(%s) got=%s want=%s", in, got, want)
		}
	}
}

func TestDirectionOf(t *testing.T) {
	if DirectionOf(decimal.Zero) != DirectionUp {
		t.Fatalf("0 应视为上涨")
	}
	if DirectionOf(decimal.RequireFromString("-0.01")) != DirectionDown {
		t.Fatalf("负数应为下跌")
	}
	if DirectionUp.Glyph() != "▲" || DirectionDown.Glyph() != "▼" {
		t.Fatalf("箭头不正确")
	}
}
