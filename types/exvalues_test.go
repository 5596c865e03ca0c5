package types

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestExValues_EncodeForm_PreservesInsertionOrder(t *testing.T) {
	v := NewExValues()

	v.Set("currencyPair", "LTC/BTC")
	v.Set("price", decimal.RequireFromString("0.008"))
	v.Set("quantity", 2)

	// key order should be preserved based on first appearance
	if got := v.EncodeForm(); got != "currencyPair=LTC%2FBTC&price=0.008&quantity=2" {
		t.Fatalf("EncodeForm()=%q", got)
	}
}

func TestExValues_Set_ReplacesButKeepsPosition(t *testing.T) {
	v := NewExValues()
	v.Set("a", 1)
	v.Set("b", 2)
	v.Set("a", 3)

	if got := v.EncodeForm(); got != "a=3&b=2" {
		t.Fatalf("EncodeForm()=%q, want %q", got, "a=3&b=2")
	}
}

func TestExValues_Add_AppendsValues(t *testing.T) {
	v := NewExValues()
	v.Add("k", 1)
	v.Add("k", 2)
	v.Add("k", 3)

	if got := v.EncodeForm(); got != "k=1&k=2&k=3" {
		t.Fatalf("EncodeForm()=%q, want %q", got, "k=1&k=2&k=3")
	}
}

func TestExValues_Stringify(t *testing.T) {
	ts := time.Date(2025, 12, 19, 1, 2, 3, 0, time.UTC)

	v := NewExValues()
	v.Set("i", int64(42))
	v.Set("f", 0.5)
	v.Set("b", true)
	v.Set("t", ts)

	if v.Get("i") != "42" {
		t.Fatalf("Get(i)=%q, want 42", v.Get("i"))
	}
	if v.Get("f") != "0.5" {
		t.Fatalf("Get(f)=%q, want 0.5", v.Get("f"))
	}
	if v.Get("b") != "true" {
		t.Fatalf("Get(b)=%q, want true", v.Get("b"))
	}
	if v.Get("t") != "1766106123000" {
		t.Fatalf("Get(t)=%q, want 1766106123000", v.Get("t"))
	}
	if !v.Has("i") || v.Has("missing") {
		t.Fatal("Has() misbehaved")
	}
	if v.Len() != 4 {
		t.Fatalf("Len()=%d, want 4", v.Len())
	}
}

func TestExValues_EmptyEncodesEmpty(t *testing.T) {
	if got := NewExValues().EncodeForm(); got != "" {
		t.Fatalf("EncodeForm()=%q, want empty", got)
	}
}
