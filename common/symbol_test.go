package common

import "testing"

func TestNormalize_SeparatorEquivalence(t *testing.T) {
	want := Normalize("LTC/BTC")

	for _, raw := range []string{"ltc_btc", "LTC-BTC", "ltc-BTC", "LTC_btc"} {
		if got := Normalize(raw); got != want {
			t.Fatalf("Normalize(%q)=%q, want %q", raw, got.String(), want.String())
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, raw := range []string{"LTC/BTC", "ltc_btc", "BTC", "", "a_b_c"} {
		once := Normalize(raw)
		twice := Normalize(once.String())
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", raw, once.String(), twice.String())
		}
	}
}

func TestNormalize_Total(t *testing.T) {
	// 无法识别的格式原样透传为单 token，不报错不崩溃
	for _, raw := range []string{"", "BTC", "a/b/c", "///", "  "} {
		_ = Normalize(raw)
	}
}

func TestSymbol_Legs(t *testing.T) {
	market, base, ok := Normalize("ltc_btc").Legs()
	if !ok || market != "LTC" || base != "BTC" {
		t.Fatalf("Legs()=(%q,%q,%v), want (LTC,BTC,true)", market, base, ok)
	}

	// 缺腿的交易对不允许崩溃，由调用方按映射缺陷降级
	for _, raw := range []string{"BTC", "", "a/b/c", "/BTC", "LTC/"} {
		if _, _, ok := Normalize(raw).Legs(); ok {
			t.Fatalf("Legs() for %q should not be ok", raw)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join("ltc", "btc").String(); got != "LTC/BTC" {
		t.Fatalf("Join(ltc,btc)=%q, want LTC/BTC", got)
	}
}
