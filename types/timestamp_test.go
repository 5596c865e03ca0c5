package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestExTimeSeconds_Unmarshal(t *testing.T) {
	var ts ExTimeSeconds
	if err := json.Unmarshal([]byte(`1409935047`), &ts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if want := time.Unix(1409935047, 0).UTC(); !ts.Equal(want) {
		t.Fatalf("got %s, want %s", ts.Time, want)
	}

	// 字符串形式同样接受
	if err := json.Unmarshal([]byte(`"1409935047"`), &ts); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if want := time.Unix(1409935047, 0).UTC(); !ts.Equal(want) {
		t.Fatalf("got %s, want %s", ts.Time, want)
	}
}

func TestExTimeMilli_Unmarshal(t *testing.T) {
	var ts ExTimeMilli
	if err := json.Unmarshal([]byte(`1472205161286`), &ts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if want := time.UnixMilli(1472205161286).UTC(); !ts.Equal(want) {
		t.Fatalf("got %s, want %s", ts.Time, want)
	}
}

func TestExTime_UnitIsNotInferred(t *testing.T) {
	// 单位是端点的静态属性：同一个数值按声明的类型解析，
	// 不从位数猜测
	raw := []byte(`1409935047`)

	var sec ExTimeSeconds
	var ms ExTimeMilli
	if err := json.Unmarshal(raw, &sec); err != nil {
		t.Fatalf("unmarshal seconds: %v", err)
	}
	if err := json.Unmarshal(raw, &ms); err != nil {
		t.Fatalf("unmarshal milli: %v", err)
	}
	if sec.Equal(ms.Time) {
		t.Fatal("seconds and milli interpretation should differ")
	}
}

func TestExTime_NullAndEmpty(t *testing.T) {
	for _, raw := range []string{`null`, `""`} {
		var ts ExTimeSeconds
		if err := json.Unmarshal([]byte(raw), &ts); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if !ts.IsZero() {
			t.Fatalf("expected zero time for %s", raw)
		}
	}
}

func TestExTime_Invalid(t *testing.T) {
	var ts ExTimeSeconds
	if err := json.Unmarshal([]byte(`"not-a-timestamp"`), &ts); err == nil {
		t.Fatal("expected error for invalid timestamp")
	}
}
