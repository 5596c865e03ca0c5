package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// 时间戳单位是各端点的静态属性（文档约定），不从数值长度猜测。
// 每个 wire 结构体按端点文档选择 ExTimeSeconds 或 ExTimeMilli。

// ExTimeSeconds 秒级 Unix 时间戳
type ExTimeSeconds struct {
	time.Time
}

// UnmarshalJSON 自定义 JSON 反序列化，按秒解析，兼容字符串和数字
func (t *ExTimeSeconds) UnmarshalJSON(b []byte) error {
	ts, ok, err := parseEpoch(b)
	if err != nil {
		return err
	}
	if !ok {
		t.Time = time.Time{}
		return nil
	}
	t.Time = time.Unix(ts, 0).UTC()
	return nil
}

// MarshalJSON 序列化为秒级时间戳
func (t ExTimeSeconds) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}

// ExTimeMilli 毫秒级 Unix 时间戳
type ExTimeMilli struct {
	time.Time
}

// UnmarshalJSON 自定义 JSON 反序列化，按毫秒解析，兼容字符串和数字
func (t *ExTimeMilli) UnmarshalJSON(b []byte) error {
	ts, ok, err := parseEpoch(b)
	if err != nil {
		return err
	}
	if !ok {
		t.Time = time.Time{}
		return nil
	}
	t.Time = time.UnixMilli(ts).UTC()
	return nil
}

// MarshalJSON 序列化为毫秒级时间戳
func (t ExTimeMilli) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}

// parseEpoch 解析整数时间戳，空值返回 ok=false
func parseEpoch(b []byte) (int64, bool, error) {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		return 0, false, nil
	}

	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// 部分交易所返回 1409935047.123 这类带小数的时间戳
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, false, fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
		ts = int64(f)
	}
	return ts, true, nil
}
