package types

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExValues is an insertion-ordered container for HTTP request parameters.
//
// Design notes:
//
//   - order keeps the first-seen order of keys.
//   - EncodeForm preserves key order and value order, producing the exact
//     key=value&... string that gets signed and sent; signatures are
//     order-sensitive, so callers add parameters in the order the
//     exchange expects.
//   - Values are stringified once, at Set time.
type ExValues struct {
	order  []string
	values map[string][]string
}

// NewExValues creates a new ExValues instance.
func NewExValues() *ExValues {
	return &ExValues{
		order:  make([]string, 0),
		values: make(map[string][]string),
	}
}

// Set sets a single value for the given key, replacing any previous ones.
// If the key appears for the first time, its position is recorded in order.
func (v *ExValues) Set(key string, value interface{}) *ExValues {
	if _, exists := v.values[key]; !exists {
		v.order = append(v.order, key)
	}
	v.values[key] = []string{stringify(value)}
	return v
}

// Add appends a value for the given key.
// The key's order is preserved based on its first appearance.
func (v *ExValues) Add(key string, value interface{}) *ExValues {
	if _, exists := v.values[key]; !exists {
		v.order = append(v.order, key)
	}
	v.values[key] = append(v.values[key], stringify(value))
	return v
}

// Has reports whether the given key exists.
func (v *ExValues) Has(key string) bool {
	_, ok := v.values[key]
	return ok
}

// Get returns the first value associated with the given key.
func (v *ExValues) Get(key string) string {
	if vs := v.values[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Len returns the number of distinct keys.
func (v *ExValues) Len() int {
	return len(v.order)
}

// EncodeForm encodes parameters as key=value&... preserving insertion
// order. Values are URL-escaped; this is the canonical form used both for
// signing and as the request query string / form body.
func (v *ExValues) EncodeForm() string {
	if len(v.order) == 0 {
		return ""
	}

	var buf strings.Builder
	for _, key := range v.order {
		for _, value := range v.values[key] {
			if buf.Len() > 0 {
				buf.WriteByte('&')
			}
			buf.WriteString(url.QueryEscape(key))
			buf.WriteByte('=')
			buf.WriteString(url.QueryEscape(value))
		}
	}
	return buf.String()
}

// stringify converts supported value types to their wire representation.
func stringify(value interface{}) string {
	switch val := value.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case decimal.Decimal:
		return val.String()
	case ExDecimal:
		return val.String()
	case time.Time:
		return strconv.FormatInt(val.UnixMilli(), 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}
