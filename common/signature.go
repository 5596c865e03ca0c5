package common

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// SignHMAC256 HMAC-SHA256签名（hex编码）
func SignHMAC256(message, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// SignHMAC256Upper HMAC-SHA256签名（大写hex编码，用于 Livecoin）
func SignHMAC256Upper(message, secret string) string {
	return strings.ToUpper(SignHMAC256(message, secret))
}

// GetTimestamp 获取时间戳（毫秒）
func GetTimestamp() int64 {
	return time.Now().UnixMilli()
}

// GetTimestampSeconds 获取时间戳（秒）
func GetTimestampSeconds() int64 {
	return time.Now().Unix()
}
