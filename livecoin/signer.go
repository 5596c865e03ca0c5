package livecoin

import (
	"github.com/openexch/cexlink/common"
	"github.com/openexch/cexlink/types"
)

// Signer Livecoin 签名工具
type Signer struct {
	secretKey string
}

// NewSigner 创建签名工具
func NewSigner(secretKey string) *Signer {
	return &Signer{
		secretKey: secretKey,
	}
}

// Sign 对规范化参数串签名
//
// payload 为 key=value&... 形式的参数串（按调用方插入顺序编码，
// 签名对顺序敏感），签名为 HMAC-SHA256 的大写 hex。空参数串同样
// 参与签名（部分私有端点没有参数）。密钥不落日志、不回显。
func (s *Signer) Sign(payload string) string {
	return common.SignHMAC256Upper(payload, s.secretKey)
}

// SignParams 编码并签名请求参数
//
// 返回编码后的参数串和对应签名，参数串同时用作查询字符串或表单
// 请求体，保证签名覆盖的内容与实际发送的逐字节一致。
func (s *Signer) SignParams(params *types.ExValues) (payload, signature string) {
	payload = params.EncodeForm()
	return payload, s.Sign(payload)
}
