package livecoin

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openexch/cexlink/types"
)

var upperHex = regexp.MustCompile(`^[0-9A-F]{64}$`)

func TestSigner_Deterministic(t *testing.T) {
	signer := NewSigner("secret")

	params := types.NewExValues().
		Set("currencyPair", "LTC/BTC").
		Set("quantity", "2")

	payload1, sig1 := signer.SignParams(params)
	payload2, sig2 := signer.SignParams(params)

	require.Equal(t, payload1, payload2)
	require.Equal(t, sig1, sig2)
	require.Regexp(t, upperHex, sig1, "signature must be uppercase hex")
}

func TestSigner_SensitiveToPayload(t *testing.T) {
	signer := NewSigner("secret")

	base := signer.Sign("currencyPair=LTC%2FBTC&quantity=2")

	t.Run("changed value", func(t *testing.T) {
		require.NotEqual(t, base, signer.Sign("currencyPair=LTC%2FBTC&quantity=3"))
	})

	t.Run("changed key", func(t *testing.T) {
		require.NotEqual(t, base, signer.Sign("currencyPair=LTC%2FBTC&amount=2"))
	})

	t.Run("changed order", func(t *testing.T) {
		// 签名对参数顺序敏感
		require.NotEqual(t, base, signer.Sign("quantity=2&currencyPair=LTC%2FBTC"))
	})
}

func TestSigner_SensitiveToSecret(t *testing.T) {
	payload := "currencyPair=LTC%2FBTC&quantity=2"
	require.NotEqual(t, NewSigner("secret").Sign(payload), NewSigner("secret2").Sign(payload))
}

func TestSigner_EmptyPayload(t *testing.T) {
	// 无参数的私有端点对空串签名
	sig := NewSigner("secret").Sign("")
	require.Regexp(t, upperHex, sig)
}
