package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// Query parameter names carrying the proxy signature. "hmac" is the
// legacy alias; both are excluded from the canonical message.
const (
	ParamField       = "signature"
	LegacyParamField = "hmac"
)

// Verify checks that the query parameters were forwarded unmodified by
// the upstream proxy. The canonical message is every parameter except
// the signature fields, sorted by key, concatenated as key=value with
// no separator, multi-valued keys joined by comma. It never returns an
// error: anything malformed is simply not a valid signature.
func Verify(params url.Values, secret string) bool {
	if secret == "" {
		return false
	}

	provided := params.Get(ParamField)
	if provided == "" {
		provided = params.Get(LegacyParamField)
	}
	if provided == "" {
		return false
	}

	expected := Compute(params, secret)

	// Constant-time compare of the hex strings.
	return hmac.Equal([]byte(strings.ToLower(provided)), []byte(expected))
}

// Compute returns the lowercase hex HMAC-SHA256 digest of the canonical
// message for params. Exported so tests and the install flow can sign
// requests the same way the proxy does.
func Compute(params url.Values, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == ParamField || k == LegacyParamField {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var msg strings.Builder
	for _, k := range keys {
		msg.WriteString(k)
		msg.WriteString("=")
		msg.WriteString(strings.Join(params[k], ","))
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(msg.String()))
	return hex.EncodeToString(mac.Sum(nil))
}
