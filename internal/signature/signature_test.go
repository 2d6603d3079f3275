package signature

import (
	"net/url"
	"testing"
)

const testSecret = "hush"

func signedParams(extra map[string][]string) url.Values {
	params := url.Values{
		"shop":      {"demo.myshopify.com"},
		"timestamp": {"1700000000"},
	}
	for k, v := range extra {
		params[k] = v
	}
	params.Set(ParamField, Compute(params, testSecret))
	return params
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name   string
		params func() url.Values
		secret string
		want   bool
	}{
		{
			name:   "valid signature",
			params: func() url.Values { return signedParams(nil) },
			secret: testSecret,
			want:   true,
		},
		{
			name: "valid with duplicate keys",
			params: func() url.Values {
				return signedParams(map[string][]string{"tag": {"a", "b"}})
			},
			secret: testSecret,
			want:   true,
		},
		{
			name: "legacy hmac field",
			params: func() url.Values {
				params := url.Values{"shop": {"demo.myshopify.com"}}
				params.Set(LegacyParamField, Compute(params, testSecret))
				return params
			},
			secret: testSecret,
			want:   true,
		},
		{
			name: "single character mutation invalidates",
			params: func() url.Values {
				params := signedParams(nil)
				params.Set("shop", "demo.myshopify.con")
				return params
			},
			secret: testSecret,
			want:   false,
		},
		{
			name: "added parameter invalidates",
			params: func() url.Values {
				params := signedParams(nil)
				params.Set("extra", "1")
				return params
			},
			secret: testSecret,
			want:   false,
		},
		{
			name:   "wrong secret",
			params: func() url.Values { return signedParams(nil) },
			secret: "other",
			want:   false,
		},
		{
			name: "missing signature",
			params: func() url.Values {
				return url.Values{"shop": {"demo.myshopify.com"}}
			},
			secret: testSecret,
			want:   false,
		},
		{
			name: "non-hex signature",
			params: func() url.Values {
				params := url.Values{"shop": {"demo.myshopify.com"}}
				params.Set(ParamField, "not-hex-at-all")
				return params
			},
			secret: testSecret,
			want:   false,
		},
		{
			name:   "empty parameter set",
			params: func() url.Values { return url.Values{} },
			secret: testSecret,
			want:   false,
		},
		{
			name:   "empty secret",
			params: func() url.Values { return signedParams(nil) },
			secret: "",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Verify(tt.params(), tt.secret); got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeExcludesSignatureFields(t *testing.T) {
	base := url.Values{"shop": {"demo.myshopify.com"}, "path_prefix": {"/apps/community"}}
	withSig := url.Values{
		"shop":           {"demo.myshopify.com"},
		"path_prefix":    {"/apps/community"},
		ParamField:       {"deadbeef"},
		LegacyParamField: {"deadbeef"},
	}
	if Compute(base, testSecret) != Compute(withSig, testSecret) {
		t.Error("signature fields must not be part of the canonical message")
	}
}

func TestComputeSortsKeys(t *testing.T) {
	a := url.Values{"b": {"2"}, "a": {"1"}, "c": {"3"}}
	b := url.Values{"c": {"3"}, "a": {"1"}, "b": {"2"}}
	if Compute(a, testSecret) != Compute(b, testSecret) {
		t.Error("digest must be independent of parameter order")
	}
}

func TestVerifyUppercaseHexAccepted(t *testing.T) {
	params := url.Values{"shop": {"demo.myshopify.com"}}
	sig := Compute(params, testSecret)
	params.Set(ParamField, sig)
	if !Verify(params, testSecret) {
		t.Fatal("lowercase signature rejected")
	}

	upper := url.Values{"shop": {"demo.myshopify.com"}}
	upper.Set(ParamField, toUpper(sig))
	if !Verify(upper, testSecret) {
		t.Error("uppercase hex signature rejected")
	}
}

func toUpper(s string) string {
	out := []byte(s)
	for i, ch := range out {
		if ch >= 'a' && ch <= 'f' {
			out[i] = ch - 32
		}
	}
	return string(out)
}
