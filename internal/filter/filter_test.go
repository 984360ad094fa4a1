package filter

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestDecomposeTransformer(t *testing.T) {
	got, _, err := transform.String(Decompose(), "한글")
	require.NoError(t, err)
	assert.Equal(t, "한글", got)
}

func TestDecomposePassthrough(t *testing.T) {
	for _, s := range []string{"", "abc 123", "ㄱㄲㄴ", "汉語"} {
		got, _, err := transform.String(Decompose(), s)
		require.NoError(t, err)
		assert.Equal(t, s, got, "non-Hangul text must be a fixed point")
	}
}

func TestToHCJTransformer(t *testing.T) {
	got, _, err := transform.String(ToHCJ(), "한 glyph ᇹ")
	require.NoError(t, err)
	assert.Equal(t, "ㅎㅏㄴ glyph ㆆ", got)
}

func TestComposeTransformer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ㅎㅏㄴㄱㅡㄹ", "한글"},
		{"ㄱㅏㅂㅅ", "값"},
		{"ㅈㅏㅁㅗ=字母", "자모=字母"},
		{"plain text", "plain text"},
	}
	for _, tc := range tests {
		got, _, err := transform.String(Compose(), tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "compose(%q)", tc.in)
	}
}

func TestComposeTransformerIsResettable(t *testing.T) {
	tr := Compose()
	got, _, err := transform.String(tr, "ㅎㅏ")
	require.NoError(t, err)
	require.Equal(t, "하", got)

	// transform.String resets before use; pending state must not leak.
	got, _, err = transform.String(tr, "ㄴㅏ")
	require.NoError(t, err)
	assert.Equal(t, "나", got)
}

func TestDecomposeComposeChainIsIdentity(t *testing.T) {
	const text = "다람쥐 헌 쳇바퀴에 타고파! Pack my box."
	got, _, err := transform.String(transform.Chain(Decompose(), Compose()), text)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestDecomposeThroughReader(t *testing.T) {
	r := transform.NewReader(strings.NewReader(strings.Repeat("한", 1000)), Decompose())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("한", 1000), string(out))
}

func TestInvalidBytesPassThrough(t *testing.T) {
	in := "한\xff글"
	got, _, err := transform.String(Decompose(), in)
	require.NoError(t, err)
	assert.Equal(t, "한\xff글", got)
}
