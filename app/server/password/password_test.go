package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	require.NotContains(t, digest, "secret123")

	match, err := Verify("secret123", digest)
	require.NoError(t, err)
	require.True(t, match)
}

func TestVerifyWrongPassword(t *testing.T) {
	digest, err := Hash("secret123")
	require.NoError(t, err)

	// 密码不符返回 false 而非错误
	match, err := Verify("secret124", digest)
	require.NoError(t, err)
	require.False(t, match)
}

func TestHashSaltFreshness(t *testing.T) {
	first, err := Hash("secret123")
	require.NoError(t, err)
	second, err := Hash("secret123")
	require.NoError(t, err)

	// 相同明文两次散列结果不同，但都能通过校验
	require.NotEqual(t, first, second)

	match, err := Verify("secret123", first)
	require.NoError(t, err)
	require.True(t, match)

	match, err = Verify("secret123", second)
	require.NoError(t, err)
	require.True(t, match)
}

func TestVerifyMalformedDigest(t *testing.T) {
	_, err := Verify("secret123", "not-an-argon2id-digest")
	require.Error(t, err)
}
