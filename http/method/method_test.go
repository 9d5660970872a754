package method

import (
	"testing"

	"github.com/indigo-web/nimble/http/status"
	"github.com/stretchr/testify/require"
)

func BenchmarkMethod(b *testing.B) {
	var parsed Method

	for _, m := range List {
		b.Run(m.String(), func(b *testing.B) {
			str := m.String()
			b.SetBytes(int64(len(str)))
			b.ResetTimer()

			for j := 0; j < b.N; j++ {
				parsed, _ = Parse(str)
			}
		})
	}

	keepalive(parsed)
}

func keepalive(Method) {}

func TestMethod(t *testing.T) {
	t.Run("known methods", func(t *testing.T) {
		for _, m := range List {
			parsed, err := Parse(m.String())
			require.NoError(t, err)
			require.Equal(t, m, parsed)
		}
	})

	t.Run("count", func(t *testing.T) {
		require.Len(t, List, int(Count))
		require.Equal(t, PATCH, Method(Count))
	})

	t.Run("unknown methods", func(t *testing.T) {
		for _, token := range []string{"", "FETCH", "get", "Get", "GET ", " GET", "PURGE", "OPTION", "CONNECTS"} {
			parsed, err := Parse(token)
			require.ErrorIs(t, err, status.ErrInvalidMethod, token)
			require.Equal(t, Unknown, parsed, token)
		}
	})

	t.Run("string", func(t *testing.T) {
		require.Equal(t, "GET", GET.String())
		require.Equal(t, "Unknown", Unknown.String())
		require.Equal(t, "Method(42)", Method(42).String())
	})
}
