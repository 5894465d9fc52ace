package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TemirB/smm-orders/internal/observability"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		secret    string
		prior     bool
		expected  bool
	}{
		{name: "exact match", candidate: "abc123", secret: "abc123", expected: true},
		{name: "wrong code", candidate: "wrong", secret: "abc123", expected: false},
		{name: "prefix is not enough", candidate: "abc", secret: "abc123", expected: false},
		{name: "case sensitive", candidate: "ABC123", secret: "abc123", expected: false},
		{name: "empty candidate", candidate: "", secret: "abc123", expected: false},
		{name: "prior session wins", candidate: "wrong", secret: "abc123", prior: true, expected: true},
		{name: "prior session with empty candidate", candidate: "", secret: "abc123", prior: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Check(tt.candidate, tt.secret, tt.prior))
		})
	}
}

func TestGate_Authenticate(t *testing.T) {
	metrics := observability.NewInmem(10)
	gate, err := NewGate("abc123", metrics, zap.NewNop())
	require.NoError(t, err)

	store, err := NewStore(4)
	require.NoError(t, err)
	sess := store.New()

	require.False(t, gate.Authenticate(sess, "wrong"))
	require.False(t, sess.Authenticated())

	require.True(t, gate.Authenticate(sess, "abc123"))
	require.True(t, sess.Authenticated())

	// flag survives any later candidate
	require.True(t, gate.Authenticate(sess, "wrong"))
	require.True(t, sess.Authenticated())

	totals, _ := metrics.Snapshot()
	require.Equal(t, 1, totals.AuthGranted)
	require.Equal(t, 1, totals.AuthDenied)
}

func TestNewGate_EmptySecret(t *testing.T) {
	_, err := NewGate("", nil, zap.NewNop())
	require.Error(t, err)
}

func TestStore(t *testing.T) {
	store, err := NewStore(2)
	require.NoError(t, err)

	a := store.New()
	b := store.New()
	require.NotEqual(t, a.ID, b.ID)

	got, ok := store.Get(a.ID)
	require.True(t, ok)
	require.Same(t, a, got)

	_, ok = store.Get("")
	require.False(t, ok)

	// a was used last, so b is evicted
	c := store.New()
	_, ok = store.Get(b.ID)
	require.False(t, ok)
	_, ok = store.Get(c.ID)
	require.True(t, ok)
	require.Equal(t, 2, store.Len())
}
