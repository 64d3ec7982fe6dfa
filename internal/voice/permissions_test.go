package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/gameverse/internal/storage"
)

func TestPermissions_RoundTrip(t *testing.T) {
	kv := storage.NewMemory()
	p := NewPermissions(kv)
	assert.Equal(t, PermissionUnset, p.Get())
	assert.False(t, p.Granted())

	require.NoError(t, p.Set(PermissionGranted))
	assert.True(t, p.Granted())
	v, ok, err := kv.Get(PermissionKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "granted", v)

	require.NoError(t, p.Set(PermissionUnset))
	assert.Equal(t, PermissionUnset, p.Get())

	assert.Error(t, p.Set(Permission("maybe")))
}

func TestPermissions_UnknownValueIsUnset(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(PermissionKey, "sometimes"))
	assert.Equal(t, PermissionUnset, NewPermissions(kv).Get())
}
