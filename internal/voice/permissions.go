package voice

import (
	"fmt"

	"github.com/blackwell-systems/gameverse/internal/storage"
)

// PermissionKey is the storage key for the microphone permission setting.
const PermissionKey = "micPermissionStatus"

// Permission is the persisted microphone setting.
type Permission string

const (
	PermissionUnset   Permission = ""
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Permissions reads and writes the microphone setting.
type Permissions struct {
	kv storage.KV
}

// NewPermissions returns a Permissions backed by kv.
func NewPermissions(kv storage.KV) *Permissions {
	return &Permissions{kv: kv}
}

// Get returns the stored setting. Unreadable or unrecognised values are unset.
func (p *Permissions) Get() Permission {
	if p == nil || p.kv == nil {
		return PermissionUnset
	}
	v, ok, err := p.kv.Get(PermissionKey)
	if err != nil || !ok {
		return PermissionUnset
	}
	switch Permission(v) {
	case PermissionGranted, PermissionDenied:
		return Permission(v)
	}
	return PermissionUnset
}

// Set stores a decision. Setting PermissionUnset clears it.
func (p *Permissions) Set(v Permission) error {
	if v == PermissionUnset {
		if err := p.kv.Delete(PermissionKey); err != nil {
			return fmt.Errorf("clearing microphone permission: %w", err)
		}
		return nil
	}
	if v != PermissionGranted && v != PermissionDenied {
		return fmt.Errorf("invalid microphone permission %q", v)
	}
	if err := p.kv.Set(PermissionKey, string(v)); err != nil {
		return fmt.Errorf("saving microphone permission: %w", err)
	}
	return nil
}

// Granted reports whether voice input may be used.
func (p *Permissions) Granted() bool {
	return p.Get() == PermissionGranted
}
