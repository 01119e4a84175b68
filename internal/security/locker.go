package security

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"hdxwave/pkg/spec"
)

// Key locker (<volume>_keys.dat): magic HRDXBF02 lalu password volume yang
// dienkripsi dengan kunci turunan MasterBfKey.

var ErrBadLocker = errors.New("bukan file key locker Hardix yang valid")

var (
	lockerKeyOnce sync.Once
	lockerKey     []byte
)

// masterKey (kunci locker) diturunkan sekali per proses, pbkdf2 cukup mahal untuk batch.
func masterKey() []byte {
	lockerKeyOnce.Do(func() {
		lockerKey = DeriveKey(spec.MasterBfKey, []byte(spec.Salt))
	})
	return lockerKey
}

// LockerPath: volume.hdxv -> volume_keys.dat
func LockerPath(hdxvPath string) string {
	return strings.TrimSuffix(hdxvPath, spec.VolumeExt) + spec.KeyLockerExt
}

// UnlockKeyLocker membaca password volume dari file key locker
func UnlockKeyLocker(lockerPath string) (string, error) {
	data, err := os.ReadFile(lockerPath)
	if err != nil {
		return "", err
	}
	body, ok := bytes.CutPrefix(data, []byte(spec.BfKeyMagicV2))
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrBadLocker, lockerPath)
	}
	pass, err := Decrypt(body, masterKey())
	if err != nil {
		return "", fmt.Errorf("unlock %s: %w", lockerPath, err)
	}
	return string(pass), nil
}

// AudioKey membuka key locker milik volume dan menurunkan kunci frame audio.
func AudioKey(hdxvPath string) ([]byte, error) {
	pass, err := UnlockKeyLocker(LockerPath(hdxvPath))
	if err != nil {
		return nil, err
	}
	return DeriveKey(pass, []byte(spec.Salt)), nil
}
