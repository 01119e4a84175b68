package security

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"hdxwave/pkg/spec"
)

// seal builds a [nonce][ciphertext] packet the way volumes store them.
func seal(t *testing.T, key, plain []byte) []byte {
	t.Helper()
	c, err := NewFrameCipher(key)
	if err != nil {
		t.Fatalf("NewFrameCipher: %v", err)
	}
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		t.Fatal(err)
	}
	return c.aead.Seal(nonce, nonce, plain, nil)
}

// writeKeyLocker writes <hdxv>_keys.dat holding password.
func writeKeyLocker(t *testing.T, hdxvPath, password string) {
	t.Helper()
	data := append([]byte(spec.BfKeyMagicV2), seal(t, masterKey(), []byte(password))...)
	if err := os.WriteFile(LockerPath(hdxvPath), data, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDecrypt(t *testing.T) {
	key := DeriveKey("hardix2025", []byte(spec.Salt))
	if len(key) != 32 {
		t.Fatalf("key length = %d, want 32", len(key))
	}
	plain := []byte("opus packet")
	dec, err := Decrypt(seal(t, key, plain), key)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(dec, plain) {
		t.Errorf("Decrypt = %q, want %q", dec, plain)
	}
}

func TestFrameCipherOpensManyPackets(t *testing.T) {
	key := DeriveKey("hardix2025", []byte(spec.Salt))
	c, err := NewFrameCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	packets := [][]byte{seal(t, key, []byte("first")), seal(t, key, []byte("second"))}
	for i, want := range []string{"first", "second"} {
		plain, err := c.Open(packets[i])
		if err != nil || string(plain) != want {
			t.Errorf("Open(%d) = %q, %v; want %q", i, plain, err, want)
		}
	}

	tampered := packets[0]
	tampered[len(tampered)-1] ^= 0xff
	if _, err := c.Open(tampered); err == nil {
		t.Error("tampered packet opened")
	}
}

func TestNewFrameCipherBadKey(t *testing.T) {
	if _, err := NewFrameCipher([]byte("short")); err == nil {
		t.Error("5-byte key accepted")
	}
}

func TestDecryptWrongKey(t *testing.T) {
	enc := seal(t, DeriveKey("a", []byte(spec.Salt)), []byte("data"))
	if _, err := Decrypt(enc, DeriveKey("b", []byte(spec.Salt))); err == nil {
		t.Error("Decrypt with wrong key succeeded")
	}
}

func TestDecryptShort(t *testing.T) {
	if _, err := Decrypt([]byte{1, 2}, DeriveKey("a", nil)); !errors.Is(err, ErrShortCiphertext) {
		t.Errorf("Decrypt of short input: %v, want ErrShortCiphertext", err)
	}
}

func TestLockerPath(t *testing.T) {
	if got := LockerPath("/music/Album.hdxv"); got != "/music/Album_keys.dat" {
		t.Errorf("LockerPath = %q", got)
	}
}

func TestKeyLockerRoundTrip(t *testing.T) {
	hdxv := filepath.Join(t.TempDir(), "Album.hdxv")
	writeKeyLocker(t, hdxv, "secret")
	pass, err := UnlockKeyLocker(LockerPath(hdxv))
	if err != nil {
		t.Fatalf("UnlockKeyLocker: %v", err)
	}
	if pass != "secret" {
		t.Errorf("password = %q, want secret", pass)
	}

	key, err := AudioKey(hdxv)
	if err != nil {
		t.Fatalf("AudioKey: %v", err)
	}
	if !bytes.Equal(key, DeriveKey("secret", []byte(spec.Salt))) {
		t.Error("AudioKey does not match DeriveKey(password)")
	}
}

func TestUnlockKeyLockerBadMagic(t *testing.T) {
	p := filepath.Join(t.TempDir(), "x_keys.dat")
	os.WriteFile(p, []byte("NOTAKEYLOCKER"), 0644)
	if _, err := UnlockKeyLocker(p); !errors.Is(err, ErrBadLocker) {
		t.Errorf("UnlockKeyLocker: %v, want ErrBadLocker", err)
	}
}
