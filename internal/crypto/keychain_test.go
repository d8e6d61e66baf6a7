package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 || len(s2) != 16 {
		t.Fatalf("salt lengths = %d, %d, want 16", len(s1), len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateKey_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	k1, err := svc.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}
	k2, err := svc.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService()

	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := svc.DeriveKey(password, salt)
	k2 := svc.DeriveKey(password, salt)

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same password+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewKeyChainService()

	k1 := svc.DeriveKey("same password", bytes.Repeat([]byte{0x01}, 16))
	k2 := svc.DeriveKey("same password", bytes.Repeat([]byte{0x02}, 16))

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestEncryptString_DecryptRoundTrip(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x2A}, 32)

	blob, err := svc.EncryptString("s3cr3t", key)
	if err != nil {
		t.Fatalf("EncryptString error: %v", err)
	}
	if strings.Contains(blob, "s3cr3t") {
		t.Fatalf("blob leaks plaintext: %s", blob)
	}

	plain, err := svc.DecryptString(blob, key)
	if err != nil {
		t.Fatalf("DecryptString error: %v", err)
	}
	if plain != "s3cr3t" {
		t.Fatalf("plain = %q, want %q", plain, "s3cr3t")
	}
}

func TestEncryptString_NonceRandomness(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x2A}, 32)

	b1, err := svc.EncryptString("same", key)
	if err != nil {
		t.Fatalf("EncryptString error: %v", err)
	}
	b2, err := svc.EncryptString("same", key)
	if err != nil {
		t.Fatalf("EncryptString error: %v", err)
	}

	if b1 == b2 {
		t.Fatalf("expected different ciphertext blobs for two encryptions")
	}
}

func TestDecryptString_WrongKey(t *testing.T) {
	svc := NewKeyChainService()

	blob, err := svc.EncryptString("data", bytes.Repeat([]byte{0x01}, 32))
	if err != nil {
		t.Fatalf("EncryptString error: %v", err)
	}

	_, err = svc.DecryptString(blob, bytes.Repeat([]byte{0x02}, 32))
	if err == nil {
		t.Fatalf("expected error for wrong key")
	}
}

func TestDecryptString_Malformed(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x01}, 32)

	if _, err := svc.DecryptString("%%%not-base64", key); err == nil {
		t.Fatalf("expected error for bad base64")
	}
	if _, err := svc.DecryptString("AAAA", key); err == nil {
		t.Fatalf("expected error for short blob")
	}
	if _, err := svc.DecryptString("AAAA", []byte("short")); err == nil {
		t.Fatalf("expected error for short key")
	}
}
