package util

import (
	"strings"
	"testing"
)

func TestGenerateShareHash(t *testing.T) {
	hash, err := GenerateShareHash(ShareHashLength)
	if err != nil {
		t.Fatal(err)
	}
	if len(hash) != ShareHashLength {
		t.Errorf("length = %d, want %d", len(hash), ShareHashLength)
	}
	for _, c := range hash {
		if !strings.ContainsRune(shareHashAlphabet, c) {
			t.Errorf("unexpected character %q in hash", c)
		}
	}
}

func TestGenerateShareHash_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		hash, err := GenerateShareHash(0)
		if err != nil {
			t.Fatal(err)
		}
		if seen[hash] {
			t.Fatalf("duplicate hash after %d iterations: %s", i, hash)
		}
		seen[hash] = true
	}
}

func TestGenerateShareHash_DefaultLength(t *testing.T) {
	hash, err := GenerateShareHash(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(hash) != ShareHashLength {
		t.Errorf("default length = %d, want %d", len(hash), ShareHashLength)
	}
}
