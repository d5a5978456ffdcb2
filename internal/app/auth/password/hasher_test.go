package password

import (
	"strings"
	"testing"
)

func TestHasher_HashVerify(t *testing.T) {
	h := NewHasher("pepper")

	digest, err := h.Hash("Sup3rSecret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if digest == "Sup3rSecret" || strings.Contains(digest, "Sup3rSecret") {
		t.Fatal("digest must not contain the plaintext")
	}
	if !strings.HasPrefix(digest, "$argon2id$") {
		t.Fatalf("digest not algorithm-tagged: %s", digest)
	}

	if !h.Verify("Sup3rSecret", digest) {
		t.Fatal("verify with original password must succeed")
	}
	if h.Verify("Sup3rSecret2", digest) {
		t.Fatal("verify with wrong password must fail")
	}
}

func TestHasher_SelfSalted(t *testing.T) {
	h := NewHasher("")

	d1, _ := h.Hash("same-password")
	d2, _ := h.Hash("same-password")
	if d1 == d2 {
		t.Fatal("two digests of the same password must differ (random salt)")
	}
}

func TestHasher_PepperMismatch(t *testing.T) {
	digest, _ := NewHasher("pepper-a").Hash("Sup3rSecret")

	if NewHasher("pepper-b").Verify("Sup3rSecret", digest) {
		t.Fatal("verify must fail under a different pepper")
	}
}

func TestHasher_MalformedDigest(t *testing.T) {
	h := NewHasher("")

	for _, digest := range []string{"", "garbage", "$argon2id$broken", "$bcrypt$nope"} {
		if h.Verify("whatever", digest) {
			t.Fatalf("verify must return false for malformed digest %q", digest)
		}
	}
}
