package mongo

import "testing"

func TestObjectIDFromHex(t *testing.T) {
	if _, ok := ObjectIDFromHex("not-an-id"); ok {
		t.Error("expected malformed id to be rejected")
	}
	if _, ok := ObjectIDFromHex(""); ok {
		t.Error("expected empty id to be rejected")
	}

	oid, ok := ObjectIDFromHex("65a1f0c2e4b0a1b2c3d4e5f6")
	if !ok {
		t.Fatal("expected valid id to parse")
	}
	if oid.Hex() != "65a1f0c2e4b0a1b2c3d4e5f6" {
		t.Errorf("round trip mismatch: %s", oid.Hex())
	}
}
