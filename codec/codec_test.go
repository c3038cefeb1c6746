package codec

import (
	"bytes"
	"testing"
)

func TestUTF16LEEncodeASCII(t *testing.T) {
	data, err := UTF16LE.Encode("vs://a")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := []byte{'v', 0, 's', 0, ':', 0, '/', 0, '/', 0, 'a', 0}
	if !bytes.Equal(data, want) {
		t.Errorf("encoding mismatch: got %x, want %x", data, want)
	}
	if Units(data) != 6 {
		t.Errorf("Units mismatch: got %d, want 6", Units(data))
	}
}

func TestUTF16LENoBOM(t *testing.T) {
	data, err := UTF16LE.Encode("x")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("expected 2 bytes without BOM, got %x", data)
	}
}

func TestUTF16LESurrogatePair(t *testing.T) {
	// U+1F600 needs two units: D83D DE00
	data, err := UTF16LE.Encode("\U0001F600")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := []byte{0x3D, 0xD8, 0x00, 0xDE}
	if !bytes.Equal(data, want) {
		t.Errorf("encoding mismatch: got %x, want %x", data, want)
	}
}

func TestUTF16LERoundTrip(t *testing.T) {
	original := "nxm://valheim/mods/387/files/4603?key=ä€&expires=1"

	data, err := UTF16LE.Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := UTF16LE.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded != original {
		t.Errorf("round trip mismatch: got %q, want %q", decoded, original)
	}
	if UTF16LE.Name() != "utf-16-le" {
		t.Errorf("Name mismatch: got %q", UTF16LE.Name())
	}
}
