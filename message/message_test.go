package message

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"vaelstrom-url-handler/codec"
	"vaelstrom-url-handler/protocol"
)

func TestFromString(t *testing.T) {
	url := "https://example.com/callback?x=1"

	msg, err := FromString(url, codec.UTF16LE)
	if err != nil {
		t.Fatalf("FromString failed: %v", err)
	}
	if msg.Len() != 2*len(url) {
		t.Errorf("Len mismatch: got %d, want %d", msg.Len(), 2*len(url))
	}
	if got := msg.Text(codec.UTF16LE); got != url {
		t.Errorf("Text mismatch: got %q, want %q", got, url)
	}
}

func TestFrame(t *testing.T) {
	msg, err := FromString("nxm://x", codec.UTF16LE)
	if err != nil {
		t.Fatalf("FromString failed: %v", err)
	}

	frame, err := msg.Frame()
	if err != nil {
		t.Fatalf("Frame failed: %v", err)
	}
	if len(frame) != protocol.LengthFieldSize+msg.Len() {
		t.Fatalf("frame length mismatch: got %d, want %d", len(frame), protocol.LengthFieldSize+msg.Len())
	}
	if got := binary.BigEndian.Uint32(frame[:4]); got != uint32(msg.Len()) {
		t.Errorf("length prefix mismatch: got %d, want %d", got, msg.Len())
	}
	if !bytes.Equal(frame[4:], msg.Payload) {
		t.Errorf("payload mismatch after prefix")
	}
}

func TestLimitIsInBytes(t *testing.T) {
	// 1022 ASCII characters encode to exactly MaxPayloadSize bytes
	atLimit := strings.Repeat("a", protocol.MaxPayloadSize/2)
	if _, err := FromString(atLimit, codec.UTF16LE); err != nil {
		t.Fatalf("payload at limit rejected: %v", err)
	}

	// One more character crosses the limit even though it is far below 2044 characters
	_, err := FromString(atLimit+"a", codec.UTF16LE)
	if !errors.Is(err, ErrTooLong) {
		t.Fatalf("expected ErrTooLong, got %v", err)
	}
	if !errors.Is(err, protocol.ErrPayloadTooLarge) {
		t.Errorf("expected wrapped ErrPayloadTooLarge, got %v", err)
	}
}

func TestNewMisaligned(t *testing.T) {
	_, err := New([]byte{'a', 0, 'b'})
	if !errors.Is(err, ErrMisaligned) {
		t.Fatalf("expected ErrMisaligned for 3 bytes, got %v", err)
	}

	if _, err := New([]byte{'a', 0, 'b', 0}); err != nil {
		t.Fatalf("whole units rejected: %v", err)
	}
}
