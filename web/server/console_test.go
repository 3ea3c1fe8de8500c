package server

import (
	"encoding/json"
	"testing"
	"time"
)

func TestWebLogger_BasicLogging(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("grid=3", messageChan)

	logger.Printf("Generating %dx%d sphere grid\n", 3, 3)

	select {
	case msg := <-messageChan:
		if msg.Message != "Generating 3x3 sphere grid" {
			t.Errorf("Expected message without trailing newline, got '%s'", msg.Message)
		}
		if msg.RequestID != "grid=3" {
			t.Errorf("Expected request id 'grid=3', got '%s'", msg.RequestID)
		}
		if time.Since(msg.Timestamp) > time.Second {
			t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
		}
	default:
		t.Error("Expected a console message")
	}
}

func TestWebLogger_ChannelFull(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("full", messageChan)

	logger.Printf("Message 1\n")
	// These must not block even though the channel is full
	logger.Printf("Message 2\n")
	logger.Printf("Message 3\n")

	if len(messageChan) != 1 {
		t.Errorf("Expected 1 buffered message, got %d", len(messageChan))
	}
	if msg := <-messageChan; msg.Message != "Message 1" {
		t.Errorf("Expected first message to be kept, got '%s'", msg.Message)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	logger := NewWebLogger("nil", nil)
	// Must not panic
	logger.Printf("Test message with nil channel\n")
}

func TestConsoleMessage_JSON(t *testing.T) {
	msg := ConsoleMessage{RequestID: "r1", Message: "hello", Timestamp: time.Unix(0, 0).UTC()}
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	expected := `{"requestId":"r1","message":"hello","timestamp":"1970-01-01T00:00:00Z"}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}
