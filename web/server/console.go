package server

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/df07/go-scene-generator/pkg/core"
)

// ConsoleMessage is one generator log line forwarded to the client
type ConsoleMessage struct {
	RequestID string    `json:"requestId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// WebLogger implements core.Logger by copying each line to the server log
// and, without blocking, to a console channel
type WebLogger struct {
	requestID   string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a logger for one generation request.
// consoleChan may be nil; lines that do not fit are dropped.
func NewWebLogger(requestID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		requestID:   requestID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	log.Printf("[scene %s] %s", wl.requestID, message)

	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		RequestID: wl.requestID,
		Message:   message,
		Timestamp: time.Now(),
	}:
	default:
	}
}
