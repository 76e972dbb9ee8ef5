package graphics

import (
	"context"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// EnableDebugOutput routes driver debug messages to the default logger.
// Requires a debug context.
func EnableDebugOutput() {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(debugCallback, nil)
	gl.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, 0, nil, true)
}

func debugCallback(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
	slog.Log(context.Background(), debugLevel(severity), "gl debug",
		"source", source,
		"type", gltype,
		"id", id,
		"message", message,
	)
}

// debugLevel maps GL severities onto slog levels; notifications are debug noise.
func debugLevel(severity uint32) slog.Level {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		return slog.LevelError
	case gl.DEBUG_SEVERITY_MEDIUM:
		return slog.LevelWarn
	case gl.DEBUG_SEVERITY_LOW:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
