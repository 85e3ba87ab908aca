package punycode

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	idnaerr "github.com/wippyai/idna/errors"
)

// "ib9b" decodes to code point 0xD800, which is not a Unicode scalar value;
// the failure path logs a debug diagnostic once a logger is installed.
func TestDecode_NonScalarOutput(t *testing.T) {
	_, err := Decode("ib9b")
	if err == nil {
		t.Fatal("Decode succeeded, want error")
	}
	if !errors.Is(err, &idnaerr.Error{Kind: idnaerr.KindInvalidCodePoint}) {
		t.Errorf("error = %v, want kind invalid_code_point", err)
	}
}

func TestSetLogger_EnablesDebug(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	if _, err := Decode("ib9b"); err == nil {
		t.Fatal("Decode succeeded, want error")
	}

	if logs.Len() == 0 {
		t.Fatal("no debug log recorded after SetLogger")
	}
	entry := logs.All()[0]
	if entry.Level != zap.DebugLevel {
		t.Errorf("log level = %v, want debug", entry.Level)
	}
}

func TestSetLoggerNil_DisablesDebug(t *testing.T) {
	SetLogger(nil)
	if debug {
		t.Error("debug still enabled after SetLogger(nil)")
	}
	// The failure path must not touch the logger when debug is off.
	if _, err := Decode("ib9b"); err == nil {
		t.Fatal("Decode succeeded, want error")
	}
}
