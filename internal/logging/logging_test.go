package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestInfoWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	SetLevel("info")

	Info("search_ok", map[string]any{"results": 2})
	var got map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &got); err != nil {
		t.Fatalf("not json: %v (%q)", err, buf.String())
	}
	if got["msg"] != "search_ok" || got["level"] != "INFO" || got["app"] != "collabhub" {
		t.Fatalf("unexpected entry: %v", got)
	}
	if got["results"] != float64(2) {
		t.Fatalf("field missing: %v", got)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	defer SetLevel("info")

	SetLevel("error")
	Info("hidden", nil)
	Debug("hidden", nil)
	Error("shown", nil)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("level filter: %q", out)
	}

	buf.Reset()
	SetLevel("debug")
	Debug("dbg", nil)
	if !strings.Contains(buf.String(), "dbg") {
		t.Fatalf("debug not written: %q", buf.String())
	}
}
