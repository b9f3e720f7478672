package tio

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"io"
	"testing"
)

func TestEncodeRunRequest(t *testing.T) {
	body, err := encodeRunRequest(Request{
		Code:     "print(1)",
		Language: "python3",
		Stdin:    "feed",
	})
	if err != nil {
		t.Fatalf("encodeRunRequest() error = %v", err)
	}

	// The body must be raw DEFLATE of the record sequence.
	plain, err := io.ReadAll(flate.NewReader(bytes.NewReader(body.Bytes())))
	if err != nil {
		t.Fatalf("failed to inflate request: %v", err)
	}

	want := "Vlang\x001\x00python3\x00" +
		"F.code.tio\x008\x00print(1)" +
		"F.input.tio\x004\x00feed" +
		"R"
	if string(plain) != want {
		t.Errorf("request = %q, want %q", plain, want)
	}
}

// gzipResponse builds a run response body: a 16 byte token, the fields,
// each preceded by the token, all gzip compressed.
func gzipResponse(t *testing.T, token string, fields ...string) []byte {
	t.Helper()
	if len(token) != tokenLen {
		t.Fatalf("token must be %d bytes, got %d", tokenLen, len(token))
	}

	var plain bytes.Buffer
	plain.WriteString(token)
	for i, f := range fields {
		if i > 0 {
			plain.WriteString(token)
		}
		plain.WriteString(f)
	}

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	if _, err := zw.Write(plain.Bytes()); err != nil {
		t.Fatalf("failed to gzip response: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close gzip writer: %v", err)
	}
	return compressed.Bytes()
}

func TestDecodeRunResponse(t *testing.T) {
	const token = "0123456789abcdef"

	raw := gzipResponse(t, token, "hello\n", "Real time: 0.1 s\nExit code: 3\n")
	result, err := decodeRunResponse(raw)
	if err != nil {
		t.Fatalf("decodeRunResponse() error = %v", err)
	}

	if result.Output != "hello\n" {
		t.Errorf("output = %q, want %q", result.Output, "hello\n")
	}
	if result.ExitStatus != 3 {
		t.Errorf("exit status = %d, want 3", result.ExitStatus)
	}
}

func TestDecodeRunResponseErrors(t *testing.T) {
	if _, err := decodeRunResponse([]byte("not gzip")); err == nil {
		t.Error("expected error for non-gzip response")
	}

	var short bytes.Buffer
	zw := gzip.NewWriter(&short)
	_, _ = zw.Write([]byte("tiny"))
	_ = zw.Close()
	if _, err := decodeRunResponse(short.Bytes()); err == nil {
		t.Error("expected error for truncated response")
	}
}

func TestParseExitStatus(t *testing.T) {
	tests := []struct {
		name  string
		debug string
		want  int
	}{
		{"zero", "Real time: 0.05 s\nExit code: 0", 0},
		{"nonzero", "Exit code: 137\n", 137},
		{"missing", "Real time: 0.05 s\n", 0},
		{"garbage value", "Exit code: banana\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseExitStatus(tt.debug); got != tt.want {
				t.Errorf("parseExitStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
