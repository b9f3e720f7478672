package tio

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// tokenLen is the length of the random separator token at the start of a
// decompressed run response.
const tokenLen = 16

// exitCodePrefix introduces the exit status line in the debug report.
const exitCodePrefix = "Exit code: "

// encodeRunRequest serializes a run request into the service's wire format:
// a sequence of variable and file records terminated by "R", compressed with
// raw DEFLATE.
func encodeRunRequest(r Request) (*bytes.Buffer, error) {
	var plain bytes.Buffer
	writeVariable(&plain, "lang", r.Language)
	writeFile(&plain, ".code.tio", r.Code)
	writeFile(&plain, ".input.tio", r.Stdin)
	plain.WriteByte('R')

	var compressed bytes.Buffer
	zw, err := flate.NewWriter(&compressed, flate.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create deflate writer: %w", err)
	}
	if _, err := zw.Write(plain.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to compress request: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush compressed request: %w", err)
	}
	return &compressed, nil
}

// writeVariable appends a single-valued variable record:
// "V" name NUL count NUL value NUL.
func writeVariable(b *bytes.Buffer, name, value string) {
	b.WriteByte('V')
	b.WriteString(name)
	b.WriteByte(0)
	b.WriteString("1")
	b.WriteByte(0)
	b.WriteString(value)
	b.WriteByte(0)
}

// writeFile appends a file record: "F" name NUL length NUL content.
func writeFile(b *bytes.Buffer, name, content string) {
	b.WriteByte('F')
	b.WriteString(name)
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(len(content)))
	b.WriteByte(0)
	b.WriteString(content)
}

// decodeRunResponse gunzips a run response and splits it on the separator
// token carried in its first 16 bytes. The first field is the program
// output, the last is the service's debug report.
func decodeRunResponse(raw []byte) (*Result, error) {
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("response is not gzip: %w", err)
	}
	defer func() { _ = zr.Close() }()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress response: %w", err)
	}
	if len(data) < tokenLen {
		return nil, fmt.Errorf("response too short: %d bytes", len(data))
	}

	token := data[:tokenLen]
	fields := bytes.Split(data[tokenLen:], token)
	if len(fields) == 0 {
		return nil, fmt.Errorf("malformed response: no fields")
	}

	result := &Result{Output: string(fields[0])}
	if len(fields) > 1 {
		result.Debug = string(fields[len(fields)-1])
	}
	result.ExitStatus = parseExitStatus(result.Debug)
	return result, nil
}

// parseExitStatus extracts the exit status from a debug report. A report
// without an exit code line yields 0.
func parseExitStatus(debug string) int {
	for _, line := range strings.Split(debug, "\n") {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), exitCodePrefix); ok {
			if status, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil {
				return status
			}
		}
	}
	return 0
}
