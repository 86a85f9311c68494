package p4

import (
	"bufio"
	"bytes"
	"encoding/json"

	"github.com/grovetools/p4mux/errors"
)

const maxRecordSize = 1024 * 1024

// Record is one line of 'p4 -Mj -ztag' output. Only the fields p4mux
// classifies on are decoded.
type Record struct {
	Action string `json:"action"`

	// Change is kept raw because p4 reports it as a string while other
	// tooling emits a number; only its presence matters.
	Change json.RawMessage `json:"change"`
}

// HasChange reports whether the record names a changelist.
func (r Record) HasChange() bool {
	trimmed := bytes.TrimSpace(r.Change)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// ParseRecords decodes line-delimited JSON. Blank lines are skipped; any other
// line that is not a JSON object fails the whole parse, since it means the
// p4 version does not produce the expected format.
func ParseRecords(cmd string, output []byte) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var record Record
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, errors.MalformedOutput(cmd, lineNo, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.MalformedOutput(cmd, lineNo+1, err)
	}

	return records, nil
}
