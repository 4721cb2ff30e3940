package sensor

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ReadPackets decodes newline-delimited JSON packets, one per line:
//
//	{"tag":"RUN","values":[15000,1,75]}
//
// Blank lines are skipped. Decode errors carry the offending line number.
// Tags and value tuples are not validated here; that happens in Resolve.
func ReadPackets(r io.Reader) ([]Packet, error) {
	var packets []Packet

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var p Packet
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			return nil, fmt.Errorf("line %d: decoding packet: %w", lineNo, err)
		}
		packets = append(packets, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading packets: %w", err)
	}

	return packets, nil
}
