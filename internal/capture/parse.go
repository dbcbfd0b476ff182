package capture

import (
	"errors"
	"regexp"
	"strconv"

	"TrafficLens/internal/model"
)

// Example tshark output line:
//   "  1 0.000000000 fd42:42:42::2 → 2a03:2880:f136:82:face:b00c:0:25de UDP 160 54148 → 443 Len=112"

var (
	addrPairRe  = regexp.MustCompile(`([a-f0-9:.]+)\s*(?:→|->)\s*([a-f0-9:.]+)`)
	protoSizeRe = regexp.MustCompile(`(TCP|UDP|SSL|TLS|HTTP|QUIC)\s+(\d+)`)
	dstPortRe   = regexp.MustCompile(`(?:→|->)\s*(\d+)`)
)

var errNoMatch = errors.New("line does not match flow grammar")

// ParseLine extracts a FlowRecord from one capture output line. A line is
// accepted only if it carries a source→destination address pair and a protocol
// tag followed by a byte size. The destination port comes from the port arrow
// after the protocol field; a line without one yields port 0. Any other line
// is rejected with an error the caller is expected to skip silently.
func ParseLine(line string) (*model.FlowRecord, error) {
	addrs := addrPairRe.FindStringSubmatch(line)
	if addrs == nil {
		return nil, errNoMatch
	}

	loc := protoSizeRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return nil, errNoMatch
	}
	proto := line[loc[2]:loc[3]]
	size, err := strconv.Atoi(line[loc[4]:loc[5]])
	if err != nil {
		return nil, errNoMatch
	}

	// Search for the port only after the protocol+size field, otherwise the
	// address arrow itself would be picked up for destinations that start
	// with a digit.
	dstPort := 0
	if m := dstPortRe.FindStringSubmatch(line[loc[1]:]); m != nil {
		dstPort, _ = strconv.Atoi(m[1])
	}

	return &model.FlowRecord{
		SrcIP:    addrs[1],
		DstIP:    addrs[2],
		DstPort:  dstPort,
		Protocol: proto,
		Size:     size,
	}, nil
}
