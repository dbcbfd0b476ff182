package capture

import (
	"reflect"
	"testing"

	"TrafficLens/internal/model"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *model.FlowRecord
	}{
		{
			name: "ipv6 udp with port",
			line: "    1 0.000000000 fd42:42:42::2 → 2a03:2880:f136:82:face:b00c:0:25de UDP 160 54148 → 443 Len=112",
			want: &model.FlowRecord{
				SrcIP:    "fd42:42:42::2",
				DstIP:    "2a03:2880:f136:82:face:b00c:0:25de",
				DstPort:  443,
				Protocol: "UDP",
				Size:     160,
			},
		},
		{
			name: "ipv4 tcp with port",
			line: "   12 1.042311 10.66.66.2 → 142.250.74.110 TCP 583 43234 → 443 [PSH, ACK] Seq=1 Ack=1",
			want: &model.FlowRecord{
				SrcIP:    "10.66.66.2",
				DstIP:    "142.250.74.110",
				DstPort:  443,
				Protocol: "TCP",
				Size:     583,
			},
		},
		{
			name: "ascii arrow",
			line: "   3 0.51 10.66.66.2 -> 1.1.1.1 UDP 64 40000 -> 53",
			want: &model.FlowRecord{
				SrcIP:    "10.66.66.2",
				DstIP:    "1.1.1.1",
				DstPort:  53,
				Protocol: "UDP",
				Size:     64,
			},
		},
		{
			name: "no port defaults to zero",
			line: "    7 0.22 10.66.66.2 → 104.18.32.47 TLS 1400 Application Data",
			want: &model.FlowRecord{
				SrcIP:    "10.66.66.2",
				DstIP:    "104.18.32.47",
				DstPort:  0,
				Protocol: "TLS",
				Size:     1400,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if err != nil {
				t.Fatalf("ParseLine(%q) rejected: %v", tt.line, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLineRejects(t *testing.T) {
	lines := []string{
		"",
		"Capturing on 'wg0'",
		"garbled %% output",
		// Address pair but no protocol+size field.
		"    2 0.01 10.66.66.2 → 8.8.8.8 ICMP Echo request",
		// Protocol tag without a following size.
		"    4 0.02 10.66.66.2 → 8.8.8.8 TCP retransmission",
	}
	for _, line := range lines {
		if rec, err := ParseLine(line); err == nil {
			t.Errorf("ParseLine(%q) = %+v, want rejection", line, rec)
		}
	}
}
