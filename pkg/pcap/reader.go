package pcap

import (
	"fmt"
	"os"

	"TrafficLens/internal/model"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// Reader replays flow records from a capture file, so a recorded window can
// be pushed through the same aggregation pipeline as live traffic.
type Reader struct {
	file   *os.File
	handle *pcapgo.Reader
}

// NewReader opens a pcap file for replay.
func NewReader(filePath string) (*Reader, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open pcap file: %w", err)
	}
	handle, err := pcapgo.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open pcap file: %w", err)
	}
	return &Reader{file: f, handle: handle}, nil
}

// Close closes the pcap handle.
func (r *Reader) Close() {
	r.file.Close()
}

// ReadRecords decodes all packets from the file and sends the extracted
// records to out. Packets that are not IP or not TCP/UDP are skipped, the
// same way the live parser skips unusable lines. The channel is closed when
// the file is exhausted.
func (r *Reader) ReadRecords(out chan<- *model.FlowRecord) {
	defer close(out)

	packetSource := gopacket.NewPacketSource(r.handle, r.handle.LinkType())
	for packet := range packetSource.Packets() {
		rec, err := RecordFromPacket(packet)
		if err != nil {
			continue
		}
		out <- rec
	}
}

// RecordFromPacket extracts a FlowRecord from a decoded packet.
func RecordFromPacket(packet gopacket.Packet) (*model.FlowRecord, error) {
	rec := &model.FlowRecord{Size: len(packet.Data())}
	if meta := packet.Metadata(); meta != nil && meta.Length > 0 {
		rec.Size = meta.Length
	}

	if l := packet.Layer(layers.LayerTypeIPv4); l != nil {
		ip := l.(*layers.IPv4)
		rec.SrcIP = ip.SrcIP.String()
		rec.DstIP = ip.DstIP.String()
	} else if l := packet.Layer(layers.LayerTypeIPv6); l != nil {
		ip := l.(*layers.IPv6)
		rec.SrcIP = ip.SrcIP.String()
		rec.DstIP = ip.DstIP.String()
	} else {
		return nil, fmt.Errorf("not an IP packet")
	}

	if l := packet.Layer(layers.LayerTypeTCP); l != nil {
		tcp := l.(*layers.TCP)
		rec.Protocol = "TCP"
		rec.DstPort = int(tcp.DstPort)
	} else if l := packet.Layer(layers.LayerTypeUDP); l != nil {
		udp := l.(*layers.UDP)
		rec.Protocol = "UDP"
		rec.DstPort = int(udp.DstPort)
	} else {
		return nil, fmt.Errorf("not a TCP or UDP packet")
	}

	return rec, nil
}

