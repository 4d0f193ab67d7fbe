package wifi

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		scan string
		want []AccessPoint
	}{
		{
			name: "two valid segments",
			scan: "AA:BB:CC:DD:EE:FF,-55;11:22:33:44:55:66,-70",
			want: []AccessPoint{
				{MACAddress: "AA:BB:CC:DD:EE:FF", SignalStrength: -55},
				{MACAddress: "11:22:33:44:55:66", SignalStrength: -70},
			},
		},
		{
			name: "single segment",
			scan: "AA:BB:CC:DD:EE:FF,-40",
			want: []AccessPoint{
				{MACAddress: "AA:BB:CC:DD:EE:FF", SignalStrength: -40},
			},
		},
		{
			name: "segment without comma is skipped",
			scan: "badsegment",
			want: nil,
		},
		{
			name: "malformed segment does not break siblings",
			scan: "badsegment;11:22:33:44:55:66,-70",
			want: []AccessPoint{
				{MACAddress: "11:22:33:44:55:66", SignalStrength: -70},
			},
		},
		{
			name: "segment with too many fields is skipped",
			scan: "AA:BB,1,2;11:22:33:44:55:66,-70",
			want: []AccessPoint{
				{MACAddress: "11:22:33:44:55:66", SignalStrength: -70},
			},
		},
		{
			name: "non-numeric signal strength skips only that segment",
			scan: "AA:BB:CC:DD:EE:FF,weak;11:22:33:44:55:66,-70",
			want: []AccessPoint{
				{MACAddress: "11:22:33:44:55:66", SignalStrength: -70},
			},
		},
		{
			name: "empty mac is skipped",
			scan: ",-55;11:22:33:44:55:66,-70",
			want: []AccessPoint{
				{MACAddress: "11:22:33:44:55:66", SignalStrength: -70},
			},
		},
		{
			name: "surrounding whitespace is trimmed",
			scan: " AA:BB:CC:DD:EE:FF , -55 ",
			want: []AccessPoint{
				{MACAddress: "AA:BB:CC:DD:EE:FF", SignalStrength: -55},
			},
		},
		{
			name: "empty payload",
			scan: "",
			want: nil,
		},
		{
			name: "only separators",
			scan: ";;",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.scan)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.scan, got, tt.want)
			}
		})
	}
}
