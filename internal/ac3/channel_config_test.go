package ac3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAc3SyncframeConfig(t *testing.T) {
	tests := []struct {
		acmod uint32
		lfeon bool
		bsmod uint32
	}{
		{0, true, 1},
		{1, true, 7},
		{2, false, 2},
		{2, true, 0},
		{3, true, 0},
		{4, false, 3},
		{5, true, 0},
		{6, true, 5},
		{7, true, 0},
		{7, false, 6},
	}
	for _, tt := range tests {
		data := buildAc3Syncframe(ac3Header{bsid: 8, bsmod: tt.bsmod, acmod: tt.acmod, lfeon: tt.lfeon}, 128)
		cfg, ok := ac3SyncframeConfig(data)
		require.True(t, ok)
		require.Equal(t, ChannelConfig{Acmod: int(tt.acmod), LFE: tt.lfeon, Bsmod: int(tt.bsmod)}, cfg, "acmod=%d lfeon=%v", tt.acmod, tt.lfeon)
	}

	_, ok := ac3SyncframeConfig(make([]byte, 7))
	require.False(t, ok)
}

func TestEAc3SyncframeConfig(t *testing.T) {
	data := buildEAc3Syncframe(eac3Header{frmsiz: 63, acmod: 6, lfeon: true})
	cfg, ok := eac3SyncframeConfig(data)
	require.True(t, ok)
	require.Equal(t, ChannelConfig{Acmod: 6, LFE: true, Bsmod: NoValue}, cfg)

	_, ok = eac3SyncframeConfig(data[:4])
	require.False(t, ok)
}

func TestParseAnnexFConfig(t *testing.T) {
	// fscod=0 bsid=8 bsmod=0 | acmod=7 lfeon=1
	cfg, ok := ParseAc3AnnexFConfig([]byte{0x10, 0x3D, 0xE0})
	require.True(t, ok)
	require.Equal(t, ChannelConfig{Acmod: 7, LFE: true, Bsmod: 0}, cfg)

	// bsmod=5 split across the byte boundary | acmod=2
	cfg, ok = ParseAc3AnnexFConfig([]byte{0x11, 0x50})
	require.True(t, ok)
	require.Equal(t, ChannelConfig{Acmod: 2, Bsmod: 5}, cfg)

	_, ok = ParseAc3AnnexFConfig([]byte{0x10})
	require.False(t, ok)

	// data_rate, num_ind_sub | fscod=2 | bsmod=2 acmod=1 lfeon=1
	cfg, ok = ParseEAc3AnnexFConfig([]byte{0x0C, 0x00, 0xA0, 0x23})
	require.True(t, ok)
	require.Equal(t, ChannelConfig{Acmod: 1, LFE: true, Bsmod: 2}, cfg)

	_, ok = ParseEAc3AnnexFConfig([]byte{0x0C, 0x00, 0xA0})
	require.False(t, ok)
}
