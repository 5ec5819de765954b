package ac3

// ChannelConfig is the audio coding mode of a header: which channels are
// coded, not just how many.
type ChannelConfig struct {
	Acmod int
	LFE   bool
	// Bsmod is NoValue when the header shape does not carry bsmod at a
	// fixed position (E-AC-3 syncframes).
	Bsmod int
}

// ac3SyncframeConfig reads acmod, bsmod and lfeon from an AC-3 syncframe.
// lfeon follows the optional 2-bit mix level fields.
func ac3SyncframeConfig(data []byte) (ChannelConfig, bool) {
	if len(data) < 8 {
		return ChannelConfig{}, false
	}
	acmod := int(data[6] >> 5)
	bit := 6*8 + 3
	if acmod&0x01 != 0 && acmod != 1 {
		bit += 2
	}
	if acmod&0x04 != 0 {
		bit += 2
	}
	if acmod == 2 {
		bit += 2
	}
	return ChannelConfig{
		Acmod: acmod,
		LFE:   data[bit/8]>>(7-bit%8)&0x01 != 0,
		Bsmod: int(data[5] & 0x07),
	}, true
}

func eac3SyncframeConfig(data []byte) (ChannelConfig, bool) {
	if len(data) < 5 {
		return ChannelConfig{}, false
	}
	return ChannelConfig{
		Acmod: int(data[4]>>1) & 0x07,
		LFE:   data[4]&0x01 != 0,
		Bsmod: NoValue,
	}, true
}

// ParseAc3AnnexFConfig reads the channel configuration of a dac3 payload.
func ParseAc3AnnexFConfig(payload []byte) (ChannelConfig, bool) {
	if len(payload) < 2 {
		return ChannelConfig{}, false
	}
	return ChannelConfig{
		Acmod: int(payload[1]>>3) & 0x07,
		LFE:   payload[1]&0x04 != 0,
		Bsmod: int(payload[0]&0x01)<<2 | int(payload[1]>>6),
	}, true
}

// ParseEAc3AnnexFConfig reads the channel configuration of the first
// independent substream of a dec3 payload.
func ParseEAc3AnnexFConfig(payload []byte) (ChannelConfig, bool) {
	if len(payload) < 4 {
		return ChannelConfig{}, false
	}
	return ChannelConfig{
		Acmod: int(payload[3]>>1) & 0x07,
		LFE:   payload[3]&0x01 != 0,
		Bsmod: int(payload[3]>>4) & 0x07,
	}, true
}
