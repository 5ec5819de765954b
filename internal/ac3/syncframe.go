package ac3

// ParseAc3SyncframeFormat decodes the syncinfo and leading bsi fields of an
// AC-3 syncframe. data must be positioned at the syncword.
func ParseAc3SyncframeFormat(data BitReader, trackID, language string, drm DrmInitData) (Format, error) {
	data.SkipBits(16 + 16) // syncword, crc1
	fscod := int(data.ReadBits(2))
	data.SkipBits(6 + 5 + 3) // frmsizecod, bsid, bsmod
	acmod := int(data.ReadBits(3))
	if acmod&0x01 != 0 && acmod != 1 {
		data.SkipBits(2) // cmixlev
	}
	if acmod&0x04 != 0 {
		data.SkipBits(2) // surmixlev
	}
	if acmod == 2 {
		data.SkipBits(2) // dsurmod
	}
	lfeon := data.ReadBit()
	if err := data.Err(); err != nil {
		return Format{}, shortHeader("ac-3 syncframe", err)
	}
	return buildFormat(CodecAC3, fscod, acmod, lfeon, trackID, language, drm)
}

// ParseEAc3SyncframeFormat decodes the leading bsi fields of an E-AC-3
// syncframe. data must be positioned at the syncword.
func ParseEAc3SyncframeFormat(data BitReader, trackID, language string, drm DrmInitData) (Format, error) {
	data.SkipBits(16 + 2 + 3 + 11) // syncword, strmtype, substreamid, frmsiz
	var sampleRate int
	var err error
	fscod := int(data.ReadBits(2))
	if fscod == 3 {
		sampleRate, err = lookupReducedSampleRate(int(data.ReadBits(2)))
	} else {
		data.SkipBits(2) // numblkscod
		sampleRate, err = lookupSampleRate(fscod)
	}
	acmod := int(data.ReadBits(3))
	lfeon := data.ReadBit()
	if rerr := data.Err(); rerr != nil {
		return Format{}, shortHeader("e-ac-3 syncframe", rerr)
	}
	if err != nil {
		return Format{}, err
	}
	channelCount, err := lookupChannelCount(acmod, lfeon)
	if err != nil {
		return Format{}, err
	}
	return newAudioSampleFormat(CodecEAC3, trackID, channelCount, sampleRate, drm, language), nil
}
