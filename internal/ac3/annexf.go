package ac3

// ParseAc3AnnexFFormat decodes an AC3SpecificBox (dac3) payload, TS 102 366
// Annex F. data must be positioned at the first payload byte and is advanced
// past the fields read.
func ParseAc3AnnexFFormat(data ByteReader, trackID, language string, drm DrmInitData) (Format, error) {
	fscod := (data.ReadUnsignedByte() & 0xC0) >> 6
	nextByte := data.ReadUnsignedByte()
	acmod := (nextByte & 0x38) >> 3
	lfeon := nextByte&0x04 != 0
	if err := data.Err(); err != nil {
		return Format{}, shortHeader("dac3", err)
	}
	return buildFormat(CodecAC3, fscod, acmod, lfeon, trackID, language, drm)
}

// ParseEAc3AnnexFFormat decodes an EC3SpecificBox (dec3) payload. Only the
// first independent substream is described.
func ParseEAc3AnnexFFormat(data ByteReader, trackID, language string, drm DrmInitData) (Format, error) {
	data.SkipBytes(2) // data_rate, num_ind_sub

	// TODO: describe later independent substreams once Format can carry more
	// than one channel configuration.
	fscod := (data.ReadUnsignedByte() & 0xC0) >> 6
	nextByte := data.ReadUnsignedByte()
	acmod := (nextByte & 0x0E) >> 1
	lfeon := nextByte&0x01 != 0
	if err := data.Err(); err != nil {
		return Format{}, shortHeader("dec3", err)
	}
	return buildFormat(CodecEAC3, fscod, acmod, lfeon, trackID, language, drm)
}

func buildFormat(codec Codec, fscod, acmod int, lfeon bool, trackID, language string, drm DrmInitData) (Format, error) {
	sampleRate, err := lookupSampleRate(fscod)
	if err != nil {
		return Format{}, err
	}
	channelCount, err := lookupChannelCount(acmod, lfeon)
	if err != nil {
		return Format{}, err
	}
	return newAudioSampleFormat(codec, trackID, channelCount, sampleRate, drm, language), nil
}
