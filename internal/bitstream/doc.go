// Package bitstream provides the bit and byte cursors used to pull
// fixed-position fields out of (E-)AC-3 headers, plus a bit writer for
// building synthetic headers.
//
// Cursors never read past the end of their window. The first overrun sets a
// sticky error, after which every read yields zero; callers check Err once
// after reading a group of fields.
package bitstream
