// Package ac3 decodes header metadata of (E-)AC-3 bitstreams as described in
// ETSI TS 102 366: the Annex F dac3/dec3 configuration boxes carried by
// containers, and the fixed fields at the start of inline syncframes.
//
// All functions are pure apart from advancing the cursor they are given and
// are safe for concurrent use on independent inputs.
//
// Unlike a raw table lookup, every decode operation range-checks the codes it
// reads (fscod, fscod2, acmod) and reports a *DecodeError for reserved values,
// since these codes come straight from untrusted streams. Size and sample
// count queries report LengthUnset for short or reserved input instead.
package ac3
