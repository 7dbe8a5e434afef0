package youtube

import "strings"

// ParseDuration converts the platform's compact ISO-8601 duration notation
// (e.g. "PT1H2M3S", "PT90S") into whole seconds.
//
// It is a total function: digits accumulate into a buffer, an H/M/S unit
// flushes the buffer at 3600/60/1 seconds, and any other character discards
// the pending buffer.
// Malformed input yields whatever partial accumulation the scan produced;
// empty input yields 0.
func ParseDuration(text string) int {
	text = strings.TrimPrefix(text, "PT")

	var seconds, buf int
	var haveBuf bool
	for _, ch := range text {
		if ch >= '0' && ch <= '9' {
			buf = buf*10 + int(ch-'0')
			haveBuf = true
			continue
		}
		if !haveBuf {
			continue
		}
		// Any non-digit flushes the buffer; only a known unit adds to the total.
		switch ch {
		case 'H':
			seconds += buf * 3600
		case 'M':
			seconds += buf * 60
		case 'S':
			seconds += buf
		}
		buf, haveBuf = 0, false
	}
	return seconds
}
