package logcat

import "strings"

// tagSep separates the tag from the message body.
const tagSep = ": "

// Record is one parsed logcat line.
type Record struct {
	Timestamp string // time-of-day field, fraction normalized to milliseconds
	Level     Level
	RawLevel  string // priority token as it appeared, kept for unknown levels
	Tag       string
	Message   string
}

// Extract parses one logcat threadtime line into a Record. ok is false when
// the line does not have the expected shape; callers pass such lines through
// verbatim rather than dropping them.
//
// The threadtime layout is:
//
//	date time pid tid priority tag: message
//
// e.g. "02-03 15:44:41.704 2359 3654 I MyTag: Hello world".
func Extract(line string) (Record, bool) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return Record{}, false
	}
	rec := Record{
		Timestamp: normalizeTimestamp(fields[1]),
		Level:     LevelFromToken(fields[4]),
		RawLevel:  fields[4],
	}
	rest := strings.Join(fields[5:], " ")
	idx := strings.Index(rest, tagSep)
	if idx < 0 {
		rec.Tag = strings.TrimSpace(rest)
		return rec, true
	}
	rec.Tag = strings.TrimSpace(rest[:idx])
	msg := rest[idx+len(tagSep):]
	for strings.HasPrefix(msg, tagSep) {
		msg = msg[len(tagSep):]
	}
	rec.Message = msg
	return rec, true
}

// normalizeTimestamp forces the fractional-seconds part to exactly three
// digits, appending ".000" when the field has no fraction at all.
func normalizeTimestamp(ts string) string {
	base, frac, found := strings.Cut(ts, ".")
	if !found {
		return ts + ".000"
	}
	if len(frac) > 3 {
		frac = frac[:3]
	} else if len(frac) < 3 {
		frac += strings.Repeat("0", 3-len(frac))
	}
	return base + "." + frac
}
