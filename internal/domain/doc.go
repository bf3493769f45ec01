// Package domain implements the deterministic fortune-generation core.
//
// # Determinism
//
// A fortune is a pure function of (user identifier, UTC calendar day, zodiac
// sign, weather observation). There is no entropy anywhere in the core: all
// "random" values come from [Draw], a seeded hash-based generator, so the same
// user asking on the same day always receives the same fortune. This is what
// makes the once-per-day cache safe — a cache miss after a restart regenerates
// a byte-identical record.
//
// # Seeding
//
// The base seed is the user identifier concatenated with the current UTC day
// formatted as "2006-01-02". Three independent draws are taken per fortune:
//
//	base        = Draw(seed)
//	weatherDraw = Draw(seed + condition)
//	tempDraw    = Draw(seed + temperature as shortest decimal string)
//
// The hash underneath Draw is a rolling multiply-by-31 over the seed's UTF-16
// code units with 32-bit signed wraparound. The wraparound is load-bearing:
// it must run in int32 arithmetic so every platform produces the same value
// for the same seed. See [Draw]. The hash is not cryptographic and is not
// meant to be; it only has to be reproducible.
//
// # Calendar day convention
//
// "Today" is always the UTC calendar day, read from the package clock. The
// seed date and the store's once-per-day check both go through [Today];
// mixing conventions would make a cached fortune diverge from a freshly
// generated one near the day boundary.
//
// # Zodiac
//
// Birth dates map to one of 12 fixed sign ranges, each carrying an element in
// {fire, earth, air, water}. The ranges partition the year with no gaps;
// Capricorn wraps across year-end (Dec 22 → Jan 19). Unparseable dates
// resolve to the ("unknown", "unknown") sentinel rather than failing.
//
// # ID Generation
//
// Fortune IDs are deterministic SHA-256 hashes of userID|day. This keeps
// issuance events idempotent downstream (ON CONFLICT DO NOTHING) and replay
// safe without coordination. See [fortuneID].
package domain
