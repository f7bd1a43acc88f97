package logic

// Gate reports whether watering is permitted at a given time.
type Gate interface {
	Allows(nowMs int64) bool
}

// HourRange is an inclusive range of hours in [0,23]. Start > End wraps
// past midnight (22..2 covers 22,23,0,1,2).
type HourRange struct {
	Start int `json:"start_hour"`
	End   int `json:"end_hour"`
}

func (r HourRange) contains(h int) bool {
	if r.Start <= r.End {
		return h >= r.Start && h <= r.End
	}
	return h >= r.Start || h <= r.End
}

// Window gates watering to two allowed hour ranges, or permits it
// unconditionally when disabled.
//
// The "hour" is derived from the monotonic millisecond clock, wrapping
// every 24 hours from process start. This is a documented placeholder
// pending a real calendar time source: it exercises the gate, it does not
// know actual time of day. The default configuration ships with the
// window disabled for exactly that reason.
type Window struct {
	Enabled bool      `json:"enabled"`
	Morning HourRange `json:"morning"`
	Evening HourRange `json:"evening"`
}

const millisPerHour = 3600 * 1000

// Allows reports whether watering is permitted at nowMs.
func (w Window) Allows(nowMs int64) bool {
	if !w.Enabled {
		return true
	}
	h := hourOfDay(nowMs)
	return w.Morning.contains(h) || w.Evening.contains(h)
}

func hourOfDay(nowMs int64) int {
	return int(nowMs / millisPerHour % 24)
}
