package events

// RingPayload identifies a ring; an empty ID means none
type RingPayload struct {
	ID     string
	Label  string
	Radius float64
}

// RipplePayload positions a ripple on the platter
type RipplePayload struct {
	Radius float64
}

// DustPayload positions a dust puff as percent of the viewport
type DustPayload struct {
	XPercent float64
	YPercent float64
}

// StatusPayload is the accessible value of the tonearm
// ValueNow is the 1-based groove ordinal, 0 when parked
type StatusPayload struct {
	ValueText string
	ValueNow  int
}
