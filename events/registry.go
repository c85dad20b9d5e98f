package events

var typeToName = map[EventType]string{
	EventHighlightChanged:  "EventHighlightChanged",
	EventActiveRingChanged: "EventActiveRingChanged",
	EventNeedleThump:       "EventNeedleThump",
	EventScratch:           "EventScratch",
	EventPlatterDip:        "EventPlatterDip",
	EventPlatterSlow:       "EventPlatterSlow",
	EventPlatterResume:     "EventPlatterResume",
	EventRippleRequest:     "EventRippleRequest",
	EventDustRequest:       "EventDustRequest",
	EventContentLoad:       "EventContentLoad",
	EventStatusChanged:     "EventStatusChanged",
}

// String returns the registered name, used for debug logging
func (t EventType) String() string {
	if n, ok := typeToName[t]; ok {
		return n
	}
	return "EventUnknown"
}
