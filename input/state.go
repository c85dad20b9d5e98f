package input

// InputMode selects how navigation keys are read
type InputMode uint8

const (
	ModeTurntable InputMode = iota // Arrows move the tonearm
	ModeDrawer                     // Drawer open: Up/Down scroll the body
)

// InputState tracks the pointer grab
type InputState uint8

const (
	StateIdle    InputState = iota // No button held on the arm
	StateGrabbed                   // Button-1 went down on the arm and is still held
)
