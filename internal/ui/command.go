package ui

// Command identifies a user-facing operation. Buttons and keyboard
// bindings both resolve to a Command; the app dispatches it to the grid,
// clock, or pattern library.
type Command int

const (
	CmdNone Command = iota
	CmdTogglePause
	CmdSpeedUp
	CmdSlowDown
	CmdSeedRandom
	CmdSeedGlider
	CmdSeedTest
	CmdClear
)
