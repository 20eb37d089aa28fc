//go:build !linux

package terminal

// resetTerminalMode is a no-op; tcell restores the mode on Fini
func resetTerminalMode() {}
