// Package dialog shows blocking user prompts through the zenity utility,
// degrading to plain terminal messages when no display is available.
package dialog
