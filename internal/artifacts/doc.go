// Package artifacts renders and writes the files the installation leaves
// behind: the launcher script in the user's bin directory, the desktop menu
// entry, and the PATH line appended to the shell profile.
//
// Rendering is pure string templating over structured inputs so it can be
// tested without touching the filesystem.
package artifacts
