// Package shell provides a small Runner abstraction over os/exec so that
// packages shelling out to pacman, wine and winetricks can be tested with a
// fake runner.
package shell
