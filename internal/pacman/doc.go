// Package pacman wraps the Arch Linux package manager: querying the set of
// installed packages and batch-installing missing ones via sudo.
package pacman
