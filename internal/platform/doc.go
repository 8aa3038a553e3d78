// Package platform verifies host preconditions: the distribution the
// installer supports, that the process is not running as root, and that
// required tools resolve on PATH.
package platform
