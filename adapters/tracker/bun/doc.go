// Package trackerbun persists render history in a Bun-backed
// database so export runs survive process restarts.
package trackerbun
