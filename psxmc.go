/*
Package psxmc is a library for reading, editing and writing PSX/PS1 memory
card images, including the raw .mcr dumps written by most emulators, and
for extracting the icon artwork embedded in each save.
*/
package psxmc

import "log"

// Scanner walks directory trees for memory card images and indexes their
// saves into a SaveDB.
type Scanner struct {
	db     *SaveDB
	logger *log.Logger
}

func NewScanner(db *SaveDB, logger *log.Logger) *Scanner {
	return &Scanner{
		db:     db,
		logger: logger,
	}
}
