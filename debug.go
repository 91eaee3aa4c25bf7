package main

import (
	"log"

	"github.com/milk9111/stormtravel/system"
	"golang.design/x/clipboard"
)

var clipboardOK bool

func initClipboard() {
	if err := clipboard.Init(); err != nil {
		log.Printf("debug: clipboard unavailable: %v", err)
		return
	}
	clipboardOK = true
}

// copyDebug logs the controller state and copies it to the clipboard.
func copyDebug(s system.Snapshot) {
	line := s.String()
	log.Printf("debug: %s", line)
	if clipboardOK {
		clipboard.Write(clipboard.FmtText, []byte(line))
	}
}
