package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/obj"
)

// parseScript reads whitespace separated moves. Each token is a direction
// accepted by common.ParseDirection, or "restart". A '#' starts a comment
// that runs to the end of the line.
func parseScript(r io.Reader) ([]obj.Event, error) {
	var events []obj.Event
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text, _, _ := strings.Cut(sc.Text(), "#")
		for _, tok := range strings.Fields(text) {
			if strings.EqualFold(tok, "restart") {
				events = append(events, obj.RestartEvent())
				continue
			}
			dir := common.ParseDirection(strings.ToLower(tok))
			if dir == common.DirNone {
				return nil, fmt.Errorf("headless: line %d: unknown move %q", line, tok)
			}
			events = append(events, obj.MoveEvent(dir))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("headless: read script: %w", err)
	}
	return events, nil
}
