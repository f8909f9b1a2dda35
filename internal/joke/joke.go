// Package joke fetches random jokes from the official joke API and classifies
// every way a fetch can go wrong.
package joke

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Joke is a single setup/punchline pair returned by the joke service.
type Joke struct {
	ID        int    `json:"id"`
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
}

// String renders the joke as two lines: setup then punchline.
func (j Joke) String() string {
	return j.Setup + "\n" + j.Punchline
}

// Decode parses a response body into a Joke. Unknown fields are ignored;
// a body without a setup or punchline is rejected.
func Decode(body []byte) (Joke, error) {
	var j Joke
	if err := json.Unmarshal(body, &j); err != nil {
		return Joke{}, &ParseError{Err: err}
	}
	j.Setup = strings.TrimSpace(j.Setup)
	j.Punchline = strings.TrimSpace(j.Punchline)

	var missing []string
	if j.Setup == "" {
		missing = append(missing, "setup")
	}
	if j.Punchline == "" {
		missing = append(missing, "punchline")
	}
	if len(missing) > 0 {
		return Joke{}, &ParseError{Err: fmt.Errorf("missing %s", strings.Join(missing, ", "))}
	}
	return j, nil
}
