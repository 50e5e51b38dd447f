package domain

import (
	"strconv"
	"strings"
)

// Joke types returned by JokeAPI.
const (
	JokeTypeSingle  = "single"
	JokeTypeTwoPart = "twopart"
)

// Joke is the JokeAPI v2 payload.
type Joke struct {
	Error    bool      `json:"error"`
	Category string    `json:"category"`
	Type     string    `json:"type"`
	Joke     string    `json:"joke,omitempty"`
	Setup    string    `json:"setup,omitempty"`
	Delivery string    `json:"delivery,omitempty"`
	Flags    JokeFlags `json:"flags"`
	ID       int       `json:"id"`
	Safe     bool      `json:"safe"`
	Lang     string    `json:"lang"`
}

// JokeFlags marks content categories a client may want to filter.
type JokeFlags struct {
	NSFW      bool `json:"nsfw"`
	Religious bool `json:"religious"`
	Political bool `json:"political"`
	Racist    bool `json:"racist"`
	Sexist    bool `json:"sexist"`
	Explicit  bool `json:"explicit"`
}

// Key is the id used by the joke store.
func (j Joke) Key() string {
	return strconv.Itoa(j.ID)
}

// Text renders the joke body; two-part jokes are joined with a newline.
func (j Joke) Text() string {
	if strings.EqualFold(j.Type, JokeTypeTwoPart) {
		return strings.TrimSpace(j.Setup) + "\n" + strings.TrimSpace(j.Delivery)
	}
	return strings.TrimSpace(j.Joke)
}
