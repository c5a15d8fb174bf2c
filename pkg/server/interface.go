/*
Package server implements a msgpack IPC mode for nutrisearch.

Requests are read from stdin and answered on stdout, one msgpack value
each, in order. Every request names an action and carries an ID that is
echoed back:

	{"id": "r1", "action": "search", "q": "egg", "l": 5}
	{"id": "r1", "m": [{"row": 0, "food": "Egg"}, {"row": 7, "food": "Eggplant"}], "c": 2, "total": 2, "t": 85}

	{"id": "r2", "action": "profile", "row": 7}
	{"id": "r2", "row": 7, "food": "Eggplant", "majors": [...], "others": [...]}

	{"id": "r3", "action": "complete", "q": "egg n", "l": 3}
	{"id": "r4", "action": "info"}

A search that finds a single exact name sets "exact". A profile may be
requested by row id or by exact food name in "q". Failures are answered
with an ErrorResponse carrying a 400 or 404 code; the server keeps
serving until stdin is closed.
*/
package server

// Actions understood by the server.
const (
	ActionSearch   = "search"
	ActionProfile  = "profile"
	ActionComplete = "complete"
	ActionInfo     = "info"
)

// Request is the envelope of every message sent to the server.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`
	Query  string `msgpack:"q,omitempty"`
	Row    *int   `msgpack:"row,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// Match is one search hit.
type Match struct {
	Row  int    `msgpack:"row"`
	Food string `msgpack:"food"`
}

// SearchResponse lists the selectable matches of a search.
type SearchResponse struct {
	ID      string  `msgpack:"id"`
	Matches []Match `msgpack:"m"`
	Count   int     `msgpack:"c"`
	Total   int     `msgpack:"total"`
	Exact   bool    `msgpack:"exact,omitempty"`
	// TimeTaken is in microseconds.
	TimeTaken int64 `msgpack:"t"`
}

// NutrientEntry is one profile line.
type NutrientEntry struct {
	Name    string  `msgpack:"n"`
	Value   float64 `msgpack:"v"`
	Numeric bool    `msgpack:"num"`
	Missing bool    `msgpack:"missing,omitempty"`
	Raw     string  `msgpack:"raw,omitempty"`
	Unit    string  `msgpack:"u,omitempty"`
}

// ProfileResponse is the nutrient breakdown of one row.
type ProfileResponse struct {
	ID     string          `msgpack:"id"`
	Row    int             `msgpack:"row"`
	Food   string          `msgpack:"food"`
	Majors []NutrientEntry `msgpack:"majors"`
	Others []NutrientEntry `msgpack:"others"`
	// Detail explains an empty Others list.
	Detail string `msgpack:"detail,omitempty"`
}

// CompleteResponse lists food names for a prefix.
type CompleteResponse struct {
	ID    string   `msgpack:"id"`
	Names []string `msgpack:"names"`
	Count int      `msgpack:"c"`
}

// InfoResponse describes the loaded table.
type InfoResponse struct {
	ID      string   `msgpack:"id"`
	Rows    int      `msgpack:"rows"`
	Columns []string `msgpack:"columns"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
