/*
Package server implements msgpack IPC for index queries.

Clients write msgpack maps to stdin and read msgpack maps from stdout, one
response per request, in request order. The first value written by the server
is a ready marker:

	{"status": "ready"}

A query request carries the prefix to count:

	{"id": "q1", "q": "ca"}

and is answered with the count, plus the entry position when the query is a
complete entry (x is true and o, n hold the offset and line length):

	{"id": "q1", "q": "ca", "c": 2, "x": false, "o": -1, "n": 0, "t": 12}
	{"id": "q2", "q": "cat", "c": 1, "x": true, "o": 0, "n": 8, "t": 9}

Entries under a prefix can be listed, and index statistics requested:

	{"id": "l1", "action": "list", "q": "ca", "l": 10}
	{"id": "s1", "action": "stats"}

Failed requests are answered with an error message and code:

	{"id": "q3", "e": "query exceeds maximum length of 4096 bytes", "c": 413}

t is the time spent answering, in microseconds.
*/
package server

// Request is any client message. Action is empty or "query" for queries.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Query  string `msgpack:"q"`
	Limit  int    `msgpack:"l,omitempty"`
}

// ReadyResponse is written once when the server starts.
type ReadyResponse struct {
	Status string `msgpack:"status"`
}

// QueryResponse answers a query request.
type QueryResponse struct {
	ID         string `msgpack:"id"`
	Query      string `msgpack:"q"`
	Count      int    `msgpack:"c"`
	Exact      bool   `msgpack:"x"`
	Offset     int    `msgpack:"o"`
	LineLength int    `msgpack:"n"`
	TimeTaken  int64  `msgpack:"t"`
}

// ListEntry is a single complete entry.
type ListEntry struct {
	Text       string `msgpack:"w"`
	Offset     int    `msgpack:"o"`
	LineLength int    `msgpack:"n"`
}

// ListResponse answers a list request.
type ListResponse struct {
	ID        string      `msgpack:"id"`
	Query     string      `msgpack:"q"`
	Entries   []ListEntry `msgpack:"s"`
	Count     int         `msgpack:"c"`
	TimeTaken int64       `msgpack:"t"`
}

// StatsResponse answers a stats request.
type StatsResponse struct {
	ID      string `msgpack:"id"`
	Status  string `msgpack:"status"`
	Entries int    `msgpack:"entries"`
	Nodes   int    `msgpack:"nodes,omitempty"`
	Backend string `msgpack:"backend"`
	Served  int    `msgpack:"served"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// Error codes used in ErrorResponse.
const (
	CodeBadRequest    = 400
	CodeQueryTooLong  = 413
	CodeInternalError = 500
)
