/*
Package request defines the parsed form of one line of user input.
*/
package request

import "strings"

/*
Request is a line of input split into a command key and its arguments.
Key is never empty for a Request produced by Parse.
*/
type Request struct {
	Key  string
	Args []string
}

// New creates a Request from a key and its arguments.
func New(key string, args ...string) Request {
	return Request{Key: key, Args: args}
}

// Parse tokenizes a line on whitespace. The second return value is false when
// the line holds no tokens, in which case no Request is built.
func Parse(line string) (Request, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Request{}, false
	}
	return Request{Key: fields[0], Args: fields[1:]}, true
}

func (r Request) String() string {
	if len(r.Args) == 0 {
		return r.Key
	}
	return r.Key + " " + strings.Join(r.Args, " ")
}
