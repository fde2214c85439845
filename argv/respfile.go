package argv

import (
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
)

// expandResponseFiles replaces every @file argument with the tokens read
// from that file. Expansion is exactly one level deep: spliced tokens are
// never re-expanded, so a file containing "@inner" yields the literal
// token "@inner". An unreadable file is fatal and aborts the parse.
func expandResponseFiles(args []string) ([]string, error) {
	expanded := false
	for _, arg := range args {
		if isResponseFileRef(arg) {
			expanded = true
			break
		}
	}
	if !expanded {
		return args, nil
	}

	out := make([]string, 0, len(args))
	for _, arg := range args {
		if !isResponseFileRef(arg) {
			out = append(out, arg)
			continue
		}
		path := arg[1:]
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, newParseError(ErrResponseFileNotFound,
				"cannot read response file '"+path+"'").withToken(arg).withCause(err)
		}
		out = append(out, splitResponseFile(string(data))...)
	}
	return out, nil
}

// isResponseFileRef reports whether arg names a response file. A bare "@"
// stays a literal argument.
func isResponseFileRef(arg string) bool {
	return len(arg) > 1 && arg[0] == '@'
}

// splitResponseFile tokenizes file contents, honoring shell-style quoting.
// Malformed quoting degrades to a plain whitespace split rather than
// failing the parse.
func splitResponseFile(content string) []string {
	words, err := shellquote.Split(content)
	if err != nil {
		return strings.Fields(content)
	}
	return words
}
