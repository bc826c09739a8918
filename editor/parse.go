package editor

import (
	"strconv"
	"strings"
)

// Arg is one whitespace-separated parameter.
// Tokens made only of ASCII digits are also available as Num.
type Arg struct {
	Text  string
	Num   int
	IsNum bool
}

// Parse splits line into a command and its parameters.
// An empty or whitespace-only line yields cmd == "".
func Parse(line string) (cmd string, args []Arg) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	args = make([]Arg, 0, len(fields)-1)
	for _, f := range fields[1:] {
		args = append(args, parseArg(f))
	}
	return fields[0], args
}

func parseArg(tok string) Arg {
	a := Arg{Text: tok}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return a
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		// digits only but overflowing int
		return a
	}
	a.Num, a.IsNum = n, true
	return a
}
