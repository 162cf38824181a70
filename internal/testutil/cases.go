// Package testutil defines support code for unit tests.
package testutil

import (
	"strings"

	"github.com/google/go-cmp/cmp"
)

// A Case is a JSON document and its rendering with the default printer
// options.
type Case struct {
	Name  string
	Input string
	Want  string
}

// Cases are shared golden inputs for the printer and the command.
var Cases = []Case{
	{"EmptyObject", `{}`, `{}`},
	{"EmptyArray", ` [ ] `, `[]`},
	{"True", "\t true \n", `true`},
	{"False", `false`, `false`},
	{"Null", `null`, `null`},
	{"Zero", `0`, `0`},
	{"String", `"abc"`, `"abc"`},

	{"MemberOrder", `{"b":1,"a":2,"c":3}`, `{
  "b": 1,
  "a": 2,
  "c": 3
}`},

	{"Nested", `{"a":[1,{"b":null}],"c":{},"d":[]}`, `{
  "a": [
    1,
    {
      "b": null
    }
  ],
  "c": {},
  "d": []
}`},

	{"Numbers", `[0, -0, 1.50, 2.5e3, 1E-2, -12.0e+1, 100, 0.0, 1e007]`, `[
  0,
  0,
  150e-2,
  25e2,
  1e-2,
  -120,
  100,
  0e-1,
  1e7
]`},

	{"LongNumber", `123456789012345678901234567890.0001`,
		`1234567890123456789012345678900001e-4`},

	{"Escapes", `"tab\there \"q\" \\ \/ \b\f\n\r \u00e9 \u20AC"`,
		`"tab\there \"q\" \\ / \b\f\n\r \u00e9 \u20ac"`},

	{"RawControl", "\"a\x01b\x1fc\"", `"a\u0001b\u001fc"`},
	{"RawUTF8", "\"caf\u00e9 \u2603\"", `"caf\u00e9 \u2603"`},
	{"Astral", "\"\U0001f600\"", `"\ud83d\ude00"`},
	{"EscapedPair", `"\uD83D\uDE00"`, `"\ud83d\ude00"`},
	{"LoneSurrogate", `"\udc00x\uD800"`, `"\udc00x\ud800"`},

	{"KeyEscapes", `{"\u00e9\n":"v"}`, `{
  "\u00e9\n": "v"
}`},

	{"ByteOrderMark", "\xef\xbb\xbf[1, \"x\"]", `[
  1,
  "x"
]`},

	{"Whitespace", " \r\n\t{ \"a\" : [ true , false ] } \n\n", `{
  "a": [
    true,
    false
  ]
}`},
}

// DiffLines reports differences between the lines of want and got, ignoring
// leading and trailing whitespace. It returns "" if they are equal.
func DiffLines(want, got string) string {
	return cmp.Diff(strings.Split(strings.TrimSpace(want), "\n"),
		strings.Split(strings.TrimSpace(got), "\n"))
}
