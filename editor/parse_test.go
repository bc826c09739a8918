package editor_test

import (
	"testing"

	"github.com/katalvlaran/pixgrid/editor"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		line string
		cmd  string
		args []editor.Arg
	}{
		{"Words", "cmd p1 p2 p3", "cmd", []editor.Arg{{Text: "p1"}, {Text: "p2"}, {Text: "p3"}}},
		{"Digits", "cmd p1 2 45", "cmd", []editor.Arg{{Text: "p1"}, {Text: "2", Num: 2, IsNum: true}, {Text: "45", Num: 45, IsNum: true}}},
		{"Negative", "I 250 -2", "I", []editor.Arg{{Text: "250", Num: 250, IsNum: true}, {Text: "-2"}}},
		{"ExtraSpace", "  L\t1   2 A ", "L", []editor.Arg{{Text: "1", Num: 1, IsNum: true}, {Text: "2", Num: 2, IsNum: true}, {Text: "A"}}},
		{"NoArgs", "S", "S", []editor.Arg{}},
		{"Overflow", "I 99999999999999999999999 1", "I", []editor.Arg{{Text: "99999999999999999999999"}, {Text: "1", Num: 1, IsNum: true}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, args := editor.Parse(tc.line)
			require.Equal(t, tc.cmd, cmd)
			require.Equal(t, tc.args, args)
		})
	}
}

func TestParse_Blank(t *testing.T) {
	for _, ws := range []string{"", " ", "\t", " \t\r"} {
		cmd, args := editor.Parse(ws)
		require.Empty(t, cmd)
		require.Empty(t, args)
	}
}
