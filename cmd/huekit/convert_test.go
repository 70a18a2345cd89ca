package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	huekiterrors "github.com/alexisbeaulieu97/huekit/pkg/errors"
)

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvertCommand(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "hex to rgb", args: []string{"convert", "#FF0000", "--to", "rgb"}, want: "rgb(255, 0, 0)\n"},
		{name: "hex with alpha to hsl", args: []string{"convert", "#FF000080", "--to", "hsl", "--alpha"}, want: "hsla(0, 100%, 50%, 0.502)\n"},
		{name: "rgb to hex by default", args: []string{"convert", "rgb(0, 128, 255)"}, want: "#0080FF\n"},
		{name: "mode names are case insensitive", args: []string{"convert", "#000", "-t", "HSV"}, want: "hsv(0, 0%, 0%)\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := executeCommand(tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, stdout)
		})
	}
}

func TestConvertCommandRejectsMalformedColor(t *testing.T) {
	stdout, _, err := executeCommand("convert", "rgb(300, 0, 0)", "--to", "hex")
	require.Empty(t, stdout)
	require.ErrorIs(t, err, huekiterrors.ErrMalformedColor)
}

func TestConvertCommandRejectsUnknownMode(t *testing.T) {
	_, _, err := executeCommand("convert", "#FFF", "--to", "cmyk")
	require.ErrorContains(t, err, "unknown color mode")
}

func TestConvertCommandRequiresOneArgument(t *testing.T) {
	_, _, err := executeCommand("convert")
	require.Error(t, err)
}
