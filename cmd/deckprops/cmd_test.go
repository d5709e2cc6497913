package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const talksYAML = `kind: pyyyc
fields:
  presenter: Alice
  topic: Decorators
  time_limit: 20.0
  nslides: 10
  slide_color: red
---
kind: yycjs
fields:
  presenter: Bob
  topic: Promises
  time_limit: 30.0
  nslides: 10
  slide_color: [0, 0, 255]
`

const brokenYAML = `kind: person
fields:
  name: Carol
---
kind: free_spirit
fields:
  presenter: Dan
  favorite_color: purple
`

// executeCommand runs a fresh command tree with an isolated home directory.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	buf := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
