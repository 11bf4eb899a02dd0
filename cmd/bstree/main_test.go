package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestMainErr_Stdin(t *testing.T) {
	log, _ := test.NewNullLogger()
	var out bytes.Buffer
	err := mainErr(options{Kind: "int"}, strings.NewReader("7\n3\n7\n2\n"), &out, log)
	require.NoError(t, err)
	assert.Equal(t, "2  3  7  \n", out.String())
}

func TestMainErr_Files(t *testing.T) {
	a := writeFile(t, "a.txt", "1 apple\n3 cherry\n")
	b := writeFile(t, "b.txt", "2 banana\n3 cranberry\nnot a record\n")
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	var out bytes.Buffer
	err := mainErr(options{Kind: "entry", Files: []string{a, b}}, strings.NewReader("9 ignored"), &out, log)
	require.NoError(t, err)
	assert.Equal(t, "1:apple  2:banana  3:cherry  \n", out.String())

	var loaded []logrus.Fields
	for _, e := range hook.AllEntries() {
		if e.Message == "records loaded" {
			loaded = append(loaded, e.Data)
		}
	}
	require.Len(t, loaded, 2)
	assert.Equal(t, uint(2), loaded[0]["added"])
	assert.Equal(t, uint(1), loaded[1]["added"])
}

func TestMainErr_Shape(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()
	log, _ := test.NewNullLogger()
	var out bytes.Buffer
	err := mainErr(options{Kind: "word", Shape: true}, strings.NewReader("m c x a"), &out, log)
	require.NoError(t, err)
	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "a  c  m  x  ", lines[0])
	s := out.String()
	for _, n := range []string{"* m", "L c", "L a", "R x"} {
		assert.Contains(t, s, n)
	}
	assert.Less(t, strings.Index(s, "* m"), strings.Index(s, "L c"))
	assert.Less(t, strings.Index(s, "L a"), strings.Index(s, "R x"))
}

func TestMainErr_Empty(t *testing.T) {
	log, _ := test.NewNullLogger()
	var out bytes.Buffer
	require.NoError(t, mainErr(options{Kind: "float", Shape: true}, strings.NewReader(""), &out, log))
	assert.Equal(t, "\n", out.String())
}

func TestMainErr_Errors(t *testing.T) {
	log, _ := test.NewNullLogger()
	var out bytes.Buffer
	err := mainErr(options{Kind: "tuple"}, strings.NewReader(""), &out, log)
	assert.ErrorContains(t, err, "unknown record kind")

	err = mainErr(options{Kind: "int", Files: []string{filepath.Join(t.TempDir(), "missing")}}, nil, &out, log)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, out.String())
}

func TestNewLogger(t *testing.T) {
	var b bytes.Buffer
	l := newLogger(&b, false)
	l.Debug("hidden")
	l.Warn("shown")
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "shown")
	assert.True(t, newLogger(&b, true).IsLevelEnabled(logrus.DebugLevel))
}
