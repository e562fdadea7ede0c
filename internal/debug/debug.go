// Package debug holds environment controlled tracing switches.
package debug

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tipee-sa/yamlser/tree"
)

type debug struct {
	Encode bool
	Render bool
}

var (
	d   *debug
	out io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Encode = boolEnv("YAMLSER_DEBUG_ENCODE")
	d.Render = boolEnv("YAMLSER_DEBUG_RENDER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Set overrides both switches and returns a func restoring the previous ones.
func Set(encode, render bool) (restore func()) {
	prev := *d
	d.Encode, d.Render = encode, render
	return func() { *d = prev }
}

// SetOutput redirects Logf and returns a func restoring the previous writer.
func SetOutput(w io.Writer) (restore func()) {
	prev := out
	out = w
	return func() { out = prev }
}

func Encode() bool {
	return d.Encode
}

func Render() bool {
	return d.Render
}

// Logf writes to stderr unless redirected by SetOutput. *tree.Node arguments are printed in flow style.
func Logf(msg string, args ...any) {
	for i := range args {
		if n, ok := args[i].(*tree.Node); ok {
			args[i] = n.String()
		}
	}
	fmt.Fprintf(out, msg, args...)
}
