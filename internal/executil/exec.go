package executil

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrLaunch marks a program that could not be started at all, as opposed to
// one that ran and exited nonzero.
var ErrLaunch = errors.New("cannot launch")

type Result struct {
	Stdout string
	Stderr string
	Code   int
}

// Run spawns name with args directly, no shell in between, so every argument
// reaches the program verbatim. Stdin is empty; both output streams are
// captured. A nonzero exit is reported through Code and is not an error: the
// returned error is non-nil only when the process never started.
func Run(name string, args ...string) (Result, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader("")
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err := cmd.Run()
	code := 0
	if err != nil {
		var ee *exec.ExitError
		if !errors.As(err, &ee) {
			return Result{}, fmt.Errorf("%w: %s: %v", ErrLaunch, name, err)
		}
		code = ee.ExitCode()
	}
	return Result{Stdout: out.String(), Stderr: errb.String(), Code: code}, nil
}
