package wix

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// runHook executes a [wix.hooks] shell snippet from the manifest. The
// snippet runs through the embedded shell interpreter so hooks behave the
// same on Windows and everywhere else.
func runHook(ctx context.Context, name, script, dir string, captureOutput bool) error {
	if script == "" {
		return nil
	}

	log(ctx).Info().Str("hook", name).Msg("running hook")

	parser := syntax.NewParser()
	prog, err := parser.Parse(strings.NewReader(script), "wix.hooks."+name)
	if err != nil {
		return eris.Wrapf(err, "failed to parse the '%s' hook", name)
	}

	var stdout, stderr io.Writer = os.Stdout, os.Stderr
	if captureOutput {
		stdout = io.Discard
		stderr = io.Discard
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, stdout, stderr),
		interp.Params("-e"),
	)
	if err != nil {
		return eris.Wrapf(err, "failed to initialize the runner for the '%s' hook", name)
	}

	printer := syntax.NewPrinter(syntax.Minify(true))
	strBuffer := strings.Builder{}

	for _, stmt := range prog.Stmts {
		strBuffer.Reset()
		if err := printer.Print(&strBuffer, stmt); err == nil {
			log(ctx).Debug().
				Str("hook", name).
				Bool("command", true).
				Msg(strBuffer.String())
		}

		if err := runner.Run(ctx, stmt); err != nil {
			return eris.Wrapf(err, "the '%s' hook failed", name)
		}

		if runner.Exited() {
			return nil
		}
	}

	return nil
}
