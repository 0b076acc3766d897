package luckytickets

import (
	"context"
	"fmt"
	"io"
	"log"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/luckyticket/lucky"
	"github.com/katalvlaran/luckyticket/radix"
)

// Run executes the luckytickets command: it counts the lucky numbers for
// cfg and cross-checks the result with the oracles cfg enables.
// The report goes to out; diagnostics go to errOut when cfg.Verbose is set.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	a, err := radix.NewAlphabet(cfg.Alphabet)
	if err != nil {
		return fmt.Errorf("alphabet: %w", err)
	}

	logOut := io.Discard
	if cfg.Verbose {
		logOut = errOut
	}
	logger := log.New(logOut, "", 0)

	rep, err := lucky.Verify(ctx, a, cfg.Digits, cfg.Checked,
		lucky.WithLogger(logger),
		lucky.WithWorkers(cfg.Workers),
		lucky.WithOracles(cfg.Sequential, cfg.Parallel),
	)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(out, "lucky %d-digit numbers in base %d (%d checked digits per side): %s\n",
		cfg.Digits, a.Base(), cfg.Checked, rep.Count.String())
	if rep.Sequential != nil {
		p.Fprintf(out, "sequential oracle: %d\n", *rep.Sequential)
	}
	if rep.Parallel != nil {
		p.Fprintf(out, "parallel oracle: %d\n", *rep.Parallel)
	}

	return nil
}
