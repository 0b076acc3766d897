package luckytickets

import (
	"flag"
	"strconv"

	"github.com/katalvlaran/luckyticket/internal/config"
)

// Config holds luckytickets command configuration.
type Config struct {
	Alphabet   string `env:"LUCKYTICKETS_ALPHABET"          envDefault:"0123456789ABC"`
	Digits     int    `env:"LUCKYTICKETS_DIGITS"            envDefault:"13"`
	Checked    int    `env:"LUCKYTICKETS_CHECKED"           envDefault:"6"`
	Verbose    bool   `env:"LUCKYTICKETS_VERBOSE"`
	Parallel   bool   `env:"LUCKYTICKETS_PARALLEL_ORACLE"`
	Sequential bool   `env:"LUCKYTICKETS_SEQUENTIAL_ORACLE"`
	Workers    int    `env:"LUCKYTICKETS_WORKERS"`
}

// ParseConfig layers environment, flags and positional arguments, in that
// order, into a Config.
//
// Positional arguments are "L K log mt st": digit length, checked digits,
// diagnostic logging, parallel oracle, sequential oracle. Each is read as a
// small unsigned integer (non-zero meaning true for the switches); a value
// that does not parse is ignored and the previous setting stays.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Alphabet, "alphabet", cfg.Alphabet, "digit symbols, zero first")
	fs.IntVar(&cfg.Digits, "digits", cfg.Digits, "total digit length L")
	fs.IntVar(&cfg.Checked, "checked", cfg.Checked, "checked digits K on each side")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every counting step to stderr")
	fs.BoolVar(&cfg.Parallel, "parallel-oracle", cfg.Parallel, "verify with the parallel brute-force oracle")
	fs.BoolVar(&cfg.Sequential, "sequential-oracle", cfg.Sequential, "verify with the sequential brute-force oracle")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel oracle workers (0 = NumCPU)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	applyPositional(&cfg, fs.Args())
	return cfg, nil
}

func applyPositional(cfg *Config, args []string) {
	ints := []*int{&cfg.Digits, &cfg.Checked}
	switches := []*bool{&cfg.Verbose, &cfg.Parallel, &cfg.Sequential}

	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			continue
		}
		switch {
		case i < len(ints):
			*ints[i] = int(v)
		case i < len(ints)+len(switches):
			*switches[i-len(ints)] = v != 0
		}
	}
}
