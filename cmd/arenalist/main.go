// Command arenalist builds an arena backed list, runs list operations on it
// and reports how the allocator was used.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/arenalist/arena"
	"github.com/pavanmanishd/arenalist/list"
)

type config struct {
	Arena    arena.Config `yaml:"arena"`
	Values   intList      `yaml:"values"`
	Ops      stringList   `yaml:"ops"`
	Random   int          `yaml:"random"`
	Seed     uint64       `yaml:"seed"`
	Metrics  bool         `yaml:"metrics"`
	LogLevel string       `yaml:"log_level"`
}

func (cfg *config) RegisterFlags(f *flag.FlagSet) {
	cfg.Arena.RegisterFlags(f)
	f.Var(&cfg.Values, "values", "Comma separated integers to fill the list with.")
	f.Var(&cfg.Ops, "ops", "Comma separated operations applied in order: sort, unique, reverse, clear, pop, pop-front, push=V, push-front=V, remove=V, resize=N.")
	f.IntVar(&cfg.Random, "random", 0, "Append this many random integers in [0, 100) after -values.")
	f.Uint64Var(&cfg.Seed, "seed", 1, "Seed for -random.")
	f.BoolVar(&cfg.Metrics, "metrics", false, "Print the allocator metrics in the Prometheus text format.")
	f.StringVar(&cfg.LogLevel, "log.level", "info", "Only log messages with the given severity or above. Valid levels: [debug, info, warn, error]")
}

func (cfg *config) Validate() error {
	if err := cfg.Arena.Validate(); err != nil {
		return err
	}
	if cfg.Random < 0 {
		return errors.Errorf("random must not be negative, got %d", cfg.Random)
	}
	if _, err := levelFilter(cfg.LogLevel); err != nil {
		return err
	}
	for _, op := range cfg.Ops {
		if _, err := parseOp(op); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg config
	fs := flag.NewFlagSet("arenalist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config.file", "", "YAML file to load the configuration from. Flags override its values.")
	cfg.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configFile != "" {
		if err := loadConfig(*configFile, &cfg); err != nil {
			return err
		}
		// Parse again so flags given on the command line win over the file.
		if err := fs.Parse(args); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	filter, _ := levelFilter(cfg.LogLevel)
	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))
	logger = level.NewFilter(log.With(logger, "ts", log.DefaultTimestampUTC), filter)

	alloc, err := list.NewAllocator[int](cfg.Arena, logger)
	if err != nil {
		return err
	}
	defer alloc.Release()

	l := list.New(alloc)
	defer l.Release()

	values := slices.Clone(cfg.Values)
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	for i := 0; i < cfg.Random; i++ {
		values = append(values, rng.IntN(100))
	}
	for _, v := range values {
		if err := l.PushBack(v); err != nil {
			return err
		}
	}

	for _, raw := range cfg.Ops {
		o, _ := parseOp(raw)
		if err := o.apply(l); err != nil {
			return errors.Wrapf(err, "op %q", raw)
		}
		level.Debug(logger).Log("msg", "applied op", "op", raw, "len", l.Len())
	}

	fmt.Fprintln(stdout, slices.Collect(l.Values()))
	fmt.Fprintln(stdout, alloc.Metrics())

	if cfg.Metrics {
		return writeMetrics(stdout, alloc)
	}
	return nil
}

func loadConfig(path string, cfg *config) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return errors.Wrapf(err, "parse config file %s", path)
	}
	return nil
}

func writeMetrics(w io.Writer, src arena.MetricsSource) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(arena.NewCollector("list", src)); err != nil {
		return err
	}
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}

func levelFilter(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, errors.Errorf("unrecognized log level %q", name)
	}
}

// op is a single list operation given on the command line.
type op struct {
	name string
	arg  int
}

func parseOp(s string) (op, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), "=")
	o := op{name: name}

	switch name {
	case "sort", "unique", "reverse", "clear", "pop", "pop-front":
		if hasArg {
			return op{}, errors.Errorf("op %q takes no argument", name)
		}
		return o, nil
	case "push", "push-front", "remove", "resize":
		n, err := strconv.Atoi(arg)
		if !hasArg || err != nil {
			return op{}, errors.Errorf("op %q needs an integer argument, got %q", name, arg)
		}
		o.arg = n
		return o, nil
	default:
		return op{}, errors.Errorf("unknown op %q", s)
	}
}

func (o op) apply(l *list.List[int]) error {
	switch o.name {
	case "sort":
		list.Sort(l)
	case "unique":
		list.Unique(l)
	case "reverse":
		l.Reverse()
	case "clear":
		l.Clear()
	case "pop":
		l.PopBack()
	case "pop-front":
		l.PopFront()
	case "push":
		return l.PushBack(o.arg)
	case "push-front":
		return l.PushFront(o.arg)
	case "remove":
		list.Remove(l, o.arg)
	case "resize":
		return l.Resize(o.arg)
	}
	return nil
}

// intList is a comma separated list of integers flag.
type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(s string) error {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return errors.Wrapf(err, "parse %q", part)
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

// stringList is a comma separated list of strings flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(s string) error {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*l = out
	return nil
}
