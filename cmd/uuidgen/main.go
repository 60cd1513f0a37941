// Command uuidgen generates and inspects UUIDs.
//
//	uuidgen --version 7 --count 3
//	uuidgen --version 5 --namespace url --name https://example.com --format B
//	uuidgen parse 017f22e2-79b0-7cc3-98c4-dc0c0c07398f
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/Lzww0608/rfcuuid"
)

type cli struct {
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"UUIDGEN_LOG_LEVEL" help:"Log level (${enum})."`

	Gen   genCmd   `cmd:"" default:"withargs" help:"Generate UUIDs."`
	Parse parseCmd `cmd:"" help:"Print the version, variant, fields and embedded time of UUIDs."`
}

// runEnv is bound into every command's Run method.
type runEnv struct {
	out io.Writer
	log *logrus.Logger
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.Fatalf("uuidgen: %s", err)
	}
}

func run(args []string, out io.Writer, log *logrus.Logger) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("uuidgen"),
		kong.Description("Generate and inspect RFC 4122 / RFC 9562 UUIDs."),
		kong.Writers(out, log.Out),
		kong.ShortUsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		return fmt.Errorf("unable to create CLI parser: %w", err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return fmt.Errorf("unable to parse arguments: %w", err)
	}

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.Debugf("running %q", ctx.Command())

	return ctx.Run(&runEnv{out: out, log: log})
}

type genCmd struct {
	Version   int    `short:"v" default:"4" help:"UUID version: 1, 3, 4, 5, 6 or 7."`
	Count     int    `short:"n" default:"1" help:"Number of UUIDs to print."`
	Format    string `short:"f" default:"D" enum:"N,D,B,P" env:"UUIDGEN_FORMAT" help:"Output layout (${enum})."`
	Namespace string `default:"dns" help:"Namespace for versions 3 and 5: dns, url, oid, x500 or a UUID."`
	Name      string `help:"Name for versions 3 and 5."`
	V7Mode    string `name:"v7-mode" default:"random" enum:"random,counter,precision" help:"How version 7 fills rand_a (${enum})."`
}

func (c *genCmd) Run(env *runEnv) error {
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}

	next, err := c.source()
	if err != nil {
		return err
	}

	env.log.WithFields(logrus.Fields{
		"version": c.Version,
		"count":   c.Count,
		"format":  c.Format,
	}).Debug("generating")

	for range c.Count {
		uuid, err := next()
		if err != nil {
			return fmt.Errorf("unable to generate UUID: %w", err)
		}
		s, err := uuid.Encode(rfcuuid.Layout(c.Format))
		if err != nil {
			return err
		}
		fmt.Fprintln(env.out, s)
	}
	return nil
}

// source returns the generating function selected by the flags.
func (c *genCmd) source() (func() (rfcuuid.UUID, error), error) {
	mode, err := parseRandAMode(c.V7Mode)
	if err != nil {
		return nil, err
	}
	gen := rfcuuid.NewGenerator(rfcuuid.WithRandAMode(mode))

	switch c.Version {
	case 1:
		return gen.NewV1, nil
	case 4:
		return gen.NewV4, nil
	case 6:
		return gen.NewV6, nil
	case 7:
		return gen.NewV7, nil
	case 3, 5:
		if c.Name == "" {
			return nil, fmt.Errorf("version %d requires --name", c.Version)
		}
		space, err := lookupNamespace(c.Namespace)
		if err != nil {
			return nil, err
		}
		hash := rfcuuid.NewV5
		if c.Version == 3 {
			hash = rfcuuid.NewV3
		}
		uuid := hash(space, c.Name)
		return func() (rfcuuid.UUID, error) { return uuid, nil }, nil
	default:
		return nil, fmt.Errorf("unsupported version %d", c.Version)
	}
}

func parseRandAMode(s string) (rfcuuid.RandAMode, error) {
	for _, m := range []rfcuuid.RandAMode{rfcuuid.RandARandom, rfcuuid.RandACounter, rfcuuid.RandAClockPrecision} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown v7 mode %q", s)
}

func lookupNamespace(s string) (rfcuuid.UUID, error) {
	switch strings.ToLower(s) {
	case "dns":
		return rfcuuid.NamespaceDNS, nil
	case "url":
		return rfcuuid.NamespaceURL, nil
	case "oid":
		return rfcuuid.NamespaceOID, nil
	case "x500":
		return rfcuuid.NamespaceX500, nil
	}
	space, err := rfcuuid.Parse(s)
	if err != nil {
		return rfcuuid.Nil, fmt.Errorf("invalid namespace %q: %w", s, err)
	}
	return space, nil
}

type parseCmd struct {
	UUIDs []string `arg:"" name:"uuid" help:"UUIDs to inspect."`
}

func (c *parseCmd) Run(env *runEnv) error {
	failed := 0
	for _, s := range c.UUIDs {
		uuid, err := rfcuuid.Parse(s)
		if err != nil {
			env.log.WithField("input", s).WithError(err).Error("unable to parse UUID")
			failed++
			continue
		}
		describe(env.out, uuid)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be parsed", failed, len(c.UUIDs))
	}
	return nil
}

func describe(w io.Writer, uuid rfcuuid.UUID) {
	f := uuid.Fields()
	fmt.Fprintf(w, "uuid:      %s\n", uuid)
	fmt.Fprintf(w, "version:   %s\n", uuid.Version())
	fmt.Fprintf(w, "variant:   %s\n", uuid.Variant())
	fmt.Fprintf(w, "fields:    %08x %04x %04x %02x %02x %x\n",
		f.TimeLow, f.TimeMid, f.TimeHiAndVersion, f.ClockSeqHiAndReserved, f.ClockSeqLow, f.Node)
	if t, err := uuid.Time(); err == nil {
		fmt.Fprintf(w, "time:      %s\n", t.Format("2006-01-02T15:04:05.0000000Z07:00"))
	}
	fmt.Fprintln(w)
}
