package interfacer

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/interfacer/interfacer/cliutil/flagx"
	"github.com/spf13/pflag"
)

// Action says what an option does when it is seen on the command
// line.
type Action string

const (
	// Store keeps the option argument. It is the default action.
	Store Action = "store"
	// StoreTrue sets the destination to true.
	StoreTrue Action = "store_true"
	// StoreFalse sets the destination to false. The destination is
	// true when the option is absent.
	StoreFalse Action = "store_false"
	// Count counts the occurrences of the option.
	Count Action = "count"
	// Append collects every argument given to a repeated option.
	Append Action = "append"
)

// Type is the type of the argument of a Store option.
type Type string

const (
	String Type = "string"
	Int    Type = "int"
	// Path arguments are converted to absolute paths.
	Path Type = "path"
)

// OptionConfig is the parser configuration of a single option.
type OptionConfig struct {
	// Dest is the name the parsed value is available under. Defaults
	// to the long name with dashes turned into underscores, or the
	// short name if there is no long one.
	Dest string
	Help string
	// Default is used when the option is absent, converted per Type.
	// An empty Default means the option has no value unless given.
	Default string
	Action  Action
	Type    Type
}

// OptionSpec declares one option of a SubCommand, in both its short
// ("-n") and long ("--name") forms. Either form may be empty, but not
// both.
//
// An option with only a short form also answers to its destination
// as a long form, and is shown that way in the usage text: "-v" with
// no Dest is accepted as "--v" too.
type OptionSpec struct {
	Short  string
	Long   string
	Config OptionConfig
}

// Option is shorthand for building an OptionSpec.
func Option(short, long string, config OptionConfig) OptionSpec {
	return OptionSpec{Short: short, Long: long, Config: config}
}

func (o OptionSpec) names() (short string, long string, err error) {
	if o.Short != "" {
		short = strings.TrimPrefix(o.Short, "-")
		if len(short) != 1 || !strings.HasPrefix(o.Short, "-") {
			return "", "", fmt.Errorf("invalid short option %q", o.Short)
		}
	}
	if o.Long != "" {
		long = strings.TrimPrefix(o.Long, "--")
		if long == "" || !strings.HasPrefix(o.Long, "--") || strings.HasPrefix(long, "-") {
			return "", "", fmt.Errorf("invalid long option %q", o.Long)
		}
	}
	if short == "" && long == "" {
		return "", "", fmt.Errorf("option has neither a short nor a long form")
	}
	return short, long, nil
}

func (o OptionSpec) dest(short, long string) string {
	if o.Config.Dest != "" {
		return o.Config.Dest
	}
	if long != "" {
		return strings.Replace(long, "-", "_", -1)
	}
	return short
}

// binding ties an option destination to the flag that fills it.
type binding struct {
	dest string
	flag string
	get  func() interface{}
	// present even when the flag was not given
	always bool
}

// optionParser adapts a pflag.FlagSet to the OptionSpec model.
type optionParser struct {
	usage    string
	flags    *pflag.FlagSet
	bindings []binding
	help     *bool
}

func newOptionParser(usage string) *optionParser {
	flags := pflag.NewFlagSet(usage, pflag.ContinueOnError)
	// errors and usage are reported by Dispatch
	flags.SetOutput(ioutil.Discard)
	flags.SortFlags = false
	return &optionParser{usage: usage, flags: flags}
}

// add registers an option. Invalid declarations are programming
// errors in the plugin and panic.
func (p *optionParser) add(o OptionSpec) {
	short, long, err := o.names()
	if err != nil {
		panicf("%v", err)
	}
	dest := o.dest(short, long)
	for _, b := range p.bindings {
		if b.dest == dest {
			panicf("option destination %q declared twice", dest)
		}
	}
	name := long
	if name == "" {
		// every flag needs a long name; the destination is the alias
		name = dest
	}

	cfg := o.Config
	action := cfg.Action
	if action == "" {
		action = Store
	}
	typ := cfg.Type
	if typ == "" {
		typ = String
	}
	if action != Store && typ != String {
		panicf("option %s: type %q is only valid with action %q", name, typ, Store)
	}

	b := binding{dest: dest, flag: name}
	switch action {
	case Store:
		b.always = cfg.Default != ""
		switch typ {
		case String:
			v := p.flags.StringP(name, short, cfg.Default, cfg.Help)
			b.get = func() interface{} { return *v }
		case Int:
			var def int
			if cfg.Default != "" {
				def, err = strconv.Atoi(cfg.Default)
				if err != nil {
					panicf("option %s: bad default: %v", name, err)
				}
			}
			v := p.flags.IntP(name, short, def, cfg.Help)
			b.get = func() interface{} { return *v }
		case Path:
			v := new(flagx.AbsPath)
			if cfg.Default != "" {
				if err := v.Set(cfg.Default); err != nil {
					panicf("option %s: bad default: %v", name, err)
				}
			}
			p.flags.VarP(v, name, short, cfg.Help)
			b.get = func() interface{} { return v.String() }
		default:
			panicf("option %s: unknown type %q", name, typ)
		}
	case StoreTrue:
		v := p.flags.BoolP(name, short, false, cfg.Help)
		b.get = func() interface{} { return *v }
		b.always = true
	case StoreFalse:
		v := p.flags.BoolP(name, short, false, cfg.Help)
		b.get = func() interface{} { return !*v }
		b.always = true
	case Count:
		v := p.flags.CountP(name, short, cfg.Help)
		b.get = func() interface{} { return *v }
		b.always = true
	case Append:
		v := p.flags.StringArrayP(name, short, nil, cfg.Help)
		b.get = func() interface{} {
			l := make([]string, len(*v))
			copy(l, *v)
			return l
		}
	default:
		panicf("option %s: unknown action %q", name, action)
	}
	p.bindings = append(p.bindings, b)
}

// addHelp registers -h/--help unless the subcommand claimed them.
func (p *optionParser) addHelp() {
	if p.flags.Lookup("help") != nil {
		return
	}
	short := "h"
	if p.flags.ShorthandLookup("h") != nil {
		short = ""
	}
	p.help = p.flags.BoolP("help", short, false, "show this help message and exit")
}

func (p *optionParser) parse(args []string) (*Options, []string, error) {
	if err := p.flags.Parse(args); err != nil {
		return nil, nil, err
	}
	if p.help != nil && *p.help {
		return nil, nil, pflag.ErrHelp
	}
	opts := &Options{
		usage:  p.usageText(),
		values: make(map[string]interface{}, len(p.bindings)),
	}
	for _, b := range p.bindings {
		if b.always || p.flags.Changed(b.flag) {
			opts.values[b.dest] = b.get()
		}
	}
	return opts, p.flags.Args(), nil
}

func (p *optionParser) usageText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s\n", p.usage)
	if u := p.flags.FlagUsages(); u != "" {
		fmt.Fprintf(&b, "\nOptions:\n%s", u)
	}
	return b.String()
}

// Options holds the parsed options of one dispatch, keyed by
// destination name.
type Options struct {
	usage  string
	values map[string]interface{}
}

// Lookup returns the value stored for dest, and whether there is one.
// Store options without a default only have a value when given.
//
// Values are string for String and Path options, int for Int and
// Count options, bool for StoreTrue and StoreFalse options and
// []string for Append options.
func (o *Options) Lookup(dest string) (interface{}, bool) {
	v, ok := o.values[dest]
	return v, ok
}

// IsSet reports whether dest has a value.
func (o *Options) IsSet(dest string) bool {
	_, ok := o.values[dest]
	return ok
}

// String returns the string value of dest, or "" if it has none.
func (o *Options) String(dest string) string {
	s, _ := o.values[dest].(string)
	return s
}

// Int returns the integer value of dest, or 0 if it has none.
func (o *Options) Int(dest string) int {
	i, _ := o.values[dest].(int)
	return i
}

// Bool returns the boolean value of dest, or false if it has none.
func (o *Options) Bool(dest string) bool {
	b, _ := o.values[dest].(bool)
	return b
}

// Strings returns the values collected for an Append option.
func (o *Options) Strings(dest string) []string {
	l, _ := o.values[dest].([]string)
	return l
}

// Usage returns the usage message of the subcommand being run.
func (o *Options) Usage() string {
	return o.usage
}

// Usagef reports a usage error found by the subcommand itself, such
// as bad positional arguments, and returns the exit status to use.
func (o *Options) Usagef(w Streams, format string, v ...interface{}) int {
	fmt.Fprintf(w.Stderr, "error: "+format+"\n\n", v...)
	fmt.Fprint(w.Stderr, o.usage)
	return 1
}

func panicf(format string, v ...interface{}) {
	panic(fmt.Sprintf("interfacer: "+format, v...))
}
