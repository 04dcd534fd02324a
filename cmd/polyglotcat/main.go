// Command polyglotcat reads a file of raw Polyglot wire bytes and prints a
// human-readable dump of its decoded tree. It exists purely as a
// development aid for inspecting captured wire blobs; it is not part of the
// FFI ABI and ships no wire-format behavior of its own beyond what
// codec.DecodeAny already provides.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gopolyglot/polyglot-go/codec"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	d := codec.NewDecoder(raw)
	for d.Remaining() > 0 {
		k, v, err := d.DecodeAny()
		if err != nil {
			return fmt.Errorf("at byte %d: %w", d.Position(), err)
		}
		dump(os.Stdout, 0, k, v)
	}
	return nil
}

func dump(w *os.File, depth int, k fmt.Stringer, v any) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch vv := v.(type) {
	case []any:
		fmt.Fprintf(w, "%s%s[%d]\n", indent, k, len(vv))
		for _, elem := range vv {
			dump(w, depth+1, kindOf(elem), elem)
		}
	case []codec.KV:
		fmt.Fprintf(w, "%s%s{%d}\n", indent, k, len(vv))
		for _, kv := range vv {
			fmt.Fprintf(w, "%s  %v:\n", indent, kv.Key)
			dump(w, depth+2, kindOf(kv.Value), kv.Value)
		}
	default:
		fmt.Fprintf(w, "%s%s: %v\n", indent, k, v)
	}
}

// kindOf gives nested dump calls something to print when the static Kind of
// a recursively-decoded element isn't separately tracked by DecodeAny's
// return value; it reports the decoded Go type instead of a wire Kind.
func kindOf(v any) fmt.Stringer {
	return typeString(fmt.Sprintf("%T", v))
}

type typeString string

func (t typeString) String() string { return string(t) }
