// Command sigdump parses method descriptors against a class universe and
// prints the resolved signatures: parameter count, slot size, element types,
// and nullability facts. It exists for debugging the signature layer.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iwanowww/valhalla/internal/descriptor"
	"github.com/iwanowww/valhalla/internal/resolve"
	"github.com/iwanowww/valhalla/internal/sig"
	"github.com/iwanowww/valhalla/internal/types"
)

// Version information
const Version = "0.1.0-dev"

var (
	universePath string
	accessorName string
	verbose      bool
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	root := &cobra.Command{
		Use:           "sigdump",
		Short:         "Inspect resolved method signatures",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&universePath, "universe", "u", "", "YAML file describing loaded classes")
	root.PersistentFlags().StringVar(&accessorName, "accessor", "", "Accessing class name")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(dumpCmd(out), eqCmd(out), resolveCmd(out), versionCmd(out))
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(errOut, "sigdump: %v\n", err)
		return 1
	}
	return 0
}

// newResolver builds the resolver and accessing context from the
// persistent flags.
func newResolver(errOut io.Writer) (*resolve.Resolver, *resolve.Context, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	table := resolve.NewClassTable()
	if universePath != "" {
		if err := loadUniverse(table, universePath); err != nil {
			return nil, nil, err
		}
	}

	var ctx *resolve.Context
	if accessorName != "" {
		ctx = resolve.NewContext(table.Define(accessorName, false))
	} else {
		ctx = resolve.NewContext(nil)
	}
	return resolve.NewResolver(table, logger), ctx, nil
}

func dumpCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <descriptor>...",
		Short: "Print the resolved signature of each descriptor",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ctx, err := newResolver(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			for _, desc := range args {
				s, err := sig.New(r, ctx, desc)
				if err != nil {
					return err
				}
				printSignature(out, s)
			}
			return nil
		},
	}
}

func eqCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "eq <descriptor> <descriptor>",
		Short: "Compare two descriptors for signature equality",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ctx, err := newResolver(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a, err := sig.New(r, ctx, args[0])
			if err != nil {
				return err
			}
			b, err := sig.New(r, ctx, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%v\n", a.Equals(b))
			return nil
		},
	}
}

func resolveCmd(out io.Writer) *cobra.Command {
	var load bool
	cmd := &cobra.Command{
		Use:   "resolve <class>...",
		Short: "Resolve class names, optionally triggering loading",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ctx, err := newResolver(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			for _, name := range args {
				t := r.ResolveClass(ctx, name, load)
				state := "loaded"
				if types.IsUnresolved(t) {
					state = "unresolved"
				} else if types.IsValue(t) {
					state = "loaded value"
				}
				fmt.Fprintf(out, "%s: %s\n", name, state)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&load, "load", false, "Allow class loading during resolution")
	return cmd
}

func versionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out, "sigdump version %s\n", Version)
		},
	}
}

func printSignature(out io.Writer, s *sig.Signature) {
	fmt.Fprintf(out, "%s\n", s)
	fmt.Fprintf(out, "  raw: params=%q return=%q\n",
		descriptor.ParamString(s.Symbol()), descriptor.ReturnString(s.Symbol()))
	fmt.Fprintf(out, "  count=%d size=%d\n", s.Count(), s.Size())
	for i := 0; i < s.Count(); i++ {
		neverNull := s.MustNeverNullAt(i)
		fmt.Fprintf(out, "  param %d: %s neverNull=%v\n", i, s.MustTypeAt(i), neverNull)
	}
	fmt.Fprintf(out, "  return: %s neverNull=%v maybeNeverNull=%v\n",
		s.ReturnType(), s.ReturnsNeverNull(), s.MaybeReturnsNeverNull())
}
