// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ezrec/ucode65/gen"
	"github.com/ezrec/ucode65/isa"
	"github.com/ezrec/ucode65/m65"
	"github.com/ezrec/ucode65/script"
	"github.com/ezrec/ucode65/ucode"
)

func selectTables(variants []string) (tables []m65.Table, err error) {
	tables = m65.Tables()
	if len(variants) == 0 {
		return
	}

	want := map[isa.Variant]bool{}
	for _, name := range variants {
		v, ok := isa.VariantByName(name)
		if !ok {
			err = &script.ErrUnknownName{Kind: "variant", Name: name}
			return
		}
		want[v] = true
	}

	kept := []m65.Table{}
	for _, t := range tables {
		if want[t.Variant] {
			kept = append(kept, t)
		}
	}
	tables = kept
	return
}

func buildStore(variants, scripts []string, verbose bool) (store *ucode.Store, err error) {
	tables, err := selectTables(variants)
	if err != nil {
		return
	}

	var stores []*ucode.Store
	for _, t := range tables {
		b := ucode.NewBuilder()
		b.Verbose = verbose
		t.Populate(b)
		s, e := b.Finish()
		if e != nil {
			err = e
			return
		}
		stores = append(stores, s)
	}

	for _, path := range scripts {
		b := ucode.NewBuilder()
		b.Verbose = verbose
		if err = script.Load(b, path); err != nil {
			return
		}
		var extra *ucode.Store
		if extra, err = b.Finish(); err != nil {
			return
		}
		stores = append(stores, extra)
	}

	store, err = ucode.Concat(stores...)
	return
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "ucode65",
		Short: "Generate 6502/65832 micro-operation control logic",
	}

	var output string
	var variants []string
	var scripts []string
	var verbose bool

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the opcode tables and emit the grouped control logic",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := buildStore(variants, scripts, verbose)
			if err != nil {
				return err
			}

			if verbose {
				sum := store.Summarize()
				fmt.Fprintf(cmd.ErrOrStderr(), "%d records from %d opcodes, %d dropped\n",
					sum.Records, sum.Opcodes, sum.Dropped)
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return gen.Render(out, gen.Group(store))
		},
	}
	generateCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	generateCmd.Flags().StringArrayVar(&variants, "variant", nil, "Restrict to one CPU variant, e.g. MODE_6502 (repeatable)")
	generateCmd.Flags().StringArrayVar(&scripts, "script", nil, "Starlark opcode extension script (repeatable)")
	generateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report store statistics on stderr")

	var dropped bool

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Report table coverage and grouping statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := buildStore(variants, scripts, false)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sum := store.Summarize()
			fmt.Fprintf(out, "records: %d\n", sum.Records)
			fmt.Fprintf(out, "opcodes: %d\n", sum.Opcodes)
			fmt.Fprintf(out, "dropped: %d\n", sum.Dropped)

			order := make([]isa.Variant, 0, len(sum.Variants))
			for v := range sum.Variants {
				order = append(order, v)
			}
			slices.Sort(order)
			for _, v := range order {
				fmt.Fprintf(out, "  %v: %d records\n", v, sum.Variants[v])
			}

			blocks := gen.Group(store)
			guards := 0
			for _, cb := range blocks {
				for _, mb := range cb.Modes {
					guards += len(mb.Guards)
				}
			}
			fmt.Fprintf(out, "cycles: %d\n", len(blocks))
			fmt.Fprintf(out, "guards: %d\n", guards)

			if dropped {
				for _, d := range store.Dropped {
					fmt.Fprintf(out, "drop: %v %v %v [%02X]\n", d.Variant, d.Op, d.Mode, d.Opcode)
				}
			}
			return nil
		},
	}
	statsCmd.Flags().StringArrayVar(&variants, "variant", nil, "Restrict to one CPU variant, e.g. MODE_6502 (repeatable)")
	statsCmd.Flags().StringArrayVar(&scripts, "script", nil, "Starlark opcode extension script (repeatable)")
	statsCmd.Flags().BoolVar(&dropped, "dropped", false, "List every opcode dropped for want of an action")

	rootCmd.AddCommand(generateCmd, statsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
