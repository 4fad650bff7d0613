// Command bitnum reads two non-negative integers, either from its arguments
// or interactively from stdin, and prints the decorated binary form of the
// operands and of their sum, difference, product, AND, OR and XOR.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	bitnum "github.com/shabbyrobe/go-bitnum"
)

const version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	flags := pflag.NewFlagSet("bitnum", pflag.ContinueOnError)
	exact := flags.Bool("exact", false, "compute the product without 64-bit wraparound")
	showVersion := flags.Bool("version", false, "print the version and exit")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bitnum [flags] [<a> <b>]\n\nFlags:\n%s", flags.FlagUsages())
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if *showVersion {
		fmt.Printf("bitnum %s\n", version)
		return 0
	}

	var a, b *bitnum.Uint
	var err error

	switch args := flags.Args(); len(args) {
	case 2:
		if a, err = parseOperand(args[0]); err == nil {
			b, err = parseOperand(args[1])
		}
	case 0:
		a, b, err = readOperands(os.Stdin, os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "error: expected two operands, found %d\n", len(args))
		flags.Usage()
		return 2
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	fmt.Print(report(a, b, *exact))
	return 0
}

func parseOperand(s string) (*bitnum.Uint, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("operand %q is not an integer", s)
	}
	u, err := bitnum.FromInt(v)
	if err != nil {
		return nil, fmt.Errorf("operand %q: %w", s, err)
	}
	return u, nil
}

func readOperands(in *os.File, out *os.File) (a, b *bitnum.Uint, err error) {
	scanner := bufio.NewScanner(in)
	read := func(prompt string) (*bitnum.Uint, error) {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("unexpected end of input")
		}
		return parseOperand(scanner.Text())
	}

	if a, err = read("a: "); err != nil {
		return nil, nil, err
	}
	if b, err = read("b: "); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func report(a, b *bitnum.Uint, exact bool) string {
	prod := bitnum.Mul(a, b)
	if exact {
		prod = bitnum.MulExact(a, b)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "a:    %s\n", a)
	fmt.Fprintf(&sb, "b:    %s\n", b)
	fmt.Fprintf(&sb, "Sum:  %s\n", bitnum.Add(a, b))
	fmt.Fprintf(&sb, "Diff: %s\n", bitnum.Sub(a, b))
	fmt.Fprintf(&sb, "Prod: %s\n", prod)
	fmt.Fprintf(&sb, "AND:  %s\n", bitnum.And(a, b))
	fmt.Fprintf(&sb, "OR:   %s\n", bitnum.Or(a, b))
	fmt.Fprintf(&sb, "XOR:  %s\n", bitnum.Xor(a, b))
	return sb.String()
}
