// Copyright 2023 The Calendrical Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The calmerge command resolves calendrical field assignments into dates
// and times.
//
// Field assignments given as arguments are merged once:
//
//	calmerge Year=2008 MonthOfYear=6 DayOfMonth=30
//
// With no arguments it starts a read-merge-print loop (REPL) on a
// terminal, or processes standard input a line at a time otherwise.
package main // import "go.calendrical.net/cmd/calmerge"

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.calendrical.net/calendrical"
	"go.calendrical.net/repl"
	"golang.org/x/term"
)

// flags
var (
	lenient = flag.Bool("lenient", false, "normalize out-of-range values instead of rejecting them")
	discard = flag.Bool("discard", false, "silently drop leftover fields that contradict the result")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("calmerge: ")
	log.SetFlags(0)
	flag.Parse()

	ctx := calendrical.NewContext(!*lenient, !*discard)
	session := repl.NewSession(ctx)

	switch {
	case flag.NArg() > 0:
		// Merge the command-line assignments and print the outcome.
		if _, err := session.Exec(strings.Join(flag.Args(), " ")); err != nil {
			repl.PrintError(err)
			return 1
		}
		out, err := session.Exec(":merge")
		if err != nil {
			repl.PrintError(err)
			return 1
		}
		fmt.Println(out)
	case term.IsTerminal(int(os.Stdin.Fd())):
		fmt.Println("Welcome to calmerge (go.calendrical.net)")
		repl.REPL(session)
	default:
		// Piped input: run the session over stdin without a prompt.
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			out, err := session.Exec(scanner.Text())
			if err != nil {
				repl.PrintError(err)
				return 1
			}
			if out != "" {
				fmt.Println(out)
			}
		}
		if err := scanner.Err(); err != nil {
			log.Print(err)
			return 1
		}
	}
	return 0
}
