// Command panic-demo panics a few calls deep and prints the formatted
// backtrace from its recover handler.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	backtrace "github.com/dac-gmbh/backtrace-string"
)

func main() {
	depth := flag.Int("depth", 4, "recursion depth before panicking")
	flag.Parse()

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		log.Printf("Recovered from panic: %v", r)
		fmt.Fprintf(os.Stderr, "Backtrace: %s", backtrace.Create())
		os.Exit(2)
	}()

	doThatThing(0, *depth)
}

// doThatThing recurses so the backtrace has something to show and the
// compiler cannot inline the whole chain into main.
func doThatThing(x, limit int) {
	if x > limit {
		panic("and run away...")
	}
	doThatThing(x+1, limit)
}
