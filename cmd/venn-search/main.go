// Command venn-search runs the Venn-diagram enumerator for the number of
// colors this binary was built for (geometry.NColors) and reports how many
// solutions it finds. See SPEC_FULL.md §6's External Interfaces and the
// scenario walkthroughs in §8.
package main

import (
	"flag"
	"log"
	"strconv"
	"strings"

	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/engine"
	"github.com/jeremycarroll/venntriangles/geometry"
	"github.com/jeremycarroll/venntriangles/memo"
	"github.com/jeremycarroll/venntriangles/predicates"
	"github.com/jeremycarroll/venntriangles/propagation"
	"github.com/jeremycarroll/venntriangles/sink"
)

func main() {
	n := flag.Int("n", geometry.NColors, "number of colors; must match the build's geometry.NColors")
	degreesFlag := flag.String("degrees", "", "comma-separated fixed inner-face degree sequence (e.g. 5,5,4,3,3,3); skips InnerFace enumeration")
	suspend := flag.Bool("suspend", false, "stop after the first solution instead of enumerating all of them")
	verbose := flag.Bool("verbose", false, "log MEMO construction progress")
	flag.Parse()

	if *n != geometry.NColors {
		log.Fatalf("venn-search: -n=%d does not match this build's geometry.NColors=%d", *n, geometry.NColors)
	}

	m, err := memo.Build(geometry.NColors, memo.BuildOptions{Verbose: *verbose})
	if err != nil {
		log.Fatalf("venn-search: building MEMO tables: %v", err)
	}
	ctx := context.New(m)

	var program []engine.Predicate
	if *degreesFlag != "" {
		degrees, err := parseDegrees(*degreesFlag)
		if err != nil {
			log.Fatalf("venn-search: -degrees: %v", err)
		}
		predicates.Initialize{}.Try(ctx, 0)
		if fail := propagation.SetupCentralFace(ctx, degrees); fail != nil {
			log.Fatalf("venn-search: fixed inner-face degrees rejected: %v", fail)
		}
	} else {
		program = append(program, predicates.Initialize{}, predicates.InnerFace{})
	}

	program = append(program, &predicates.Venn{})
	counting := &sink.Counting{}
	program = append(program, counting)

	if *suspend {
		program = append(program, predicates.Suspend{})
	} else {
		program = append(program, predicates.Fail{})
	}

	eng := engine.New(ctx, program)
	status := eng.Search()

	log.Printf("solutions found: %d (final status=%s)", counting.Count, status)
}

func parseDegrees(s string) ([geometry.NColors]int, error) {
	var out [geometry.NColors]int
	parts := strings.Split(s, ",")
	if len(parts) != geometry.NColors {
		return out, &degreeCountError{got: len(parts), want: geometry.NColors}
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

type degreeCountError struct{ got, want int }

func (e *degreeCountError) Error() string {
	return "expected " + strconv.Itoa(e.want) + " comma-separated degrees, got " + strconv.Itoa(e.got)
}
