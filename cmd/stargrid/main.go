// Command stargrid is a thin command-line consumer of the star index:
// list and look up stars, find the nearest star to a direction, and search
// for star triangles by their pairwise angles.
//
// Usage:
//
//	stargrid [flags] list
//	stargrid [flags] find STAR...
//	stargrid [flags] nearest -ra RA -de DE
//	stargrid [flags] triangles A0 A1 A2
//	stargrid [flags] constellations
//
// All angle flags and arguments are degrees. Without -catalog the built-in
// bright-star table is used.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/stargrid/stargrid"
	"github.com/stargrid/stargrid/geom"
	"github.com/stargrid/stargrid/grid"
	"github.com/stargrid/stargrid/skydata"
)

var (
	catalogPath = flag.String("catalog", "", "six-field CSV catalog to load (default: built-in bright stars)")
	magnitude   = flag.Float64("magnitude", 0, "keep only stars brighter than this magnitude (0 keeps all)")
	raDeg       = flag.Float64("ra", 0, "right ascension in degrees")
	deDeg       = flag.Float64("de", 0, "declination in degrees")
	angleDeg    = flag.Float64("angle", 0, "keep only stars within this angle of -ra/-de (0 keeps all)")
	tolerance   = flag.Float64("tolerance", 0.1, "triangle angle tolerance in degrees")
	names       = flag.Bool("names", false, "attach the full IAU-collated name table instead of the common names")
	debug       = flag.Bool("log", false, "log catalog build and query internals to stderr")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "stargrid: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	catalog, err := buildCatalog()
	if err != nil {
		return err
	}

	switch command {
	case "list":
		return list(catalog)
	case "find":
		return find(catalog, args)
	case "nearest":
		return nearest(catalog)
	case "triangles":
		return triangles(catalog, args)
	case "constellations":
		return constellations(catalog)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func buildCatalog() (*stargrid.Catalog, error) {
	catalog := stargrid.New(func(o *stargrid.Options) {
		if *debug {
			o.Logger = stargrid.NewTextLogger(slog.LevelDebug)
		}
	})

	data := skydata.BrightStars()
	if *catalogPath != "" {
		var err error
		data, err = readCSV(*catalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}

	for _, d := range data {
		catalog.Add(stargrid.NewStar(d))
	}

	keep := stargrid.All()
	if *magnitude > 0 {
		keep = keep.Then(stargrid.BrighterThan(float32(*magnitude)))
	}
	if *angleDeg > 0 {
		dir := geom.FromRaDe(geom.DegToRad(*raDeg), geom.DegToRad(*deDeg))
		keep = keep.Then(stargrid.WithinAngleOf(dir, math.Cos(geom.DegToRad(*angleDeg))))
	}
	catalog.Retain(keep)

	catalog.Sort()

	nameTable := skydata.Aliases()
	if *names {
		nameTable = skydata.CollatedAliases()
	}
	if err := catalog.AttachNames(nameTable, true); err != nil {
		return nil, err
	}

	catalog.DeriveIndex()
	return catalog, nil
}

func printStar(s *stargrid.Star) {
	fmt.Printf("%8d  ra %10.5f°  de %10.5f°  mag %5.2f  %7.1f ly\n",
		s.ID(), geom.RadToDeg(s.Ra()), geom.RadToDeg(s.De()), s.Brightness(), s.Distance())
}

func list(catalog *stargrid.Catalog) error {
	for _, s := range catalog.Stars() {
		printStar(s)
	}
	fmt.Printf("%d stars\n", catalog.Len())
	return nil
}

func find(catalog *stargrid.Catalog, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("find: no stars given")
	}
	for _, arg := range args {
		h, err := catalog.FindIDOrName(arg)
		if err != nil {
			return err
		}
		printStar(catalog.Star(h))
	}
	return nil
}

func nearest(catalog *stargrid.Catalog) error {
	dir := geom.FromRaDe(geom.DegToRad(*raDeg), geom.DegToRad(*deDeg))

	got, ok := catalog.Nearest(dir)
	if !ok {
		return fmt.Errorf("no star near ra %v° de %v°", *raDeg, *deDeg)
	}

	fmt.Printf("%.4f° away:\n", geom.RadToDeg(math.Acos(geom.Clamp(got.Cos, -1, 1))))
	printStar(catalog.Star(got.Handle))
	return nil
}

func triangles(catalog *stargrid.Catalog, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("triangles: three angles required")
	}

	var angles [3]float64
	for i, arg := range args {
		deg, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("triangles: bad angle %q: %w", arg, err)
		}
		angles[i] = geom.DegToRad(deg)
	}

	found, err := catalog.FindTriples(grid.All(), angles, geom.DegToRad(*tolerance))
	if err != nil {
		return err
	}

	for _, tr := range found {
		p0, p1, p2 := catalog.Star(tr.P0), catalog.Star(tr.P1), catalog.Star(tr.P2)
		fmt.Printf("%8d %8d %8d : %8.4f° %8.4f° %8.4f°\n",
			p0.ID(), p1.ID(), p2.ID(),
			geom.RadToDeg(p0.AngleTo(p1)),
			geom.RadToDeg(p0.AngleTo(p2)),
			geom.RadToDeg(p1.AngleTo(p2)))
	}
	fmt.Printf("%d triangles\n", len(found))
	return nil
}

func constellations(catalog *stargrid.Catalog) error {
	for _, c := range skydata.Constellations {
		fmt.Printf("%s\n", c.Name)
		for _, id := range c.Path {
			if id == 0 {
				fmt.Println()
				continue
			}
			h, ok := catalog.FindByID(id)
			if !ok {
				// Figures reference stars fainter than the loaded
				// catalog; skip them.
				continue
			}
			fmt.Print("  ")
			printStar(catalog.Star(h))
		}
		fmt.Println()
	}
	return nil
}
