// Command snappea demonstrates the snappea geometry kernel.
//
// With -census it lists or inspects a SQLite manifold census;
// otherwise it computes the core geodesic of a single Dehn-filled cusp
// from holonomy data given on the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/ckaterba/snappea"
	"github.com/ckaterba/snappea/census"
)

func main() {
	var (
		censusPath = flag.String("census", "", "path to a census database to inspect")
		name       = flag.String("name", "", "manifold name to look up in the census")

		m     = flag.Float64("m", 1, "meridian Dehn filling coefficient")
		l     = flag.Float64("l", 2, "longitude Dehn filling coefficient")
		klein = flag.Bool("klein", false, "treat the cusp as a Klein bottle cusp")
		hm    = flag.String("hm", "0.5+0.3i", "log holonomy of the meridian (ultimate)")
		hl    = flag.String("hl", "1.0+0.1i", "log holonomy of the longitude (ultimate)")
		phm   = flag.String("phm", "", "log holonomy of the meridian (penultimate, defaults to -hm)")
		phl   = flag.String("phl", "", "log holonomy of the longitude (penultimate, defaults to -hl)")
	)
	flag.Parse()

	if *censusPath != "" {
		if err := runCensus(*censusPath, *name); err != nil {
			log.Fatalf("census: %v", err)
		}
		return
	}

	if err := runCoreGeodesic(*m, *l, *klein, *hm, *hl, *phm, *phl); err != nil {
		log.Fatalf("core geodesic: %v", err)
	}
}

func runCensus(path, name string) error {
	db, err := census.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()

	if name != "" {
		rec, err := db.ByName(ctx, name)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", rec.Name)
		fmt.Printf("  volume:        %.15f\n", rec.Volume)
		if rec.ChernSimons.Valid {
			fmt.Printf("  chern-simons:  %.15f\n", rec.ChernSimons.Float64)
		} else {
			fmt.Printf("  chern-simons:  (not computed)\n")
		}
		fmt.Printf("  triangulation: %d bytes\n", len(rec.Triangulation))
		return nil
	}

	names, err := db.Names(ctx)
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}

func runCoreGeodesic(m, l float64, klein bool, hm, hl, phm, phl string) error {
	if phm == "" {
		phm = hm
	}
	if phl == "" {
		phl = hl
	}

	ultimate, err := parseHolonomy(hm, hl)
	if err != nil {
		return err
	}
	penultimate, err := parseHolonomy(phm, phl)
	if err != nil {
		return err
	}

	topology := snappea.TorusCusp
	if klein {
		topology = snappea.KleinCusp
	}

	mfd := snappea.NewManifold("cli", 0)
	cusp := mfd.AddCusp(topology)
	cusp.DehnFill(m, l)
	cusp.Holonomy[snappea.Ultimate] = ultimate
	cusp.Holonomy[snappea.Penultimate] = penultimate

	info, err := mfd.CoreGeodesic(0)
	if err != nil {
		return err
	}

	fmt.Printf("filling:           (%g, %g) on a %s cusp\n", m, l, topology)
	fmt.Printf("singularity index: %d\n", info.SingularityIndex)
	if info.SingularityIndex == 0 {
		fmt.Println("no core geodesic (unfilled cusp or non-integer coefficients)")
		return nil
	}
	fmt.Printf("core length:       %.15f + %.15fi\n", real(info.CoreLength), imag(info.CoreLength))
	fmt.Printf("precision:         %d decimal places\n", info.Precision)
	return nil
}

func parseHolonomy(meridian, longitude string) (snappea.Holonomy, error) {
	hm, err := strconv.ParseComplex(meridian, 128)
	if err != nil {
		return snappea.Holonomy{}, fmt.Errorf("parse meridian holonomy %q: %w", meridian, err)
	}
	hl, err := strconv.ParseComplex(longitude, 128)
	if err != nil {
		return snappea.Holonomy{}, fmt.Errorf("parse longitude holonomy %q: %w", longitude, err)
	}
	return snappea.Holonomy{Meridian: hm, Longitude: hl}, nil
}
