package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

func main() {
	dir := flag.String("dir", "", "level directory containing manifest.json (defaults to the embedded set)")
	tuning := flag.Bool("tuning", true, "also validate prefab tuning")
	flag.Parse()

	var (
		set *levels.Set
		err error
	)
	if *dir != "" {
		set, err = levels.LoadSet(os.DirFS(*dir))
	} else {
		set, err = levels.LoadEmbedded()
	}
	if err != nil {
		log.Fatal(err)
	}

	if *tuning {
		if _, err := prefabs.LoadTuning(); err != nil {
			log.Fatal(err)
		}
	}

	summarize(os.Stdout, set)
}

func summarize(out io.Writer, set *levels.Set) {
	fmt.Fprintf(out, "world %gx%g, death below y=%g\n", set.World.Width, set.World.Height, set.World.DeathY)
	fmt.Fprintf(out, "%-10s %s\n", set.Shared.Name, kindCounts(set.Shared.Entities))
	for i, lvl := range set.Levels {
		fmt.Fprintf(out, "%d %-8s spawn=(%g,%g) %s\n", i+1, lvl.Name, lvl.Spawn.X, lvl.Spawn.Y, kindCounts(lvl.Entities))
	}
}

func kindCounts(ents []levels.Entity) string {
	counts := map[string]int{}
	for _, e := range ents {
		if k, ok := component.ParseEntityKind(e.Type); ok {
			counts[k.String()]++
		}
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	s := ""
	for _, name := range names {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("%s=%d", name, counts[name])
	}
	return s
}
