// Command mazegen prints a randomly generated maze.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
)

func main() {
	rows := flag.Int("rows", 10, "number of rows")
	cols := flag.Int("cols", 10, "number of columns")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	solve := flag.Bool("solve", false, "print the length of the path from the top-left to the bottom-right cell")
	flag.Parse()

	if err := run(*rows, *cols, *seed, *solve); err != nil {
		fmt.Fprintf(os.Stderr, "mazegen: %v\n", err)
		os.Exit(1)
	}
}

func run(rows, cols int, seed int64, solve bool) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	m, err := maze.Generate(rows, cols, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	fmt.Printf("Generated %dx%d maze (seed %d) in %v\n", rows, cols, seed, time.Since(start))
	fmt.Print(m)

	if solve {
		path, err := m.Solve(maze.CellPosition{Row: 0, Col: 0}, maze.CellPosition{Row: rows - 1, Col: cols - 1})
		if err != nil {
			return err
		}
		fmt.Printf("Solution path length: %d steps\n", len(path)-1)
	}
	return nil
}
