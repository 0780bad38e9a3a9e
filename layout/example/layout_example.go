// Terminal preview for the maze layout engine. It runs the same pipeline the
// server runs, against an in-process scene graph, and draws the carved floors
// as colored ASCII.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/TrainerHol/MakeWheel/infrastruture/scene"
	"github.com/TrainerHol/MakeWheel/layout"
	"github.com/TrainerHol/MakeWheel/maze"
	"github.com/gookit/color"
	"golang.org/x/term"
)

const fallbackTermWidth = 80

var (
	styleWall    = color.Style{color.FgGray}
	stylePassage = color.Style{color.FgYellow}
	styleCounts  = color.Style{color.FgCyan, color.OpBold}
	styleWarn    = color.Style{color.FgRed}
)

// countPrinter surfaces the element tallies the way the browser page shows
// them under the form. Implements layout.CountReporter.
type countPrinter struct{}

func (countPrinter) ReportCounts(walls, floors, total int) {
	styleCounts.Printf("Walls: %d   Floor plates: %d   Total elements: %d\n", walls, floors, total)
}

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== MAZE LAYOUT PREVIEW ===")

		width := getInt(reader, "Grid width (default 8): ", 8)
		height := getInt(reader, "Grid height (default 8): ", 8)
		floors := getInt(reader, "Floors [1 = flat maze] (default 1): ", 1)
		seed := getInt(reader, "Seed [0 = random] (default 0): ", 0)

		graph := scene.NewGraph()
		engine, err := layout.New(graph, countPrinter{})
		if err != nil {
			styleWarn.Println(err)
			return
		}

		result, err := generate(engine, width, height, floors, int64(seed))
		if err != nil {
			styleWarn.Println(err)
			continue
		}

		warnIfTooWide(width)
		draw(width, height, floors, result.Seed)

		fmt.Printf("Seed %d reproduces this layout.\n", result.Seed)
		if result.RepairedCells > 0 {
			styleWarn.Printf("Connectivity repair anchored %d cells!\n", result.RepairedCells)
		}

		fmt.Print("Dump scene JSON? [y/N]: ")
		dump, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(dump)) == "y" {
			data, err := json.MarshalIndent(graph.Snapshot(), "", "  ")
			if err == nil {
				fmt.Println(string(data))
			}
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// generate runs the engine with preview-friendly world dimensions; only the
// grid shape and seed are worth prompting for.
func generate(engine *layout.Engine, width, height, floors int, seed int64) (*layout.Result, error) {
	if floors <= 1 {
		return engine.Generate2D(layout.Params2D{
			CellLength: 4, WallWidth: 1, WallHeight: 6,
			GridWidth: width, GridHeight: height, Seed: seed,
		})
	}
	return engine.Generate3D(layout.Params3D{
		CellLength: 4, WallWidth: 1, WallHeight: 6,
		GridWidth: width, GridHeight: height, Floors: floors,
		FloorLength: 4, FloorWidth: 4, Seed: seed,
	})
}

// draw recarves the lattice with the result seed, which reproduces the carved
// passages exactly, and prints each floor with walls and vertical passages
// told apart by color.
func draw(width, height, floors int, seed int64) {
	m, err := maze.New(width, height, max(floors, 1))
	if err != nil {
		styleWarn.Println(err)
		return
	}
	m.Walk(rand.New(rand.NewSource(seed)))

	for floor := 0; floor < m.Floors; floor++ {
		if m.Floors > 1 {
			fmt.Printf("Floor %d\n", floor)
		}
		for _, line := range strings.Split(m.FloorString(floor), "\n") {
			printLine(line)
		}
	}
}

// printLine colors one row of the ASCII rendering: lattice walls gray,
// up/down passage marks yellow.
func printLine(line string) {
	var plain strings.Builder
	flushPlain := func() {
		if plain.Len() > 0 {
			styleWall.Print(plain.String())
			plain.Reset()
		}
	}

	for _, r := range line {
		switch r {
		case 'u', 'd', 'x':
			flushPlain()
			stylePassage.Print(string(r))
		default:
			plain.WriteRune(r)
		}
	}
	flushPlain()
	fmt.Println()
}

// warnIfTooWide checks the rendering against the terminal, falling back to a
// standard width when the size is unknowable.
func warnIfTooWide(gridWidth int) {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		termWidth = fallbackTermWidth
	}

	// FloorString draws every cell four characters wide plus the closing edge.
	if rendered := gridWidth*4 + 1; rendered > termWidth {
		styleWarn.Printf("Maze is %d characters wide but the terminal fits %d; lines will wrap.\n", rendered, termWidth)
	}
}

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
