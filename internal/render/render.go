// Package render draws a city and its routes as plain text.
//
// Rows are streets ("Calle 50", "Calle 51", ...) and columns are avenues
// ("Cra 10", "Cra 11", ...). Each block shows its tier unless a route
// passes through it or it is a home (H) or destination (D).
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/citywalk/costmodel"
	"github.com/katalvlaran/citywalk/gridgraph"
	"github.com/katalvlaran/citywalk/router"
)

const (
	firstCalle = 50
	firstCra   = 10
	labelWidth = 10
	cellWidth  = 7
)

var tierSymbol = map[costmodel.Tier]byte{
	costmodel.Normal:       '.',
	costmodel.PoorSidewalk: '~',
	costmodel.Commercial:   '$',
}

// StreetName names the intersection of c, e.g. "Calle 54 / Cra 11".
func StreetName(c gridgraph.Cell) string {
	return fmt.Sprintf("Calle %d / Cra %d", firstCalle+c.Row, firstCra+c.Col)
}

// Map writes the grid of city to w. When tr is non-nil, blocks on A's route
// are marked 'A', on B's route 'B', and on both '*'. Homes and destinations
// off the routes are marked 'H' and 'D'.
func Map(w io.Writer, city *router.City, tr *router.Trajectories) error {
	g := city.Grid()
	marks := make([]byte, g.Size())
	for _, d := range city.Destinations() {
		marks[g.Index(d.Cell)] = 'D'
	}
	for _, t := range city.Travelers() {
		marks[g.Index(t.Start)] = 'H'
	}
	if tr != nil {
		for _, c := range tr.A.Path {
			marks[g.Index(c)] = 'A'
		}
		for _, c := range tr.B.Path {
			i := g.Index(c)
			if marks[i] == 'A' {
				marks[i] = '*'
			} else {
				marks[i] = 'B'
			}
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, strings.Repeat(" ", labelWidth))
	for col := 0; col < g.Width; col++ {
		fmt.Fprintf(bw, "%-*s", cellWidth, fmt.Sprintf("Cra %d", firstCra+col))
	}
	fmt.Fprintln(bw)

	for row := 0; row < g.Height; row++ {
		line := fmt.Sprintf("%-*s", labelWidth, fmt.Sprintf("Calle %d", firstCalle+row))
		for col := 0; col < g.Width; col++ {
			c := gridgraph.Cell{Row: row, Col: col}
			sym := marks[g.Index(c)]
			if sym == 0 {
				sym = tierSymbol[city.Model().Classify(c)]
			}
			line += fmt.Sprintf("  %c%s", sym, strings.Repeat(" ", cellWidth-3))
		}
		fmt.Fprintln(bw, strings.TrimRight(line, " "))
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, ". normal   ~ poor sidewalk   $ commercial   H home   D destination")
	if tr != nil {
		fmt.Fprintf(bw, "A %s, %d min   B %s, %d min   * both\n", tr.A.Traveler, tr.A.Cost, tr.B.Traveler, tr.B.Cost)
	}
	for _, t := range city.Travelers() {
		fmt.Fprintf(bw, "home of %s: %s\n", t.ID, StreetName(t.Start))
	}
	for _, d := range city.Destinations() {
		fmt.Fprintf(bw, "%s: %s\n", d.Name, StreetName(d.Cell))
	}

	return bw.Flush()
}
