// Command export writes the test case scenes to JSON, after projecting them
// with the default configuration, so that they can be inspected or drawn
// by external tools.  Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/wireframe"
	"seehuhn.de/go/wireframe/testcases"
)

func main() {
	cfg := wireframe.DefaultConfig()

	var out struct {
		Width     int            `json:"width"`
		Height    int            `json:"height"`
		TestCases []jsonTestCase `json:"testcases"`
	}
	out.Width = cfg.Width
	out.Height = cfg.Rows()

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(cfg, category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string       `json:"name"`
	Players [][]jsonEdge `json:"players"`
}

type jsonEdge struct {
	P1    [2]int `json:"p1"`
	P2    [2]int `json:"p2"`
	IZ    int    `json:"iz"`
	Color uint16 `json:"color"`
}

func toJSON(cfg *wireframe.Config, category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{Name: category + "_" + tc.Name}

	proj, err := wireframe.ExampleProjector(cfg, tc)
	if err != nil {
		return jtc, err
	}
	for p := range cfg.Players {
		edges := make([]jsonEdge, proj.NumEdges())
		for i := range edges {
			var e wireframe.Edge
			proj.Project(p, i, &e)
			edges[i] = jsonEdge{
				P1:    [2]int{e.P1.X, e.P1.Y},
				P2:    [2]int{e.P2.X, e.P2.Y},
				IZ:    e.IZ,
				Color: uint16(e.Color),
			}
		}
		jtc.Players = append(jtc.Players, edges)
	}
	return jtc, nil
}
