package main

import (
	"fmt"
	"log"

	"github.com/lptext/lptext/lptext"
)

func main() {
	// Maximize: x + y - 50
	// Subject to machine capacity and minimum production levels.
	objective := "Max Z = x + y - 50"
	constraints := "50x + 24y <= 2400\n" +
		"30x + 33y <= 2100\n" +
		"x >= 45\n" +
		"y >= 5"

	for _, backend := range []lptext.Backend{lptext.BackendSimplex, lptext.BackendGLPK, lptext.BackendCLP} {
		solver, err := lptext.New(backend)
		if err != nil {
			log.Fatal(err)
		}

		res := solver.Solve(objective, constraints, true)
		fmt.Printf("[%s] status: %s\n", backend, res.Status)
		if res.IsOptimal() {
			fmt.Printf("  x = %.2f, y = %.2f\n", res.Value("x"), res.Value("y"))
			fmt.Printf("  Objective = %.2f\n", res.ObjectiveValue)
		} else {
			fmt.Printf("  %s\n", res.Error)
		}
	}
}
