package lptext

// Example is a ready-to-solve textual problem, usable for demos and as a
// smoke test of the full parse-and-solve pipeline.
type Example struct {
	Name        string
	Title       string
	Objective   string
	Constraints string
	Maximize    bool
}

// Examples returns the built-in example problems.
func Examples() []Example {
	return []Example{
		{
			Name:      "production",
			Title:     "Production Planning",
			Objective: "Max Z = x + y - 50",
			Constraints: "50x + 24y <= 2400\n" +
				"30x + 33y <= 2100\n" +
				"x >= 45\n" +
				"y >= 5",
			Maximize: true,
		},
		{
			Name:      "diet",
			Title:     "Diet Problem",
			Objective: "Min Z = 2x1 + 3x2 + 4x3",
			Constraints: "30x1 + 20x2 + 40x3 >= 150\n" +
				"50x1 + 10x2 + 5x3 >= 100\n" +
				"x1 <= 5\n" +
				"x2 <= 5\n" +
				"x3 <= 5",
		},
		{
			Name:      "transportation",
			Title:     "Transportation Problem",
			Objective: "Min Z = 5x11 + 7x12 + 9x13 + 8x21 + 4x22 + 6x23",
			Constraints: "x11 + x12 + x13 <= 100\n" +
				"x21 + x22 + x23 <= 150\n" +
				"x11 + x21 >= 80\n" +
				"x12 + x22 >= 70\n" +
				"x13 + x23 >= 90",
		},
		{
			Name:      "portfolio",
			Title:     "Portfolio Optimization",
			Objective: "Max Z = 0.12x1 + 0.09x2 + 0.05x3",
			Constraints: "x1 + x2 + x3 <= 10000\n" +
				"x1 <= 6000\n" +
				"x2 <= 4000\n" +
				"x3 >= 3000\n" +
				"x1 <= 5000\n" +
				"x2 <= 5000",
			Maximize: true,
		},
	}
}
