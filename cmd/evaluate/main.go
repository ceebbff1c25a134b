package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"revim/internal/engine"
	"revim/internal/model"
	"revim/internal/schema"
	"revim/internal/service"
)

// evaluate runs one assessment from a saved answers file and prints
// the verdict, without requiring MongoDB or Redis.
func main() {
	answersPath := flag.String("answers", "", "path to an answers JSON file (question id -> value)")
	schemaPath := flag.String("schema", "", "optional questionnaire YAML, builtin when empty")
	asJSON := flag.Bool("json", false, "print the full result as JSON")
	verbose := flag.Bool("v", false, "print the computation log")
	flag.Parse()

	if *answersPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	questionnaire, err := schema.Load(*schemaPath)
	if err != nil {
		log.Fatal(err)
	}

	payload, err := os.ReadFile(*answersPath)
	if err != nil {
		log.Fatal(err)
	}
	answers, err := service.DecodeAnswers(string(payload))
	if err != nil {
		log.Fatal(err)
	}

	eng := engine.New(engine.DefaultConfig())
	result, err := eng.Evaluate(questionnaire, answers)
	if err != nil {
		log.Fatal(err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatal(err)
		}
		return
	}

	printResult(result, *verbose)
}

func printResult(result *model.EvaluationResult, verbose bool) {
	fmt.Printf("Relationship NPV:        %8.2f  (over %d years, base rate %.1f%%)\n",
		result.NPV, result.HorizonYears, result.DiscountRate*100)
	fmt.Printf("  before switching cost: %8.2f\n", result.NPVBeforeSwitchingCost)
	fmt.Printf("  switching cost (I0):   %8.2f\n", result.SwitchingCost)
	fmt.Printf("Best alternative NPV:    %8.2f  (+ sunk-cost bias %.2f)\n",
		result.NPVAlternative, result.SunkCostBias)
	fmt.Println()
	fmt.Println("Verdict:", result.Verdict.Text)
	for _, line := range result.Interpretation {
		fmt.Println("  -", line)
	}

	if len(result.Diagnostics) > 0 {
		fmt.Println()
		fmt.Println("Warnings:")
		for _, d := range result.Diagnostics {
			fmt.Printf("  - [%s] %s\n", d.Code, d.Message)
		}
	}

	if verbose {
		fmt.Println()
		fmt.Println("Computation log:")
		for _, line := range result.Log {
			fmt.Println("  ", line)
		}
	}
}
