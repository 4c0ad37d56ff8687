package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/agenthands/concord/internal/core/model"
)

type scenario struct {
	name  string
	textA string
	textB string
	check func(model.ComparisonReport) error
}

var scenarios = []scenario{
	{
		name:  "identical documents",
		textA: "The meeting is at 3pm on Monday.",
		textB: "The meeting is at 3pm on Monday.",
		check: func(r model.ComparisonReport) error {
			if r.MatchCount != 1 || len(r.Conflicts) != 0 || len(r.UniqueToA) != 0 || len(r.UniqueToB) != 0 {
				return fmt.Errorf("want one match and nothing else, got %+v", r)
			}
			return nil
		},
	},
	{
		name:  "modified statement",
		textA: "All staff must work Monday through Thursday in the office.",
		textB: "All staff must work Monday through Friday in the office.",
		check: func(r model.ComparisonReport) error {
			if len(r.Conflicts) != 1 {
				return fmt.Errorf("want one conflict, got %d", len(r.Conflicts))
			}
			if s := r.Conflicts[0].Score; s < 0.5 || s >= 0.95 {
				return fmt.Errorf("conflict score %v out of range", s)
			}
			return nil
		},
	},
	{
		name:  "unrelated statements",
		textA: "Employees get 20 vacation days per year.",
		textB: "The cafeteria is open until 9pm.",
		check: func(r model.ComparisonReport) error {
			if len(r.UniqueToA) != 1 || len(r.UniqueToB) != 1 || len(r.Conflicts) != 0 || r.MatchCount != 0 {
				return fmt.Errorf("want one unique sentence per side, got %+v", r)
			}
			return nil
		},
	},
	{
		name:  "empty document",
		textA: "",
		textB: "Some policy text here.",
		check: func(r model.ComparisonReport) error {
			if len(r.UniqueToA) != 0 || len(r.UniqueToB) != 1 || len(r.Conflicts) != 0 || r.MatchCount != 0 {
				return fmt.Errorf("want one unique B sentence, got %+v", r)
			}
			return nil
		},
	},
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	wait := flag.Duration("wait", 2*time.Second, "time to wait for the server to start")
	flag.Parse()

	time.Sleep(*wait)

	fmt.Println("Starting smoke test...")
	failed := false
	for i, sc := range scenarios {
		fmt.Printf("%d. %s...\n", i+1, sc.name)
		report, err := compare(*baseURL, sc.textA, sc.textB)
		if err == nil {
			err = sc.check(report)
		}
		if err != nil {
			fmt.Printf("FAILED: %s: %v\n", sc.name, err)
			failed = true
			continue
		}
		fmt.Printf("PASSED: %s\n", sc.name)
	}

	if failed {
		os.Exit(1)
	}
}

func compare(baseURL, textA, textB string) (model.ComparisonReport, error) {
	var report model.ComparisonReport

	payload, err := json.Marshal(map[string]string{"text_a": textA, "text_b": textB})
	if err != nil {
		return report, err
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(baseURL+"/compare", "application/json", bytes.NewReader(payload))
	if err != nil {
		return report, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return report, err
	}
	if resp.StatusCode != http.StatusOK {
		return report, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, &report); err != nil {
		return report, fmt.Errorf("invalid report: %w", err)
	}
	return report, nil
}
