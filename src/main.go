package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"google.golang.org/api/iterator"

	"crosswarped.com/lbx"
)

type SolvePuzzleRequest struct {
	Top            string   `json:"top"`
	Left           string   `json:"left"`
	Bottom         string   `json:"bottom"`
	Right          string   `json:"right"`
	MinWordLength  int      `json:"minWordLength"`
	MaxWordLength  int      `json:"maxWordLength"`
	MaxDepth       int      `json:"maxDepth"`
	WordScope      string   `json:"wordScope"`
	IncludeObscure bool     `json:"includeObscure"`
	ExtraWords     []string `json:"extraWords"`
	MaxSolutions   int      `json:"maxSolutions"`
}

type SolvePuzzleResponse struct {
	Success   bool     `json:"success"`
	Solutions []string `json:"solutions"`
	Error     string   `json:"error,omitempty"`
}

func getWords(ctx context.Context, scope string, includeObscure bool) ([]string, error) {
	client, err := bigquery.NewClient(ctx, "lbx-solver")
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	obscureValues := []string{"false"}
	if includeObscure {
		obscureValues = append(obscureValues, "true")
	}
	query := fmt.Sprintf("SELECT word_key FROM `lbx-solver.FirestoreQuery.all_words` WHERE scope = %q AND obscure IN (%s)", scope, strings.Join(obscureValues, ","))
	q := client.Query(query)
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}

func execute(ctx context.Context, req SolvePuzzleRequest) ([]string, error) {
	if req.MaxSolutions <= 0 {
		return nil, fmt.Errorf("maxSolutions must be at least 1")
	}
	if req.MaxSolutions > 100 {
		return nil, fmt.Errorf("maxSolutions must be at most 100")
	}

	words := make([]string, 0, len(req.ExtraWords))
	for _, word := range req.ExtraWords {
		words = append(words, strings.ToLower(word))
	}

	if req.WordScope != "" {
		scoped, err := getWords(ctx, req.WordScope, req.IncludeObscure)
		if err != nil {
			return nil, fmt.Errorf("getWords: %w", err)
		}
		fmt.Printf("Loaded %d words for scope %q\n", len(scoped), req.WordScope)

		words = append(words, scoped...)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("no words to search; provide wordScope or extraWords")
	}

	solver, err := lbx.CreateSolver(req.Top, req.Left, req.Bottom, req.Right, words, lbx.SolverParams{
		MinWordLength: req.MinWordLength,
		MaxWordLength: req.MaxWordLength,
		MaxDepth:      req.MaxDepth,
	})
	if err != nil {
		return nil, err
	}

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
		fmt.Printf("Setting timeout to %v\n", timeout)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var solutions []string
	count := 0
	for solution := range solver.Solutions(ctx) {
		solutions = append(solutions, solution.Repr())
		count++
		if count >= req.MaxSolutions {
			break
		}
	}

	return solutions, ctx.Err()
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func solvePuzzle(w http.ResponseWriter, r *http.Request) {
	// Set CORS headers
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolvePuzzleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("Error parsing JSON body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		response := SolvePuzzleResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	solutions, err := execute(r.Context(), req)

	response := SolvePuzzleResponse{
		Success:   err == nil,
		Solutions: solutions,
	}

	if err != nil {
		response.Error = err.Error()
	} else if len(solutions) == 0 {
		response.Error = "No solution chains found for the given puzzle and dictionary"
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Printf("Error marshaling response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/solve-puzzle", solvePuzzle)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
