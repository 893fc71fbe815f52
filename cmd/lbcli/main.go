package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"crosswarped.com/lbx"
)

type config struct {
	Top    string `yaml:"top"`
	Left   string `yaml:"left"`
	Bottom string `yaml:"bottom"`
	Right  string `yaml:"right"`
	Min    int    `yaml:"min"`
	Max    int    `yaml:"max"`
	Depth  int    `yaml:"depth"`
	Dict   string `yaml:"dict"`
}

func main() {

	top := flag.String("top", "", "Letters on the top side of the box")
	left := flag.String("left", "", "Letters on the left side of the box")
	bottom := flag.String("bottom", "", "Letters on the bottom side of the box")
	right := flag.String("right", "", "Letters on the right side of the box")
	minLength := flag.Int("min", 0, "The minimum word length in a solution (default 4)")
	maxLength := flag.Int("max", 0, "The maximum word length in a solution (default: no limit)")
	depth := flag.Int("depth", 0, "The maximum number of words in a solution (default 4)")
	dict := flag.String("dict", "", "The dictionary file to load words from")
	noRepeats := flag.Bool("no-repeats", false, "Disallow using the same word twice in one solution")
	configFile := flag.String("config", "", "YAML file with puzzle and search parameters; flags override it")

	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the search")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	cfg := config{Dict: "/usr/share/dict/words"}
	if *configFile != "" {
		data, err := os.ReadFile(*configFile)
		if err != nil {
			fmt.Println("Error reading config file:", err)
			os.Exit(1)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fmt.Println("Error parsing config file:", err)
			os.Exit(1)
		}
	}
	if *top != "" {
		cfg.Top = *top
	}
	if *left != "" {
		cfg.Left = *left
	}
	if *bottom != "" {
		cfg.Bottom = *bottom
	}
	if *right != "" {
		cfg.Right = *right
	}
	if *minLength > 0 {
		cfg.Min = *minLength
	}
	if *maxLength > 0 {
		cfg.Max = *maxLength
	}
	if *depth > 0 {
		cfg.Depth = *depth
	}
	if *dict != "" {
		cfg.Dict = *dict
	}

	if cfg.Top == "" || cfg.Left == "" || cfg.Bottom == "" || cfg.Right == "" {
		fmt.Println("All four sides are required (-top, -left, -bottom, -right)")
		os.Exit(1)
	}

	ctx := context.Background()

	fmt.Println("Loading words from file...")
	words, err := loadFromFile(ctx, cfg.Dict)
	if err != nil {
		fmt.Println("Error loading words from file:", err)
		os.Exit(1)
	}
	fmt.Println("Dictionary words:", len(words))

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			fmt.Println("Error creating memory profile file:", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	solver, err := lbx.CreateSolver(cfg.Top, cfg.Left, cfg.Bottom, cfg.Right, words, lbx.SolverParams{
		MinWordLength: cfg.Min,
		MaxWordLength: cfg.Max,
		MaxDepth:      cfg.Depth,
		NoRepeatWords: *noRepeats,
	})
	if err != nil {
		fmt.Println("Error creating solver:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	stopSpinner := startSpinner()
	set, err := solver.Solve(ctx)
	stopSpinner()

	if set.Len() == 0 {
		fmt.Println("No solutions found")
	} else {
		for i, solution := range set.All() {
			fmt.Printf("%d. %s\n", i+1, solution.Repr())
		}
	}

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}

	if err != nil {
		fmt.Println("Context error:", err)
	}
}

// startSpinner renders a spinner with elapsed time until the returned
// stop function is called.
func startSpinner() func() {
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		frames := []rune{'-', '\\', '|', '/'}
		start := time.Now()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-done:
				fmt.Println()
				return
			case <-ticker.C:
				fmt.Printf("\r%c %.2fs", frames[i%len(frames)], time.Since(start).Seconds())
				i++
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}

func loadFromFile(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// Entries with punctuation or stray characters are left in; the
		// word filter silently rejects anything not playable on the box.
		words = append(words, word)
	}
	return words, scanner.Err()
}
