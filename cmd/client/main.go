package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"hero-lab/domain"
	"hero-lab/infrastructure/rest/client"
	"hero-lab/services"
	"hero-lab/ui"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Load configuration from environment variables.
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Wire the data-access layer against the configured backend.
	messages := services.NewMessageService()
	api := client.NewHeroAPI(http.DefaultClient, config.ServerURL+"/api/heroes", log)
	heroService := services.NewHeroService(api, messages, log)

	heroes := ui.NewHeroesController(heroService)
	dashboard := ui.NewDashboardController(heroService)
	detail := ui.NewDetailController(heroService)
	searcher := ui.NewHeroSearchController(heroService, config.SearchDebounce)

	heroes.Load(ctx)
	color.Green.Printf("Connected to %s — %d heroes loaded (type 'help')\n",
		config.ServerURL, len(heroes.Heroes))

	// 4. Command loop.
	scanner := bufio.NewScanner(os.Stdin)
	for {
		color.Cyan.Print("> ")
		if !scanner.Scan() {
			return exitOK, scanner.Err()
		}
		if ctx.Err() != nil {
			return exitOK, nil
		}

		command, argument := splitCommand(scanner.Text())
		switch command {
		case "", "help":
			printHelp()
		case "list":
			heroes.Load(ctx)
			renderHeroes(heroes.Heroes)
		case "dashboard":
			dashboard.Load(ctx)
			renderHeroes(dashboard.Heroes)
		case "add":
			heroes.Add(ctx, argument)
			renderHeroes(heroes.Heroes)
		case "delete":
			id, err := strconv.Atoi(argument)
			if err != nil {
				color.Red.Println("usage: delete <id>")
				continue
			}
			if hero, ok := lo.Find(heroes.Heroes, func(h domain.Hero) bool { return h.ID == id }); ok {
				heroes.Delete(ctx, hero)
			}
			renderHeroes(heroes.Heroes)
		case "show":
			id, err := strconv.Atoi(argument)
			if err != nil {
				color.Red.Println("usage: show <id>")
				continue
			}
			detail.Load(ctx, id)
			if !detail.Found {
				color.Yellow.Printf("no hero with id=%d\n", id)
				continue
			}
			renderHeroes([]domain.Hero{detail.Hero})
		case "rename":
			fields := strings.SplitN(argument, " ", 2)
			if len(fields) != 2 {
				color.Red.Println("usage: rename <id> <new name>")
				continue
			}
			id, err := strconv.Atoi(fields[0])
			if err != nil {
				color.Red.Println("usage: rename <id> <new name>")
				continue
			}
			detail.Load(ctx, id)
			if !detail.Found {
				color.Yellow.Printf("no hero with id=%d\n", id)
				continue
			}
			detail.Hero.Name = strings.TrimSpace(fields[1])
			if detail.Save(ctx) {
				color.Green.Printf("renamed hero id=%d\n", id)
			}
		case "search":
			liveSearch(ctx, searcher, scanner)
		case "messages":
			for _, message := range messages.Messages() {
				fmt.Println(message)
			}
		case "clear":
			messages.Clear()
		case "quit", "exit":
			return exitOK, nil
		default:
			color.Red.Printf("unknown command %q\n", command)
		}
	}
}

// liveSearch streams typed lines into the debounced pipeline and prints
// each result batch as it lands. A blank line leaves search mode.
func liveSearch(ctx context.Context, searcher *ui.HeroSearchController, scanner *bufio.Scanner) {
	color.Cyan.Println("live search — type terms, blank line to stop")

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	terms := make(chan string)
	results := searcher.Results(searchCtx, terms)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for batch := range results {
			renderHeroes(batch)
		}
	}()

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		select {
		case terms <- line:
		case <-searchCtx.Done():
		}
	}
	close(terms)
	<-done
}

func renderHeroes(heroes []domain.Hero) {
	if len(heroes) == 0 {
		color.Yellow.Println("no heroes")
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name"})
	for _, hero := range heroes {
		table.Append([]string{strconv.Itoa(hero.ID), hero.Name})
	}
	table.Render()
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	command, argument, _ := strings.Cut(line, " ")
	return strings.ToLower(command), strings.TrimSpace(argument)
}

func printHelp() {
	fmt.Println(`commands:
  list                 fetch and show all heroes
  dashboard            show the top heroes band
  add <name>           create a hero
  delete <id>          remove a hero (optimistic)
  show <id>            fetch one hero by id
  rename <id> <name>   update a hero's name
  search               enter live search mode
  messages             print the message log
  clear                reset the message log
  quit                 leave`)
}
