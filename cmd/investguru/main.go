package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rajeshacpt/Invest-Guru/internal/api"
	"github.com/rajeshacpt/Invest-Guru/internal/app"
	"github.com/rajeshacpt/Invest-Guru/internal/config"
	"github.com/rajeshacpt/Invest-Guru/internal/recorder"
	"github.com/rajeshacpt/Invest-Guru/internal/scheduler"
	"github.com/rajeshacpt/Invest-Guru/internal/session"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := flag.String("config", "configs/config.yaml", "Config file path")
	action := flag.String("action", "status", "Action: status, health, register, login, logout, me, list, add, quote, job, jobstatus, watch")
	symbol := flag.String("symbol", "MSFT", "Ticker symbol")
	username := flag.String("username", "", "Username for register/login")
	password := flag.String("password", "", "Password for register/login")
	jobID := flag.String("job-id", "", "Job id for jobstatus")
	flag.Parse()

	if v := os.Getenv("CONFIG_PATH"); v != "" {
		*cfgPath = v
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.Proxy)
	store := session.NewFileStore(cfg.Session.TokenFile)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctrl := app.NewController(client, store, rec)
	ctrl.Start()

	switch *action {
	case "status":
		fmt.Printf("API health: %s\n", ctrl.Status())
		fmt.Printf("State: %s\n", ctrl.State())
		printWatchlist(ctrl)

	case "health":
		fmt.Printf("API health: %s\n", ctrl.Status())

	case "register":
		requireCredentials(*username, *password)
		if err := ctrl.Register(*username, *password); err != nil {
			log.Fatalf("[FATAL] register: %s", ctrl.Message())
		}
		fmt.Println("Account created and logged in.")
		printWatchlist(ctrl)

	case "login":
		requireCredentials(*username, *password)
		if err := ctrl.Login(*username, *password); err != nil {
			log.Fatalf("[FATAL] login: %s", ctrl.Message())
		}
		fmt.Println("Logged in.")
		printWatchlist(ctrl)

	case "logout":
		if err := ctrl.Logout(); err != nil {
			log.Fatalf("[FATAL] logout: %v", err)
		}
		fmt.Println("Logged out.")

	case "me":
		sess := store.Load()
		if !sess.Present() {
			log.Fatal("[FATAL] not logged in")
		}
		user, err := client.Me(sess.Token)
		if err != nil {
			log.Fatalf("[FATAL] me: %v", err)
		}
		fmt.Printf("Logged in as %s (id %d)\n", user.Username, user.ID)

	case "list":
		printWatchlist(ctrl)

	case "add":
		if err := ctrl.AddSymbol(*symbol); err != nil {
			log.Fatalf("[FATAL] add: %s", ctrl.Message())
		}
		printWatchlist(ctrl)

	case "quote":
		if err := ctrl.FetchQuote(*symbol); err != nil {
			log.Fatalf("[FATAL] quote: %s", ctrl.Message())
		}
		printQuote(ctrl)

	case "job":
		id, err := ctrl.EnqueueJob(*symbol)
		if err != nil {
			log.Fatalf("[FATAL] job: %s", ctrl.Message())
		}
		fmt.Printf("Job queued: %s\n", id)

	case "jobstatus":
		if *jobID == "" {
			log.Fatal("[FATAL] -job-id is required")
		}
		state, err := client.JobStatus(*jobID)
		if err != nil {
			log.Fatalf("[FATAL] job status: %v", err)
		}
		fmt.Printf("Job %s: %s\n", state.ID, state.Status)

	case "watch":
		runWatch(cfg, ctrl)

	default:
		log.Fatalf("[FATAL] unknown action: %s", *action)
	}
}

// runWatch keeps the process alive and sweeps watchlist quotes on the
// configured cron schedule until interrupted.
func runWatch(cfg *config.Config, ctrl *app.Controller) {
	log.Println("[INFO] invest-guru watch mode starting...")
	if ctrl.State() != app.StateAuthenticated {
		log.Fatal("[FATAL] watch mode requires a stored session; run -action login first")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, ctrl)
	if err := sched.RegisterAll(cfg.Schedule.QuoteCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing sweep now")
		go sched.RunSweepNow()
	}

	log.Println("[INFO] watch mode is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
}

func requireCredentials(username, password string) {
	if username == "" || password == "" {
		log.Fatal("[FATAL] -username and -password are required")
	}
}

func printWatchlist(ctrl *app.Controller) {
	items := ctrl.Watchlist()
	if len(items) == 0 {
		fmt.Println("Watchlist: (empty)")
		return
	}
	fmt.Println("Watchlist:")
	for _, item := range items {
		fmt.Printf("  %s\n", item.Symbol)
	}
}

func printQuote(ctrl *app.Controller) {
	q := ctrl.Quote()
	if q == nil {
		return
	}
	fmt.Printf("%s — %s\n", q.Symbol, q.Name)
	fmt.Printf("Date/Time: %s %s\n", q.Date, q.Time)
	fmt.Printf("O: %s H: %s L: %s C: %s Vol: %s\n", q.Open, q.High, q.Low, q.Close, q.Volume)
}
