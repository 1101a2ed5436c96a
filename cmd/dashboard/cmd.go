package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	apiclient "github.com/txdash/transactions-dashboard/internal/client/api"
	"github.com/txdash/transactions-dashboard/internal/config"
	"github.com/txdash/transactions-dashboard/internal/view"
	"github.com/txdash/transactions-dashboard/pkg/logger"
)

// Terminal dashboard over the query service. Commands on stdin:
//
//	month <1-12>    select a month (resets the table to page 1)
//	search <text>   filter the table
//	page <n>        go to a page
//	quit
func main() {
	_ = godotenv.Load()
	cfg := config.New()
	log := logger.New(cfg.LogLevel, logger.NewCloudRunHandler)

	api := apiclient.NewAdapter(cfg.APIBaseURL)
	r := view.NewRefresher(api, view.Inputs{
		Year:  time.Now().Year(),
		Month: time.March,
	})
	defer r.Close()

	ctx := logger.ToContext(context.Background(), log)

	go renderLoop(r)

	r.Refresh(ctx)
	repl(ctx, r, log)
}

func renderLoop(r *view.Refresher) {
	for snap := range r.Snapshots() {
		fmt.Println()
		view.RenderSnapshot(os.Stdout, snap)
		fmt.Print("> ")
	}
}

func repl(ctx context.Context, r *view.Refresher, log *slog.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch cmd {
		case "month":
			n, err := strconv.Atoi(strings.TrimSpace(arg))
			if err != nil || n < 1 || n > 12 {
				fmt.Println("usage: month <1-12>")
				fmt.Print("> ")
				continue
			}
			r.SetMonth(ctx, time.Month(n))
		case "search":
			r.SetSearch(ctx, strings.TrimSpace(arg))
		case "page":
			n, err := strconv.Atoi(strings.TrimSpace(arg))
			if err != nil {
				fmt.Println("usage: page <n>")
				fmt.Print("> ")
				continue
			}
			r.SetPage(ctx, n)
		case "quit", "exit":
			return
		case "":
			fmt.Print("> ")
		default:
			fmt.Println("commands: month <1-12>, search <text>, page <n>, quit")
			fmt.Print("> ")
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("stdin read failed", "error", err)
	}
}
