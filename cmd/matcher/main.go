package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"hackportal-backend/internal/domain"
	"hackportal-backend/internal/logger"
	"hackportal-backend/internal/matcher"
	"hackportal-backend/internal/portalclient"
)

func main() {
	// A missing .env file is fine; the environment may already be populated
	_ = godotenv.Load()

	apiURL := flag.String("api", envOr("PORTAL_API_URL", "http://localhost:8080"), "Base URL of the portal API")
	token := flag.String("token", os.Getenv("PORTAL_TOKEN"), "Bearer token identifying the caller")
	logLevel := flag.String("log-level", "warn", "Log level written to stderr")
	flag.Parse()

	logger.InitializeWithWriter(*logLevel, "text", os.Stderr)

	if *token == "" {
		log.Fatal("A token is required: pass -token or set PORTAL_TOKEN")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := portalclient.New(*apiURL, *token, nil)

	verdict := matcher.NewGate(client).Check(ctx)
	if !verdict.Granted {
		fmt.Printf("The matcher is open to accepted applicants only. Redirecting to %s\n", verdict.RedirectTo)
		return
	}

	profiles, err := client.ListProfiles(ctx)
	if err != nil {
		logger.Error("Failed to load profiles", "error", err)
		profiles = nil
	}

	if err := run(ctx, os.Stdin, os.Stdout, profiles); err != nil {
		log.Fatalf("matcher: %v", err)
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer, profiles []domain.Profile) error {
	session := matcher.NewSession(profiles, matcher.NotifierFunc(func(n matcher.Notification) {
		fmt.Fprintf(out, "%s (u to undo)\n", n.Message)
		if n.Kind == matcher.ActionMatch {
			fmt.Fprintln(out, "*** It's a match! ***")
		}
	}))
	defer session.Close()

	done := make(chan struct{})
	defer close(done)
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	render(out, session.State())
	for {
		fmt.Fprint(out, "[r]ight match, [l]eft pass, [u]ndo, [q]uit > ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return nil
			}
			line = l
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "r", "right":
			session.SwipeTop(matcher.Right)
		case "l", "left":
			session.SwipeTop(matcher.Left)
		case "u", "undo":
			if !session.Undo() {
				fmt.Fprintln(out, "Nothing to undo")
			}
		case "q", "quit":
			return nil
		case "":
			continue
		default:
			fmt.Fprintf(out, "Unknown command %q\n", line)
			continue
		}
		render(out, session.State())
	}
}

func render(out io.Writer, s matcher.State) {
	top, ok := s.Top()
	if !ok {
		fmt.Fprintln(out, "No more profiles")
		fmt.Fprintln(out, "Check back later!")
		return
	}

	fmt.Fprintf(out, "\n%s  (%d left)\n", top.Name, len(s.Cards))
	fmt.Fprintln(out, strings.Repeat("-", 40))
	printField(out, "Skill level", top.SkillLevel)
	printField(out, "Hackathon experience", top.HackathonExperience)
	printField(out, "Why attend", top.WhyAttend)
	printField(out, "Project experience", top.ProjectExperience)
	printField(out, "Future plans", top.FuturePlans)
	printField(out, "Fun fact", top.FunFact)
	fmt.Fprintln(out, strings.Repeat("-", 40))
}

func printField(out io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(out, "%-22s %s\n", label+":", value)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
