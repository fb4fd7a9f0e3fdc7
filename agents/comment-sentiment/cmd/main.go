package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	commentsentiment "sentiment-stack/agents/comment-sentiment"
	"sentiment-stack/agents/comment-sentiment/youtube"
	"sentiment-stack/shared/config"
	"sentiment-stack/shared/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context that responds to signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	agent := commentsentiment.New(cfg)
	s := scheduler.New(cfg, agent)

	if len(os.Args) > 1 && os.Args[1] == "--once" {
		if err := agent.Initialize(); err != nil {
			log.Fatalf("Failed to initialize agent: %v", err)
		}

		// A video argument analyzes just that one and prints the result;
		// no argument runs the full configured set, digest and all.
		if len(os.Args) > 2 {
			analyzeOne(ctx, agent, os.Args[2])
			return
		}

		fmt.Println("Running once...")
		if err := s.RunOnce(ctx); err != nil {
			log.Fatalf("Failed to run: %v", err)
		}
		return
	}

	fmt.Println("Starting scheduler...")
	if err := s.Start(ctx); err != nil {
		log.Fatalf("Scheduler failed: %v", err)
	}
}

func analyzeOne(ctx context.Context, agent *commentsentiment.CommentSentimentAgent, input string) {
	report, err := agent.AnalyzeVideo(ctx, input)
	if err != nil {
		var srcErr *youtube.SourceError
		switch {
		case errors.Is(err, youtube.ErrVideoNotFound):
			log.Fatalf("Video not found: %s", input)
		case errors.As(err, &srcErr):
			log.Fatalf("YouTube request failed (%s): %v", srcErr.Op, srcErr.Err)
		default:
			log.Fatalf("Failed to analyze %s: %v", input, err)
		}
	}

	renderReport(os.Stdout, report)

	if path, err := agent.ExportReport(report); err != nil {
		log.Printf("Warning: failed to export results: %v", err)
	} else if path != "" {
		fmt.Printf("\nResults exported to %s\n", path)
	}
}
