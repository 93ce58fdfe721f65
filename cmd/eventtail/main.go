// Command eventtail prints agent interaction events from NATS as they arrive.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"microlearn-agent-be/internal/config"
	"microlearn-agent-be/pkg/analytics"
	"microlearn-agent-be/pkg/events"
	pktNats "microlearn-agent-be/pkg/nats"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	natsURL := flag.String("nats", cfg.App.NatsURL, "NATS server URL")
	durable := flag.String("durable", "agent-eventtail", "durable consumer name")
	kind := flag.String("kind", "", "only show one event kind, e.g. AGENT_QUESTION_ANSWERED")
	flag.Parse()

	subject := pktNats.AllSubjects
	if *kind != "" {
		subject = pktNats.SubjectFor(*kind)
	}

	sub, err := pktNats.NewSubscriber(*natsURL)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cc, err := sub.Subscribe(ctx, subject, *durable, func(ctx context.Context, event events.Event) error {
		fmt.Println(formatEvent(event))
		return nil
	})
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer cc.Stop()

	color.Cyan("Listening on %s (durable %s)", subject, *durable)
	<-ctx.Done()
	fmt.Fprintln(os.Stderr)
}

func formatEvent(event events.Event) string {
	data := event.Payload()
	ts := event.Timestamp().Format(time.TimeOnly)

	switch event.EventType() {
	case analytics.KindTopicSelected:
		source := "typed"
		if b, _ := data["is_pill_button"].(bool); b {
			source = "pill"
		}
		return fmt.Sprintf("%s %s %s (%s) conv=%v",
			ts, color.BlueString("TOPIC   "), color.New(color.Bold).Sprint(data["topic"]), source, data["conversation_id"])

	case analytics.KindQuestionAnswered:
		status := color.GreenString("matched")
		if b, _ := data["matched"].(bool); !b {
			status = color.RedString("fallback")
		}
		detail := ""
		if outcome, ok := data["outcome"]; ok {
			detail = fmt.Sprintf(" via %v", outcome)
			if entry, ok := data["entry_id"]; ok {
				detail += fmt.Sprintf(":%v", entry)
			}
		}
		return fmt.Sprintf("%s %s %q %s%s conv=%v",
			ts, color.MagentaString("QUESTION"), data["question"], status, detail, data["conversation_id"])
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, data[k]))
	}
	return fmt.Sprintf("%s %s %s", ts, color.YellowString(event.EventType()), strings.Join(parts, " "))
}
