package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"collabhub/internal/ai"
	"collabhub/internal/analytics"
	"collabhub/internal/cmdlog"
	"collabhub/internal/config"
	"collabhub/internal/conversation"
	"collabhub/internal/logging"
	"collabhub/internal/metrics"
	"collabhub/internal/query"
	"collabhub/internal/session"
	"collabhub/internal/store"
	"collabhub/internal/store/sqlitekv"
	"collabhub/internal/theme"
)

const defaultConfigPath = "./collabhub.yaml"

type command struct {
	run  func(args []string) error
	help string
}

var commands = map[string]command{
	"init":        {cmdInit, "Create a config file at ./collabhub.yaml"},
	"login":       {cmdLogin, "Log in with the demo credentials"},
	"logout":      {cmdLogout, "Clear the session flag"},
	"search":      {cmdSearch, "Search the influencer pool"},
	"discover":    {cmdDiscover, "Find influencers from a free-text description"},
	"profile":     {cmdProfile, "Show an influencer and its campaign records"},
	"campaigns":   {cmdCampaigns, "List, create, delete or reorder campaigns"},
	"kanban":      {cmdKanban, "Show or edit a campaign pipeline"},
	"manage":      {cmdManage, "Show or update campaign members"},
	"add":         {cmdAdd, "Add influencers to a campaign"},
	"remove":      {cmdRemove, "Remove influencers from a campaign"},
	"move":        {cmdMove, "Move influencers between campaigns"},
	"suggest":     {cmdSuggest, "Suggest influencers from other campaigns"},
	"performance": {cmdPerformance, "Content and budget report"},
	"inbox":       {cmdInbox, "List, filter and answer conversations"},
	"activity":    {cmdActivity, "Hourly journal of workspace changes"},
}

func main() {
	name := ""
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	c, ok := commands[name]
	if !ok {
		printHelp()
		return
	}
	if err := cmdlog.Run(name, func() error { return c.run(os.Args[2:]) }); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: collabhub <command> [options]")
	fmt.Println("Commands:")
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("  %-12s %s\n", n, commands[n].help)
	}
}

var errNotLoggedIn = errors.New("not logged in; run `collabhub login` first")

// app is the wired workspace of one CLI run. Entity data starts from the
// demo seed every run; only the session flag and the activity journal are
// kept on disk.
type app struct {
	cfg     config.Config
	db      *sqlitekv.DB
	store   *store.Store
	engine  *query.Engine
	inbox   *conversation.Inbox
	session *session.Manager
	ai      ai.Client
	stop    []func()
}

func newFlagSetOnly(name string) *flag.FlagSet { return flag.NewFlagSet(name, flag.ExitOnError) }

func newFlags(name string) (*flag.FlagSet, *string) {
	fs := newFlagSetOnly(name)
	return fs, fs.String("config", defaultConfigPath, "config path")
}

func openApp(cfgPath string) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	logging.SetLevel(cfg.Logging.Level)
	metrics.StartServer(cfg.Metrics.Addr)

	db, err := sqlitekv.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	sess, err := session.New(context.Background(), db, cfg.Session)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}
	s := store.NewSeeded()
	a := &app{
		cfg:     cfg,
		db:      db,
		store:   s,
		engine:  query.New(s, query.WithLatency(cfg.Search.Latency)),
		inbox:   conversation.NewSeeded(time.Now(), conversation.WithLatency(cfg.Conversations.ListLatency, cfg.Conversations.GetLatency)),
		session: sess,
		ai:      ai.New(cfg.LLM, s.Influencers),
	}
	a.stop = append(a.stop,
		s.Subscribe(func(c store.Change) { metrics.IncMutation(string(c.Kind)) }),
		analytics.NewRecorder(db, nil).Attach(s),
	)
	return a, nil
}

// openWorkspace opens the app and checks the session.
func openWorkspace(cfgPath string) (*app, error) {
	a, err := openApp(cfgPath)
	if err != nil {
		return nil, err
	}
	if !a.session.IsLoggedIn() {
		a.Close()
		return nil, errNotLoggedIn
	}
	return a, nil
}

func (a *app) Close() {
	for _, f := range a.stop {
		f()
	}
	_ = a.db.Close()
}

// parsePair reads "from,to" index pairs.
func parsePair(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want from,to: %q", s)
	}
	from, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("from index: %w", err)
	}
	to, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("to index: %w", err)
	}
	return from, to, nil
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// optInt maps negative flag values to "unset".
func optInt(v int) *int {
	if v < 0 {
		return nil
	}
	return &v
}

func optFloat(v float64) *float64 {
	if v < 0 {
		return nil
	}
	return &v
}
