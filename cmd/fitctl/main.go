// Command fitctl is the FitTrack command-line client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/fittrack/fittrack/internal/logging"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type command struct {
	usage string
	run   func(ctx context.Context, app *app, args []string) error
}

var commands = map[string]command{
	"signup":    {"signup --name N --email E --password P [--location L] [--height CM]", runSignup},
	"login":     {"login --email E --password P", runLogin},
	"logout":    {"logout", runLogout},
	"pull":      {"pull", runPull},
	"measure":   {"measure --weight KG [--waist-lower CM] [--hip CM] ... [--date D]", runMeasure},
	"workout":   {"workout [--type T] [--duration MIN] [--completed] [--exercise name:sets:reps:kg]... [--date D]", runWorkout},
	"diet":      {"diet [--breakfast name:qty:unit]... [--junk ...]... [--water L] [--eggs N] [--date D]", runDiet},
	"settings":  {"settings [--target-date D] [--target-weight KG] [--target-waist IN] [--start-weight KG] [--height CM]", runSettings},
	"schedule":  {"schedule --day Monday --focus F [--exercise E]...", runSchedule},
	"dashboard": {"dashboard [--days 30] [--local]", runDashboard},
	"export":    {"export", runExport},
	"photo":     {"photo add --file F [--date D] [--note N] | photo list | photo rm --id ID", runPhoto},
}

func main() {
	global := pflag.NewFlagSet("fitctl", pflag.ContinueOnError)
	global.SetInterspersed(false)
	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(home, ".fittrack")
	global.String("api", "http://localhost:8080/api", "FitTrack API base URL")
	global.String("session", filepath.Join(dataDir, "session.json"), "session file")
	global.String("photos", filepath.Join(dataDir, "photos.json"), "local photo store")
	global.String("log-level", "warn", "log level")
	global.Usage = usage(global)

	if err := global.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	v := viper.New()
	v.SetEnvPrefix("FITCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(global); err != nil {
		log.Fatalf("bind flags: %s", err)
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(logging.GetLevel(v.GetString("log-level")))

	args := global.Args()
	if len(args) == 0 {
		global.Usage()
		os.Exit(2)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		global.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(v.GetString("api"), v.GetString("session"), v.GetString("photos"), os.Stdout)
	if err := cmd.run(ctx, a, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fitctl %s: %s\n", args[0], err)
		stop()
		os.Exit(1)
	}
}

func usage(fs *pflag.FlagSet) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "usage: fitctl [global flags] <command> [flags]\n\ncommands:\n")
		names := make([]string, 0, len(commands))
		for name := range commands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(os.Stderr, "  %s\n", commands[name].usage)
		}
		fmt.Fprintf(os.Stderr, "\nglobal flags (env FITCTL_<NAME>):\n%s", fs.FlagUsages())
	}
}
