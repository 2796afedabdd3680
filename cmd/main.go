package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	nextversion "github.com/GrexyLoco/K.Actions.NextActionVersion"
)

// Version will be set by build process
var Version = "dev"

type CLI struct {
	Repo         string `short:"r" help:"Repository path (default: current directory)"`
	Branch       string `short:"b" help:"Branch to analyze (default: auto-discovered from HEAD)"`
	TargetBranch string `help:"Branch used for channel classification instead of the analyzed branch"`
	FirstRelease bool   `help:"Force the first-release decision path"`
	Config       string `short:"c" help:"Config file path (default: <repo>/.nextversion.toml)"`
	JSON         bool   `short:"j" help:"Output as JSON"`
	GithubOutput bool   `help:"Append decision fields to the file named by $GITHUB_OUTPUT"`
	ShowVersion  bool   `help:"Show version information" name:"version"`
}

func main() {
	var cli CLI

	kong.Parse(&cli,
		kong.Name("nextversion"),
		kong.Description("Compute the next semantic version from Git tags, commits and branch"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": Version,
		},
	)

	err := cli.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (c *CLI) Run() error {
	if c.ShowVersion {
		fmt.Printf("nextversion version %s\n", Version)
		return nil
	}

	decision, err := c.decide()
	if err != nil {
		return err
	}

	if err := c.emit(decision); err != nil {
		return err
	}

	return c.emitGithubOutput(decision)
}

func (c *CLI) decide() (nextversion.Decision, error) {
	repoPath := c.Repo
	if repoPath == "" {
		var err error
		repoPath, err = os.Getwd()
		if err != nil {
			return nextversion.Decision{}, fmt.Errorf("getting current directory: %w", err)
		}
	}

	configPath := c.Config
	if configPath == "" {
		configPath = filepath.Join(repoPath, nextversion.ConfigFileName)
	}
	cfg, err := nextversion.LoadConfig(configPath)
	if err != nil {
		return nextversion.Decision{}, err
	}

	// A repository that cannot be opened degrades to the first-release
	// decision with the error attached; the pipeline keeps going.
	repo, err := nextversion.OpenRepository(repoPath)
	if err != nil {
		return nextversion.Decision{
			CurrentVersion: "0.0.0",
			BumpType:       nextversion.BumpNone,
			NewVersion:     "0.0.0",
			TargetBranch:   c.TargetBranch,
			Warning:        fmt.Sprintf("opening repository: %v", err),
			ActionRequired: true,
			IsFirstRelease: true,
		}, nil
	}

	return nextversion.Compute(nextversion.Options{
		Repository:        repo,
		Branch:            c.Branch,
		TargetBranch:      c.TargetBranch,
		ForceFirstRelease: c.FirstRelease,
		Channels:          cfg.Table(),
	}), nil
}

func (c *CLI) emit(decision nextversion.Decision) error {
	if c.JSON {
		return json.NewEncoder(os.Stdout).Encode(decision)
	}

	fmt.Print(formatHuman(decision))
	return nil
}

func (c *CLI) emitGithubOutput(decision nextversion.Decision) error {
	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" || (!c.GithubOutput && os.Getenv("GITHUB_ACTIONS") == "") {
		return nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening GITHUB_OUTPUT file: %w", err)
	}
	defer file.Close()

	for _, line := range githubOutputLines(decision) {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return fmt.Errorf("writing GITHUB_OUTPUT file: %w", err)
		}
	}

	return nil
}

func formatHuman(decision nextversion.Decision) string {
	var b strings.Builder

	fmt.Fprintf(&b, "current version: %s\n", decision.CurrentVersion)
	fmt.Fprintf(&b, "bump type:       %s\n", decision.BumpType)
	fmt.Fprintf(&b, "new version:     %s\n", decision.NewVersion)
	if decision.LastReleaseTag != "" {
		fmt.Fprintf(&b, "last release:    %s\n", decision.LastReleaseTag)
	}
	if decision.TargetBranch != "" {
		fmt.Fprintf(&b, "target branch:   %s\n", decision.TargetBranch)
	}
	if decision.Channel != "" {
		fmt.Fprintf(&b, "channel:         %s\n", decision.Channel)
	}
	if decision.IsFirstRelease {
		fmt.Fprintf(&b, "first release:   true\n")
	}
	if decision.Warning != "" {
		fmt.Fprintf(&b, "warning:         %s\n", decision.Warning)
	}
	if decision.ActionRequired {
		fmt.Fprintf(&b, "action required: %s\n", decision.ActionInstructions)
	}

	return b.String()
}

// githubOutputLines renders the decision as key=value pairs in the
// GitHub Actions output-file format, one per serialized field.
func githubOutputLines(decision nextversion.Decision) []string {
	return []string{
		"currentVersion=" + decision.CurrentVersion,
		"bumpType=" + string(decision.BumpType),
		"newVersion=" + decision.NewVersion,
		"lastReleaseTag=" + decision.LastReleaseTag,
		"targetBranch=" + decision.TargetBranch,
		"channel=" + string(decision.Channel),
		"warning=" + decision.Warning,
		"actionRequired=" + strconv.FormatBool(decision.ActionRequired),
		"actionInstructions=" + decision.ActionInstructions,
		"isFirstRelease=" + strconv.FormatBool(decision.IsFirstRelease),
	}
}
