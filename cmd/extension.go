package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extension processes. All but the verbose
// flag are the same variables the configuration layer reads, so an extension
// built on this module sees the resolved settings of the calling process.
const (
	EnvConfigFile = "FINTRACK_CONFIG"
	EnvFeedURL    = "FINTRACK_FEED_URL"
	EnvScriptURL  = "FINTRACK_SCRIPT_URL"
	EnvCurrency   = "FINTRACK_CURRENCY"
	EnvGoal       = "FINTRACK_GOAL"
	EnvVerbose    = "FINTRACK_VERBOSE"
)

// RunExtension attempts to find and execute an external fintrack-<subcommand>
// binary. It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) when no extension exists for the subcommand.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "fintrack-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	ext := exec.Command(lp, args...)
	ext.Stdin = os.Stdin
	ext.Stdout = os.Stdout
	ext.Stderr = os.Stderr

	ext.Env = append(os.Environ(),
		EnvConfigFile+"="+*configFile,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)
	if cfg, err := loadAppConfig(); err == nil {
		ext.Env = append(ext.Env,
			EnvFeedURL+"="+cfg.FeedURL,
			EnvScriptURL+"="+cfg.ScriptURL,
			EnvCurrency+"="+cfg.Currency,
			EnvGoal+"="+strconv.FormatFloat(cfg.Goal, 'f', -1, 64),
		)
	}

	if err := ext.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
