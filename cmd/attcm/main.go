package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/attuned.commitmsg/internal/termfix"

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wahlandcase/attuned.commitmsg/internal/config"
	"github.com/wahlandcase/attuned.commitmsg/internal/git"
	"github.com/wahlandcase/attuned.commitmsg/internal/hook"
	"github.com/wahlandcase/attuned.commitmsg/internal/ui"
	"github.com/wahlandcase/attuned.commitmsg/internal/update"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "attcm",
		Short: "Commit-msg hook that stamps Change-Id and AI attribution trailers",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(installCmd())
	rootCmd.AddCommand(uninstallCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(updateCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the file config and layers the repository's git
// config on top
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if wd, err := os.Getwd(); err == nil {
		cfg.ApplyGitConfig(wd)
	}
	return cfg, nil
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <msg-file>",
		Short: "Rewrite a commit message file (the hook entry point)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			runner := hook.NewRunner(cfg, "")
			_, err = runner.Run(context.Background(), args[0])
			return err
		},
	}
}

func installCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install or upgrade the commit-msg hook in the current repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			gitDir, err := git.GitDir(cmd.Context(), "")
			if err != nil {
				return fmt.Errorf("not inside a git repository: %w", err)
			}

			if err := hook.Install(gitDir, Version); err != nil {
				return err
			}
			fmt.Println(ui.Success("commit-msg hook installed"))

			maybeNotifyUpdate()
			return nil
		},
	}
}

func uninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the managed section from the commit-msg hook",
		RunE: func(cmd *cobra.Command, args []string) error {
			gitDir, err := git.GitDir(cmd.Context(), "")
			if err != nil {
				return fmt.Errorf("not inside a git repository: %w", err)
			}

			found, err := hook.Uninstall(gitDir)
			if err != nil {
				return err
			}
			if !found {
				fmt.Println(ui.Warn("no managed hook section found"))
				return nil
			}
			fmt.Println(ui.Success("commit-msg hook removed"))
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show hook installation state and resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fmt.Println(ui.Title("attcm " + Version))

			gitDir, err := git.GitDir(cmd.Context(), "")
			if err != nil {
				fmt.Println(ui.Warn("not inside a git repository"))
			} else {
				st, err := hook.Inspect(gitDir)
				if err != nil {
					return err
				}
				switch {
				case st.Installed && st.Version == Version:
					fmt.Println(ui.Success("hook installed (v" + st.Version + ")"))
				case st.Installed:
					fmt.Println(ui.Warn("hook installed but outdated (v" + st.Version + "), run 'attcm install'"))
				default:
					fmt.Println(ui.Fail("hook not installed, run 'attcm install'"))
				}
				if st.HasUserContent {
					fmt.Println(ui.Label("  hook carries additional user content (preserved)"))
				}
			}

			fmt.Printf("%s %v\n", ui.Label("create change-id:"), cfg.Hook.CreateChangeId)
			fmt.Printf("%s %v\n", ui.Label("create co-developed-by:"), cfg.Hook.CreateCoDevelopedBy)
			fmt.Printf("%s %q\n", ui.Label("comment char:"), cfg.Hook.CommentChar)

			maybeNotifyUpdate()
			return nil
		},
	}
}

func updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Download and install the latest release",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			updater := &update.Updater{Repo: cfg.Update.Repo, Current: Version}
			release, err := updater.Check()
			if err != nil {
				return err
			}
			if release == nil {
				fmt.Println(ui.Success("already up to date"))
				return nil
			}

			fmt.Println(ui.Warn("updating to v" + release.Version()))
			if err := updater.Install(release); err != nil {
				return err
			}
			fmt.Println(ui.Success("updated to v" + release.Version()))
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the attcm version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("attcm " + Version)
		},
	}
}

// maybeNotifyUpdate prints a hint when a newer release exists. Throttled
// through the config file; failures are silent because this runs from
// interactive commands where an update is a nicety, not a requirement.
func maybeNotifyUpdate() {
	cfg, err := config.Load()
	if err != nil || !cfg.ShouldCheckForUpdate() {
		return
	}

	cfg.RecordUpdateCheck()
	_ = cfg.Save()

	updater := &update.Updater{
		Repo:    cfg.Update.Repo,
		Current: Version,
		Skipped: cfg.Update.SkippedVersion,
	}
	release, err := updater.Check()
	if err != nil || release == nil {
		return
	}
	fmt.Println(ui.Warn("new version v" + release.Version() + " available, run 'attcm update'"))
}
