package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/taku-sh/taku/internal/logger"
	"github.com/taku-sh/taku/internal/script"
)

// New creates a script, optionally from a template.
func New(store *script.Store, name, template string) error {
	if err := store.Create(name, template); err != nil {
		return err
	}

	fmt.Printf("Created script %s at %s\n", name, store.Path(name))
	return nil
}

// Rm removes a script from the store, uninstalling its shim first so
// no dangling wrapper is left in the bin directory.
func Rm(store *script.Store, binDir, name string) error {
	if _, err := store.Uninstall(name, binDir); err != nil {
		return err
	}

	if err := store.Remove(name); err != nil {
		return err
	}

	fmt.Printf("Script %s removed\n", name)
	return nil
}

// Edit opens a script in the user's editor.
func Edit(store *script.Store, configuredEditor, name string) error {
	if !store.Exists(name) {
		return fmt.Errorf("script '%s' not found", name)
	}

	editor := resolveEditor(configuredEditor)
	if editor == "" {
		return fmt.Errorf("no editor found. Set $EDITOR or $VISUAL environment variable")
	}

	cmd := exec.Command(editor, store.Path(name))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// Install installs one script, or all of them when target is "all".
func Install(store *script.Store, binDir, target string) error {
	if target == "all" {
		results, err := store.InstallAll(binDir)
		if err != nil {
			return err
		}
		for _, res := range results {
			printInstallResult(res)
		}
		return nil
	}

	res, err := store.Install(target, binDir)
	if err != nil {
		return err
	}
	printInstallResult(*res)
	return nil
}

func printInstallResult(res script.InstallResult) {
	if res.Skipped {
		fmt.Printf("%s already exists. Skipping %s\n", res.Target, res.Name)
		return
	}
	fmt.Printf("Installed %s to %s\n", res.Name, res.Target)
}

// Uninstall removes the shim of one script, or of all of them when
// target is "all".
func Uninstall(store *script.Store, binDir, target string, log *logger.Logger) error {
	if target == "all" {
		results, err := store.UninstallAll(binDir)
		if err != nil {
			return err
		}
		for _, res := range results {
			printUninstallResult(res, binDir)
		}
		return nil
	}

	if !store.Exists(target) {
		return fmt.Errorf("script '%s' not found", target)
	}

	res, err := store.Uninstall(target, binDir)
	if err != nil {
		return err
	}
	printUninstallResult(*res, binDir)

	if log != nil && !res.Found {
		log.Debug().Str("script", target).Str("bin_dir", binDir).Msg("No shim to remove")
	}

	return nil
}

func printUninstallResult(res script.UninstallResult, binDir string) {
	if !res.Found {
		fmt.Printf("Warning: %s not found in %s\n", res.Name, binDir)
		return
	}
	fmt.Printf("Uninstalled %s from %s\n", res.Name, res.Target)
}
