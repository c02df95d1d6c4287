package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taku-sh/taku/internal/script"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// List prints the names of all stored scripts.
func List(store *script.Store) error {
	names, err := store.List()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println(subtleStyle.Render("No scripts yet. Create one with: taku new <name>"))
		return nil
	}

	fmt.Println(titleStyle.Render("Available scripts:"))
	for _, name := range names {
		desc := ""
		if meta, err := store.Meta(name); err == nil && meta.Description != "" {
			desc = subtleStyle.Render(" - " + meta.Description)
		}
		fmt.Printf("- %s%s\n", nameStyle.Render(name), desc)
	}

	return nil
}

// Get prints the details of one script: its location, metadata and
// content.
func Get(store *script.Store, name string) error {
	if !store.Exists(name) {
		return fmt.Errorf("script '%s' not found", name)
	}

	meta, err := store.Meta(name)
	if err != nil {
		return err
	}

	content, err := store.Content(name)
	if err != nil {
		return err
	}

	fmt.Println(subtleStyle.Render("---"))
	printField("name", name)
	printField("path", store.Path(name))
	if meta.Description != "" {
		printField("description", meta.Description)
	}
	if meta.Author != "" {
		printField("author", meta.Author)
	}
	if len(meta.Tags) > 0 {
		printField("tags", strings.Join(meta.Tags, ", "))
	}
	printField("content", content)

	return nil
}

func printField(key, value string) {
	fmt.Printf("%s : %s\n", keyStyle.Render(key), valueStyle.Render(value))
}
