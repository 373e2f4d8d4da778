package commands

import (
	"fmt"
	"sort"

	"wstrim/internal/cli"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string  { return "help" }
func (c *HelpCommand) Usage() string { return "help [command-name]" }
func (c *HelpCommand) Description() string {
	return "Show help for commands"
}
func (c *HelpCommand) DetailedDescription() string {
	return "Show help information for a specific command."
}
func (c *HelpCommand) Aliases() []string { return []string{"-h", "--help"} }

func (c *HelpCommand) Run(ctx *cli.Context) error {
	if len(ctx.Args) > 0 {
		return commandHelp(ctx.Args[0])
	}
	return allCommands()
}

func commandHelp(name string) error {
	cmd, ok := cli.GetCommand(name)
	if !ok {
		fmt.Printf("Unknown command: %s\n", name)
		return nil
	}

	if u := cmd.Usage(); u != "" {
		fmt.Printf("Usage: %s\n\n", u)
	}
	fmt.Printf("%s\n", cmd.DetailedDescription())
	return nil
}

func allCommands() error {
	commands := cli.AllCommands()
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})

	fmt.Println("Usage: wstrim [command] [pattern...]")
	fmt.Println("Without a command, runs 'fix' with the arguments as path filters.")
	fmt.Println()
	fmt.Println("Available commands:")
	for _, cmd := range commands {
		fmt.Printf("  %-8s %s\n", cmd.Name(), cmd.Description())
	}
	fmt.Println("\nUse 'help <command>' to see detailed usage of a specific command.")
	return nil
}

func init() {
	cli.RegisterCommand(&HelpCommand{})
}
