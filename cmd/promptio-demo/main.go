// promptio-demo exercises every prompt from the command line. It doubles
// as the end-to-end harness: run it with PROMPTIO_TEST_KEYS or key names
// on fd 3 and assert on the RESULT/CANCELLED lines.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hnimtadd/promptio"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "promptio-demo",
	Short: "Interactive prompt demos",
}

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Single-select menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		choice, err := promptio.Select("Choose a color:", []string{"Red", "Green", "Blue"}, 0)
		return report(choice, err)
	},
}

var multiselectCmd = &cobra.Command{
	Use:   "multiselect",
	Short: "Multi-select checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		picked, err := promptio.MultiSelect("Pick toppings:", []string{"Cheese", "Mushrooms", "Olives", "Onions"}, []int{0})
		return report(strings.Join(picked, ","), err)
	},
}

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Yes/no confirmation",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := promptio.Confirm("Continue?", true)
		return report(fmt.Sprintf("%v", ok), err)
	},
}

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Free-text entry with validation",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := promptio.Text("Your name:", "World", func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("name cannot be blank")
			}
			return nil
		})
		return report(name, err)
	},
}

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Masked password entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := promptio.Password("Password:")
		return report(fmt.Sprintf("%d characters", len(secret)), err)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run all five prompts in sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, step := range []func() error{
			func() error {
				_, err := promptio.Select("Choose a color:", []string{"Red", "Green", "Blue"}, 0)
				return err
			},
			func() error {
				_, err := promptio.MultiSelect("Pick toppings:", []string{"Cheese", "Mushrooms", "Olives"}, nil)
				return err
			},
			func() error {
				_, err := promptio.Text("Your name:", "World", nil)
				return err
			},
			func() error {
				_, err := promptio.Password("Password:")
				return err
			},
			func() error {
				_, err := promptio.Confirm("Happy with promptio?", true)
				return err
			},
		} {
			if err := step(); err != nil && !errors.Is(err, promptio.ErrCancelled) {
				return err
			}
		}
		return nil
	},
}

// report prints a machine-checkable outcome line. Cancellation is a
// normal outcome for the demo, not a command failure.
func report(result string, err error) error {
	switch {
	case err == nil:
		fmt.Printf("RESULT: %s\n", result)
		return nil
	case errors.Is(err, promptio.ErrCancelled):
		fmt.Println("CANCELLED")
		return nil
	default:
		return err
	}
}

func init() {
	rootCmd.AddCommand(selectCmd, multiselectCmd, confirmCmd, inputCmd, passwordCmd, demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
