package cli

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage API users",
}

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Create or replace a user",
	Long: `Create a user that can sign in to the API, or reset an existing
user's password.

The password is prompted for when --password is not given.

Examples:
  mapmarket user add leandro --full-name "Leandro Costa"`,
	Args: cobra.ExactArgs(1),
	RunE: runUserAdd,
}

var (
	userFullName string
	userPassword string
)

func init() {
	userAddCmd.Flags().StringVar(&userFullName, "full-name", "", "Display name")
	userAddCmd.Flags().StringVar(&userPassword, "password", "", "Password (prompted when omitted)")
	userCmd.AddCommand(userAddCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	password := userPassword
	if password == "" {
		cmd.Print("Password: ")
		password = readPassword(cmd)
		cmd.Println()
	}
	if password == "" {
		return errors.New("password is required")
	}

	if err := authService.Register(cmd.Context(), args[0], userFullName, password); err != nil {
		return err
	}
	cmd.Printf("User %s saved\n", args[0])
	return nil
}

// readPassword reads without echo from a terminal, or a line from the
// command's input otherwise.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readPassword(cmd *cobra.Command) string {
	if cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	reader := bufio.NewReader(cmd.InOrStdin())
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
