package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Obtain an access token from a running server",
	Long: `Exchange a username and password for an access token using the
server's OAuth2 password grant. The access token goes to stdout so it can
be captured by scripts.

Examples:
  TOKEN=$(mapmarket token --username leandro --password admin123)
  curl -H "Authorization: Bearer $TOKEN" http://localhost:8080/api/v1/produto`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipWiring: "true"},
	RunE:        runToken,
}

var (
	tokenServer   string
	tokenUsername string
	tokenPassword string
	tokenShowRefresh  bool
)

func init() {
	tokenCmd.Flags().StringVar(&tokenServer, "server", "http://localhost:8080", "API base URL")
	tokenCmd.Flags().StringVarP(&tokenUsername, "username", "u", "", "Username")
	tokenCmd.Flags().StringVar(&tokenPassword, "password", "", "Password (prompted when omitted)")
	tokenCmd.Flags().BoolVar(&tokenShowRefresh, "show-refresh", false, "Also print the refresh token and expiry")
	_ = tokenCmd.MarkFlagRequired("username")
	rootCmd.AddCommand(tokenCmd)
}

// passwordGrantConfig returns the OAuth2 client config for server.
func passwordGrantConfig(server string) *oauth2.Config {
	return &oauth2.Config{
		ClientID: "mapmarket-cli",
		Endpoint: oauth2.Endpoint{
			TokenURL:  strings.TrimRight(server, "/") + "/auth/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

func runToken(cmd *cobra.Command, _ []string) error {
	password := tokenPassword
	if password == "" {
		cmd.PrintErr("Password: ")
		password = readPassword(cmd)
		cmd.PrintErrln()
	}
	if password == "" {
		return errors.New("password is required")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: 30 * time.Second})

	token, err := passwordGrantConfig(tokenServer).PasswordCredentialsToken(ctx, tokenUsername, password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode != "" {
			return fmt.Errorf("token request rejected: %s", retrieveErr.ErrorCode)
		}
		return fmt.Errorf("token request failed: %w", err)
	}

	cmd.Println(token.AccessToken)
	if tokenShowRefresh {
		cmd.Printf("refresh_token: %s\n", token.RefreshToken)
		cmd.Printf("expires: %s\n", token.Expiry.Format(time.RFC3339))
	}
	return nil
}
