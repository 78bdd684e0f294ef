package rest

import (
	"net/http"
	"strings"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

// credentials is the sign-in request body.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// oauthToken is the RFC 6749 token response.
type oauthToken struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// oauthError is the RFC 6749 error response.
type oauthError struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

func (a *App) signin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, err)
		return
	}
	if strings.TrimSpace(creds.Username) == "" {
		writeError(w, r, domain.NewRequiredParameter(domain.FieldUsername))
		return
	}
	if creds.Password == "" {
		writeError(w, r, domain.NewRequiredParameter(domain.FieldPassword))
		return
	}
	token, err := a.auth.Signin(r.Context(), creds.Username, creds.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, token)
}

func (a *App) refresh(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	token, err := a.auth.Refresh(r.Context(), username, bearerToken(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, token)
}

// token implements the OAuth2 password and refresh_token grants.
func (a *App) token(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeOAuthError(w, http.StatusBadRequest, "invalid_request", "malformed form body")
		return
	}

	var (
		token *domain.Token
		err   error
	)
	switch grant := r.PostForm.Get("grant_type"); grant {
	case "password":
		token, err = a.auth.Signin(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	case "refresh_token":
		token, err = a.auth.Refresh(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("refresh_token"))
	case "":
		writeOAuthError(w, http.StatusBadRequest, "invalid_request", "grant_type is required")
		return
	default:
		writeOAuthError(w, http.StatusBadRequest, "unsupported_grant_type", grant)
		return
	}
	if err != nil {
		if statusFor(err) == http.StatusUnauthorized {
			writeOAuthError(w, http.StatusBadRequest, "invalid_grant", err.Error())
			return
		}
		writeError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, oauthToken{
		AccessToken:  token.AccessToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(token.Expiration.Sub(token.Created).Seconds()),
		RefreshToken: token.RefreshToken,
	})
}

func writeOAuthError(w http.ResponseWriter, status int, code, description string) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, status, oauthError{Error: code, Description: description})
}
