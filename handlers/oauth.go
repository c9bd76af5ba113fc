package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	githubAuthorizeURL = "https://github.com/login/oauth/authorize"
	githubTokenURL     = "https://github.com/login/oauth/access_token"
)

// GitHubAuthorize returns the provider authorization URL as JSON data. The
// caller navigates to it; no redirect is issued here.
func (a *Auth) GitHubAuthorize(w http.ResponseWriter, r *http.Request) error {
	query := url.Values{}
	query.Set("client_id", a.GithubClientID)
	query.Set("scope", "user:email")

	writeData(w, http.StatusOK, githubAuthorizeURL+"?"+query.Encode())
	return nil
}

// GitHubCallback exchanges the authorization code for an access token and
// writes the bare token as the response body.
// TODO: fetch the user profile with the token and sign the user in.
func (a *Auth) GitHubCallback(w http.ResponseWriter, r *http.Request) error {
	code := r.URL.Query().Get("code")

	form := url.Values{}
	form.Set("code", code)
	form.Set("accept", "json")
	form.Set("client_id", a.GithubClientID)
	form.Set("client_secret", a.GithubClientSecret)

	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, githubTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// GitHub answers with a form-encoded body.
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return err
	}

	fmt.Fprint(w, values.Get("access_token"))
	return nil
}
