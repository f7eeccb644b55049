package config

import (
	"context"
	"errors"
	"time"

	"github.com/google/go-github/v59/github"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/oauth2"
)

var ErrRepositoryMissing = errors.New("GITHUB_REPOSITORY is missing")

type Config struct {
	BranchName          string `envconfig:"BRANCH_NAME"`
	Stage               string `envconfig:"STAGE" default:"dev"`
	ProjectID           string `envconfig:"GOOGLE_CLOUD_PROJECT_ID" default:"divera-releaserc"`
	Port                string `envconfig:"PORT" default:"8080"`
	BindAddress         string `envconfig:"BIND_ADDRESS"`
	GitHubToken         string `envconfig:"GITHUB_TOKEN"`
	GitHubRepository    string `envconfig:"GITHUB_REPOSITORY"`
	DisableRequestCache bool   `envconfig:"DISABLE_REQUEST_CACHE"`
	DisableMetrics      bool   `envconfig:"DISABLE_METRICS"`
	Version             string
}

func NewFromEnv() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) GetServerAddr() string {
	return c.BindAddress + ":" + c.Port
}

func (c *Config) GetRepository() (string, error) {
	if c.GitHubRepository == "" {
		return "", ErrRepositoryMissing
	}
	return c.GitHubRepository, nil
}

func newRetryableHTTPClient() *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.HTTPClient.Timeout = time.Minute
	return rc
}

// CreateGitHubClient returns an anonymous client if no token is configured.
func (c *Config) CreateGitHubClient() *github.Client {
	httpClient := newRetryableHTTPClient().StandardClient()
	if c.GitHubToken == "" {
		return github.NewClient(httpClient)
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	oauthClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.GitHubToken}))
	return github.NewClient(oauthClient)
}
