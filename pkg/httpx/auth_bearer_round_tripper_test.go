package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"tarkov_market/pkg/httpx"
)

type fakeAuthenticator struct {
	token         string
	authenticated int
}

func (a *fakeAuthenticator) Authenticate(context.Context) error {
	a.authenticated++
	a.token = "fresh-token"
	return nil
}

func (a *fakeAuthenticator) BearerToken() string {
	return a.token
}

func TestAuthBearerRoundTripper(t *testing.T) {
	rq := require.New(t)

	var gotAuthorization string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	auth := &fakeAuthenticator{}
	client := &http.Client{
		Transport: httpx.NewAuthBearerRoundTripper(http.DefaultTransport, auth),
	}

	resp, err := client.Get(srv.URL)
	rq.NoError(err)
	defer resp.Body.Close()

	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("Bearer fresh-token", gotAuthorization)
	rq.Equal(1, auth.authenticated)
}

func TestAuthBearerRoundTripperReauthenticatesOn401(t *testing.T) {
	rq := require.New(t)

	requests := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.Header.Get("Authorization") == "Bearer stale-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	auth := &fakeAuthenticator{token: "stale-token"}
	client := &http.Client{
		Transport: httpx.NewAuthBearerRoundTripper(http.DefaultTransport, auth),
	}

	resp, err := client.Get(srv.URL)
	rq.NoError(err)
	defer resp.Body.Close()

	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(2, requests)
	rq.Equal(1, auth.authenticated)
}
