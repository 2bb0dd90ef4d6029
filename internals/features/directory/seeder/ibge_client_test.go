package seeder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/estados", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"nome":"São Paulo","sigla":"SP"},
			{"nome":"Paraná","sigla":"PR"}
		]`))
	})
	mux.HandleFunc("/estados/SP/municipios", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"nome":"Guaíra"},{"nome":"São Paulo"}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchStates(t *testing.T) {
	srv := fixtureServer(t)
	cl := NewIBGEClient(srv.URL)

	states, err := cl.FetchStates(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "SP", states[0].Sigla)
	assert.Equal(t, "São Paulo", states[0].Nome)
}

func TestFetchMunicipalities(t *testing.T) {
	srv := fixtureServer(t)
	cl := NewIBGEClient(srv.URL)

	municipalities, err := cl.FetchMunicipalities(context.Background(), "SP")
	require.NoError(t, err)
	require.Len(t, municipalities, 2)
	assert.Equal(t, "Guaíra", municipalities[0].Nome)
}

func TestFetchAbortsOnNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	cl := NewIBGEClient(srv.URL)

	_, err := cl.FetchStates(context.Background())
	assert.Error(t, err)

	_, err = cl.FetchMunicipalities(context.Background(), "SP")
	assert.Error(t, err)
}

func TestNewIBGEClientDefaultsBaseURL(t *testing.T) {
	cl := NewIBGEClient("")
	assert.Equal(t, DefaultIBGEBaseURL, cl.BaseURL)
}
