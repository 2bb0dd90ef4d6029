package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultIBGEBaseURL is the public IBGE locality registry.
const DefaultIBGEBaseURL = "https://servicodados.ibge.gov.br/api/v1/localidades"

type IBGEState struct {
	Nome  string `json:"nome"`
	Sigla string `json:"sigla"`
}

type IBGEMunicipality struct {
	Nome string `json:"nome"`
}

// IBGEClient is a thin JSON client over the IBGE locality endpoints.
type IBGEClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewIBGEClient(baseURL string) *IBGEClient {
	if baseURL == "" {
		baseURL = DefaultIBGEBaseURL
	}
	return &IBGEClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (cl *IBGEClient) FetchStates(ctx context.Context) ([]IBGEState, error) {
	var states []IBGEState
	if err := cl.getJSON(ctx, cl.BaseURL+"/estados?orderBy=nome", &states); err != nil {
		return nil, fmt.Errorf("fetch states: %w", err)
	}
	return states, nil
}

func (cl *IBGEClient) FetchMunicipalities(ctx context.Context, uf string) ([]IBGEMunicipality, error) {
	var municipalities []IBGEMunicipality
	url := fmt.Sprintf("%s/estados/%s/municipios", cl.BaseURL, uf)
	if err := cl.getJSON(ctx, url, &municipalities); err != nil {
		return nil, fmt.Errorf("fetch municipalities of %s: %w", uf, err)
	}
	return municipalities, nil
}

func (cl *IBGEClient) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
