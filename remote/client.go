package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/zeu5/multistep-env/types"
)

// Environment is an HTTP client for an EnvServer. It implements the
// single-step contract, so it can be wrapped like a local environment.
// Server failures surface unchanged as errors.
type Environment struct {
	baseURL string
	client  *http.Client

	obsSpace types.Space
	actSpace types.Space
}

var _ types.Environment = &Environment{}

// Connect fetches the space descriptions of the served environment.
func Connect(baseURL string, client *http.Client) (*Environment, error) {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	e := &Environment{
		baseURL: baseURL,
		client:  client,
	}

	resp, err := client.Get(baseURL + "/spaces")
	if err != nil {
		return nil, fmt.Errorf("fetch spaces: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch spaces: server returned %d", resp.StatusCode)
	}
	var payload spacesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode spaces: %w", err)
	}
	if e.obsSpace, err = decodeSpace(payload.ObservationSpace); err != nil {
		return nil, fmt.Errorf("observation space: %w", err)
	}
	if e.actSpace, err = decodeSpace(payload.ActionSpace); err != nil {
		return nil, fmt.Errorf("action space: %w", err)
	}
	return e, nil
}

func (e *Environment) Reset() (types.Frame, error) {
	var payload resetResponse
	if err := e.post("/reset", nil, &payload); err != nil {
		return types.Frame{}, err
	}
	return decodeFrame(payload.Observation), nil
}

func (e *Environment) Step(action types.Action) (*types.StepResult, error) {
	var payload stepResponse
	if err := e.post("/step", stepRequest{Action: encodeFrame(action)}, &payload); err != nil {
		return nil, err
	}
	return &types.StepResult{
		Observation: decodeFrame(payload.Observation),
		Reward:      payload.Reward,
		Terminated:  payload.Terminated,
		Truncated:   payload.Truncated,
		Info:        infoVectors(payload.Info),
	}, nil
}

func (e *Environment) ObservationSpace() types.Space {
	return e.obsSpace
}

func (e *Environment) ActionSpace() types.Space {
	return e.actSpace
}

func (e *Environment) post(path string, request interface{}, response interface{}) error {
	body := []byte("{}")
	if request != nil {
		var err error
		body, err = json.Marshal(request)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
	}
	resp, err := e.client.Post(e.baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var failure errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil && failure.Error != "" {
			return fmt.Errorf("%s: %s", path, failure.Error)
		}
		return fmt.Errorf("%s: server returned %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(response)
}
