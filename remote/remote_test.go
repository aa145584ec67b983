package remote

import (
	"net/http/httptest"
	"testing"

	"github.com/zeu5/multistep-env/grid"
	"github.com/zeu5/multistep-env/multistep"
	"github.com/zeu5/multistep-env/types"
)

func newTestClient(t *testing.T) (*Environment, func()) {
	t.Helper()
	env := grid.NewEnvironment(3, 3, 2, grid.Position{I: 2, J: 2, K: 1},
		grid.Door{From: grid.Position{I: 0, J: 0, K: 0}, To: grid.Position{I: 0, J: 0, K: 1}})
	server := NewEnvServer("", env)
	ts := httptest.NewServer(server.Handler())

	client, err := Connect(ts.URL, ts.Client())
	if err != nil {
		ts.Close()
		t.Fatalf("connect: %v", err)
	}
	return client, ts.Close
}

func TestConnectDefaultClientHasTimeout(t *testing.T) {
	env := grid.NewEnvironment(3, 3, 1, grid.Position{I: 2, J: 2, K: 0})
	server := NewEnvServer("", env)
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	client, err := Connect(ts.URL, nil)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if client.client.Timeout == 0 {
		t.Errorf("expected the default client to carry a timeout")
	}
}

func TestSpacesRoundTrip(t *testing.T) {
	client, closeServer := newTestClient(t)
	defer closeServer()

	dict, ok := client.ObservationSpace().(*types.Dict)
	if !ok {
		t.Fatalf("expected a dict observation space, got %T", client.ObservationSpace())
	}
	if len(dict.Keys) != 2 || dict.Keys[0] != "position" {
		t.Errorf("unexpected keys %v", dict.Keys)
	}
	box, ok := client.ActionSpace().(*types.Box)
	if !ok {
		t.Fatalf("expected a box action space")
	}
	if box.Dtype != types.Int64 {
		t.Errorf("expected dtype to survive the roundtrip, got %v", box.Dtype)
	}
}

func TestResetAndStep(t *testing.T) {
	client, closeServer := newTestClient(t)
	defer closeServer()

	obs, err := client.Reset()
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if obs.Record["position"].AtVec(0) != 0 {
		t.Errorf("expected origin after reset")
	}

	res, err := client.Step(types.VecFrame(float64(grid.Up)))
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if res.Observation.Record["position"].AtVec(0) != 1 {
		t.Errorf("expected to move up")
	}
	if _, ok := res.Info["doors_crossed"]; !ok {
		t.Errorf("expected doors_crossed info field")
	}
}

func TestRemoteEnvironmentStacks(t *testing.T) {
	client, closeServer := newTestClient(t)
	defer closeServer()

	ms, err := multistep.NewMultiStep(client, multistep.Config{NObs: 3, NAction: 2})
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	obs, err := ms.Reset()
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if obs.Frames() != 3 {
		t.Errorf("expected a window of 3 frames, got %d", obs.Frames())
	}
	actions := []types.Action{
		types.VecFrame(float64(grid.Up)),
		types.VecFrame(float64(grid.Right)),
	}
	next, _, done, infos, err := ms.Step(actions)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if done {
		t.Errorf("expected episode to continue")
	}
	pos := next.Record["position"]
	if pos.At(2, 0) != 1 || pos.At(2, 1) != 1 {
		t.Errorf("expected newest frame at (1, 1), got (%v, %v)", pos.At(2, 0), pos.At(2, 1))
	}
	if _, ok := infos["at_door"]; !ok {
		t.Errorf("expected stacked at_door info")
	}
}
