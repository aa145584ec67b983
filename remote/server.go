package remote

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zeu5/multistep-env/types"
	"gonum.org/v1/gonum/mat"
)

// EnvServer exposes one environment over HTTP. Access is serialized
// with a lock, the environment itself stays single threaded.
type EnvServer struct {
	Addr   string
	server *http.Server

	lock *sync.Mutex
	env  types.Environment
}

func NewEnvServer(addr string, env types.Environment) *EnvServer {
	s := &EnvServer{
		Addr: addr,
		lock: new(sync.Mutex),
		env:  env,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/spaces", s.handleSpaces)
	r.POST("/reset", s.handleReset)
	r.POST("/step", s.handleStep)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}
	return s
}

// Handler exposes the router, used by tests.
func (s *EnvServer) Handler() http.Handler {
	return s.server.Handler
}

// Start listens in the background.
func (s *EnvServer) Start() {
	go func() {
		s.server.ListenAndServe()
	}()
}

// Stop shuts the server down, waiting for inflight calls.
func (s *EnvServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *EnvServer) handleSpaces(c *gin.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()

	obsSpace, err := encodeSpace(s.env.ObservationSpace())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	actSpace, err := encodeSpace(s.env.ActionSpace())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, spacesResponse{
		ObservationSpace: obsSpace,
		ActionSpace:      actSpace,
	})
}

func (s *EnvServer) handleReset(c *gin.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()

	obs, err := s.env.Reset()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resetResponse{Observation: encodeFrame(obs)})
}

func (s *EnvServer) handleStep(c *gin.Context) {
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	res, err := s.env.Step(decodeFrame(req.Action))
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	info := make(map[string][]float64, len(res.Info))
	for k, v := range res.Info {
		info[k] = rawValues(v)
	}
	c.JSON(http.StatusOK, stepResponse{
		Observation: encodeFrame(res.Observation),
		Reward:      res.Reward,
		Terminated:  res.Terminated,
		Truncated:   res.Truncated,
		Info:        info,
	})
}

func infoVectors(info map[string][]float64) map[string]*mat.VecDense {
	out := make(map[string]*mat.VecDense, len(info))
	for k, v := range info {
		out[k] = mat.NewVecDense(len(v), v)
	}
	return out
}
