package web

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	embedded "github.com/goserg/ratingcalc"
	"github.com/goserg/ratingcalc/internal/config"
	"github.com/goserg/ratingcalc/internal/domain"
	"github.com/goserg/ratingcalc/internal/logger"
	"github.com/goserg/ratingcalc/internal/service"
	"github.com/goserg/ratingcalc/internal/web/webpath"

	"github.com/stretchr/testify/suite"
)

// DefaultConfigSuite runs the API against the embedded default config.
type DefaultConfigSuite struct {
	suite.Suite
	server *Server
}

func TestDefaultConfig(t *testing.T) {
	suite.Run(t, &DefaultConfigSuite{})
}

func (s *DefaultConfigSuite) SetupSuite() {
	cfg, err := config.Parse(embedded.DefaultConfig)
	s.Require().NoError(err)
	calc, err := cfg.Calculator.Build()
	s.Require().NoError(err)
	log := logger.New("debug", io.Discard)
	s.server = New(service.New(calc, log), cfg.Server, log)
}

func (s *DefaultConfigSuite) match(body string) domain.MatchResult {
	resp, data := do(s.T(), s.server, http.MethodPost, webpath.ApiMatch, body)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(data))
	var res domain.MatchResult
	s.Require().NoError(json.Unmarshal(data, &res))
	return res
}

func (s *DefaultConfigSuite) TestProvisionalPlayersMoveFaster() {
	res := s.match(`{"playerA":{"name":"new","rating":1200},"playerB":{"name":"master","rating":2400},"outcome":"draw"}`)
	s.Greater(res.PlayerA.RatingChange, 0.0)
	s.Less(res.PlayerB.RatingChange, 0.0)
	s.Greater(res.PlayerA.RatingChange, -res.PlayerB.RatingChange)
}

func (s *DefaultConfigSuite) TestFloor() {
	res := s.match(`{"playerA":{"name":"a","rating":100},"playerB":{"name":"b","rating":100},"outcome":"lose"}`)
	s.Equal(100.0, res.PlayerA.NewRating)
	s.Equal(0.0, res.PlayerA.RatingChange)
	s.Equal(120.0, res.PlayerB.NewRating)
}

func (s *DefaultConfigSuite) TestCeiling() {
	res := s.match(`{"playerA":{"name":"a","rating":2998},"playerB":{"name":"b","rating":2998},"outcome":"win"}`)
	s.Equal(3000.0, res.PlayerA.NewRating)
	s.Equal(2993.0, res.PlayerB.NewRating)
}
