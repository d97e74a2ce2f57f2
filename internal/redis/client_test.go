package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-savedata/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
}

func (s *ClientTestSuite) TestNewClient() {
	client, err := redis.NewClient(s.mr.Addr(), nil)
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(client.Ping(context.Background()).Err())
}

func (s *ClientTestSuite) TestNewClientFromURL() {
	client, err := redis.NewClientFromURL("redis://" + s.mr.Addr() + "/0")
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(client.Ping(context.Background()).Err())
}

func (s *ClientTestSuite) TestErrors() {
	_, err := redis.NewClient("", nil)
	s.Error(err)

	_, err = redis.NewClientFromURL("")
	s.Error(err)

	_, err = redis.NewClientFromURL("http://not-redis")
	s.Error(err)
}
