//go:build integration

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"tweet-tipping/internal/domain"
	"tweet-tipping/pkg/log"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *log.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = log.New(log.Error)

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.logger != nil {
		s.logger.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublish_RoutesByEventName() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "tipping-test",
		QueueName:  "tips-sent",
		BindingKey: "tip.sent",
	}
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	s.Require().NoError(pub.Publish(s.ctx, domain.LedgerEntry{ID: "a", Workflow: domain.WorkflowTip, Outcome: domain.OutcomeFailed}))
	s.Require().NoError(pub.Publish(s.ctx, domain.LedgerEntry{ID: "b", Workflow: domain.WorkflowTip, Outcome: domain.OutcomeSucceeded, TweetID: "42"}))

	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()
	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	var delivery amqp.Delivery
	s.Eventually(func() bool {
		d, ok, err := ch.Get("tips-sent", true)
		if err != nil || !ok {
			return false
		}
		delivery = d
		return true
	}, 5*time.Second, 100*time.Millisecond)

	var msg Message
	s.Require().NoError(json.Unmarshal(delivery.Body, &msg))
	s.Equal("tip.sent", msg.Event)
	s.Equal("42", msg.Entry.TweetID)
	s.Equal("b", delivery.MessageId)

	_, ok, err := ch.Get("tips-sent", true)
	s.NoError(err)
	s.False(ok, "tip.failed must not be routed to the tip.sent queue")
}
