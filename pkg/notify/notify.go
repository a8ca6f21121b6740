// Package notify publishes deployment lifecycle messages to the
// provisioned SNS notification topic. Delivery and confirmation are the
// transport's job; this package only hands the message to SNS.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/oklog/ulid/v2"
)

// SNS subject lines are capped at 100 characters, messages at 256 KiB.
const (
	maxSubjectLen = 100
	maxMessageLen = 256 * 1024
)

// Status of a deployment lifecycle event.
type Status string

const (
	StatusStarted   Status = "started"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

type snsAPI interface {
	Publish(
		ctx context.Context,
		params *sns.PublishInput,
		optFns ...func(*sns.Options),
	) (*sns.PublishOutput, error)
}

// Event is one deployment lifecycle notification.
type Event struct {
	ID        string    `json:"id"`
	Project   string    `json:"project"`
	Status    Status    `json:"status"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher publishes Events to a single topic.
type Publisher struct {
	client   snsAPI
	topicARN string
}

// NewPublisher wraps an SNS client for the given topic.
func NewPublisher(client snsAPI, topicARN string) *Publisher {
	return &Publisher{
		client:   client,
		topicARN: strings.TrimSpace(topicARN),
	}
}

// Publish sends a lifecycle event and returns its assigned ID.
func (p *Publisher) Publish(ctx context.Context, project string, status Status, detail string) (string, error) {
	if p == nil || p.client == nil {
		return "", errors.New("notify: publisher is nil")
	}
	if p.topicARN == "" {
		return "", errors.New("notify: topic arn is empty")
	}
	if project == "" {
		return "", errors.New("notify: project is empty")
	}

	event := Event{
		ID:        ulid.Make().String(),
		Project:   project,
		Status:    status,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return "", err
	}

	subject := project + " deployment " + string(status)
	if len(subject) > maxSubjectLen {
		subject = subject[:maxSubjectLen]
	}

	message := string(body)
	if len(message) > maxMessageLen {
		message = message[:maxMessageLen]
	}

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return "", err
	}
	return event.ID, nil
}
