package tracking

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/business"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SQSTrackingPublisher queues automation lifecycle events for downstream
// processing. Publishing is fire-and-forget from the caller's perspective;
// the orchestrator logs failures and moves on.
type SQSTrackingPublisher struct {
	client   *sqs.Client
	queueURL string
	logger   *zap.Logger
}

// NewSQSTrackingPublisher creates a tracking publisher for the given queue.
func NewSQSTrackingPublisher(client *sqs.Client, queueURL string) *SQSTrackingPublisher {
	return &SQSTrackingPublisher{
		client:   client,
		queueURL: queueURL,
		logger:   logger.Log,
	}
}

// PublishAutomationActivated queues an activation event.
func (p *SQSTrackingPublisher) PublishAutomationActivated(ctx context.Context, event business.TrackingEvent) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal tracking event")
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &p.queueURL,
		MessageBody: aws.String(string(eventBytes)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"EventType": {
				StringValue: aws.String("automation.activated"),
				DataType:    aws.String("String"),
			},
			"AutomationType": {
				StringValue: aws.String(event.AutomationType),
				DataType:    aws.String("String"),
			},
			"ChainID": {
				StringValue: aws.String(strconv.FormatInt(event.ChainID, 10)),
				DataType:    aws.String("Number"),
			},
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to queue tracking event")
	}

	p.logger.Info("Queued automation activation event",
		zap.String("automation_id", event.AutomationID),
		zap.String("automation_type", event.AutomationType),
		zap.Bool("simulated", event.Simulated))

	return nil
}

// NoopTrackingPublisher discards events. Used for local development where no
// queue is configured.
type NoopTrackingPublisher struct{}

// NewNoopTrackingPublisher creates a publisher that drops every event.
func NewNoopTrackingPublisher() *NoopTrackingPublisher {
	return &NoopTrackingPublisher{}
}

// PublishAutomationActivated drops the event.
func (p *NoopTrackingPublisher) PublishAutomationActivated(ctx context.Context, event business.TrackingEvent) error {
	return nil
}
