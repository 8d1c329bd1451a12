package metrics

import (
	"context"
	"fmt"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/imrishuroy/go-ecom-admin/internal/aws"
)

// Outcome of a server action.
type Outcome string

const (
	ActionSucceeded  Outcome = "ActionSucceeded"
	ValidationFailed Outcome = "ValidationFailed"
	RemoteFailed     Outcome = "RemoteFailed"
)

// Recorder records server action outcomes.
type Recorder interface {
	Record(ctx context.Context, action string, outcome Outcome) error
}

// CloudWatchRecorder counts outcomes in Prometheus and puts one CloudWatch
// datapoint per outcome. A nil client only feeds Prometheus.
type CloudWatchRecorder struct {
	client    aws.CloudWatchAPI
	namespace string
	now       func() time.Time
}

func NewCloudWatchRecorder(client aws.CloudWatchAPI, namespace string) *CloudWatchRecorder {
	return &CloudWatchRecorder{client: client, namespace: namespace, now: time.Now}
}

func (r *CloudWatchRecorder) Record(ctx context.Context, action string, outcome Outcome) error {
	actionOutcomes.WithLabelValues(action, string(outcome)).Inc()
	if r.client == nil {
		return nil
	}

	_, err := r.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: sdkaws.String(r.namespace),
		MetricData: []cwtypes.MetricDatum{{
			MetricName: sdkaws.String(string(outcome)),
			Dimensions: []cwtypes.Dimension{{
				Name:  sdkaws.String("Action"),
				Value: sdkaws.String(action),
			}},
			Timestamp: sdkaws.Time(r.now()),
			Unit:      cwtypes.StandardUnitCount,
			Value:     sdkaws.Float64(1),
		}},
	})
	if err != nil {
		return fmt.Errorf("put metric %s/%s: %w", action, outcome, err)
	}
	return nil
}
