// Package services - services/metrics.go
// Operational metrics pushed to CloudWatch.
package services

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"go-campus-events/logger"
)

// Namespace for all campus events metrics
var metricsNamespace = "CampusEvents"

// Reuse a single CloudWatch client for all metrics calls
var cwClient = cloudwatch.New(session.Must(session.NewSession()))

// PublishLoginFailure counts rejected login attempts, one datum per failure.
func PublishLoginFailure(env string) {
	putMetric("LoginFailures", 1, "Count", env)
}

// PublishLiveConnections pushes the current websocket connection count.
func PublishLiveConnections(count int, env string) {
	putMetric("LiveConnections", float64(count), "Count", env)
}

// PublishBackendLatency pushes one observed backend API round trip (in ms).
func PublishBackendLatency(latencyMs float64, env string) {
	putMetric("BackendLatencyMs", latencyMs, "Milliseconds", env)
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func putMetric(metricName string, value float64, unit string, env string) {
	// Dev and test runs stay off CloudWatch.
	if env != "production" {
		logger.Debug.Printf("[putMetric] Skipping %s=%v outside production", metricName, value)
		return
	}
	_, err := cwClient.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Dimensions: []*cloudwatch.Dimension{
					{
						Name:  aws.String("Environment"),
						Value: aws.String(env),
					},
				},
				Timestamp: aws.Time(time.Now()),
				Value:     aws.Float64(value),
				Unit:      aws.String(unit),
			},
		},
	})

	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
