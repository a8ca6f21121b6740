// Command spa-notify publishes a deployment lifecycle message to the
// project's notification topic. Intended for CI steps around the build.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/rusty428/aws-spa-hosting-kit/pkg/notify"
)

func main() {
	os.Exit(run())
}

func run() int {
	var topicARN string
	var project string
	var status string
	var detail string

	flag.StringVar(&topicARN, "topic-arn", "", "ARN of the notification topic")
	flag.StringVar(&project, "project", "", "project name")
	flag.StringVar(&status, "status", string(notify.StatusSucceeded), "deployment status (started, succeeded, failed)")
	flag.StringVar(&detail, "detail", "", "optional free-form detail")
	flag.Parse()

	if topicARN == "" || project == "" {
		fmt.Fprintln(os.Stderr, "spa-notify: -topic-arn and -project are required")
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spa-notify: FAIL: %v\n", err)
		return 2
	}

	publisher := notify.NewPublisher(sns.NewFromConfig(awsCfg), topicARN)
	id, err := publisher.Publish(ctx, project, notify.Status(status), detail)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spa-notify: FAIL: %v\n", err)
		return 1
	}

	fmt.Printf("spa-notify: published %s\n", id)
	return 0
}
