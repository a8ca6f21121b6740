// Package infra synthesizes the hosting resources for a validated
// deployment configuration: site bucket, CDN distribution, build project
// with a push webhook, and the notification topic.
package infra

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscodebuild"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsevents"
	"github.com/aws/aws-cdk-go/awscdk/v2/awseventstargets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssnssubscriptions"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/rusty428/aws-spa-hosting-kit/pkg/buildspec"
	"github.com/rusty428/aws-spa-hosting-kit/pkg/config"
	"github.com/rusty428/aws-spa-hosting-kit/pkg/naming"
)

type SpaHostingStackProps struct {
	awscdk.StackProps

	// Config must already have passed config.Validate; the constructor does
	// not re-validate.
	Config *config.Config
}

// SpaHosting bundles the resources the stack provisions.
type SpaHosting struct {
	Stack             awscdk.Stack
	SiteBucket        awss3.Bucket
	Distribution      awscloudfront.Distribution
	BuildProject      awscodebuild.Project
	NotificationTopic awssns.Topic
}

// NewSpaHostingStack defines every hosting resource for the configured
// project inside a single stack.
func NewSpaHostingStack(scope constructs.Construct, id string, props *SpaHostingStackProps) *SpaHosting {
	stack := awscdk.NewStack(scope, &id, &props.StackProps)
	cfg := props.Config

	bucket := awss3.NewBucket(stack, jsii.String("SiteBucket"), &awss3.BucketProps{
		BucketName:        jsii.String(naming.SiteBucketName(cfg.ProjectName, cfg.Region)),
		BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
		Encryption:        awss3.BucketEncryption_S3_MANAGED,
		EnforceSSL:        jsii.Bool(true),
		RemovalPolicy:     awscdk.RemovalPolicy_RETAIN,
	})

	distribution := awscloudfront.NewDistribution(stack, jsii.String("SiteDistribution"), distributionProps(stack, cfg, bucket))

	topic := awssns.NewTopic(stack, jsii.String("NotificationTopic"), &awssns.TopicProps{
		TopicName: jsii.String(naming.TopicName(cfg.ProjectName)),
	})
	topic.AddSubscription(awssnssubscriptions.NewEmailSubscription(jsii.String(cfg.Notification.Email), nil))

	project := newBuildProject(stack, cfg, bucket)
	project.OnBuildSucceeded(jsii.String("NotifyBuildSucceeded"), &awsevents.OnEventOptions{
		Target: awseventstargets.NewSnsTopic(topic, nil),
	})
	project.OnBuildFailed(jsii.String("NotifyBuildFailed"), &awsevents.OnEventOptions{
		Target: awseventstargets.NewSnsTopic(topic, nil),
	})

	awscdk.NewCfnOutput(stack, jsii.String("SiteBucketName"), &awscdk.CfnOutputProps{
		Value: bucket.BucketName(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("DistributionDomainName"), &awscdk.CfnOutputProps{
		Value: distribution.DistributionDomainName(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("NotificationTopicArn"), &awscdk.CfnOutputProps{
		Value: topic.TopicArn(),
	})

	return &SpaHosting{
		Stack:             stack,
		SiteBucket:        bucket,
		Distribution:      distribution,
		BuildProject:      project,
		NotificationTopic: topic,
	}
}

func distributionProps(stack awscdk.Stack, cfg *config.Config, bucket awss3.Bucket) *awscloudfront.DistributionProps {
	props := &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin:               awscloudfrontorigins.S3BucketOrigin_WithOriginAccessControl(bucket, nil),
			ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
		},
		DefaultRootObject: jsii.String("index.html"),
		// SPA routing: the client router owns every path, so missing keys
		// must serve the app shell instead of an S3 error.
		ErrorResponses: &[]*awscloudfront.ErrorResponse{
			{
				HttpStatus:         jsii.Number(403),
				ResponseHttpStatus: jsii.Number(200),
				ResponsePagePath:   jsii.String("/index.html"),
			},
			{
				HttpStatus:         jsii.Number(404),
				ResponseHttpStatus: jsii.Number(200),
				ResponsePagePath:   jsii.String("/index.html"),
			},
		},
	}

	if cfg.Domain.CustomDomain != "" {
		props.DomainNames = &[]*string{jsii.String(cfg.Domain.CustomDomain)}
		props.Certificate = awscertificatemanager.Certificate_FromCertificateArn(
			stack, jsii.String("SiteCertificate"), jsii.String(cfg.Domain.CertificateARN))
	}

	return props
}

func newBuildProject(stack awscdk.Stack, cfg *config.Config, bucket awss3.Bucket) awscodebuild.Project {
	owner, repo := cfg.Source.OwnerRepo()
	spec := buildspec.Generate(cfg).ToMap()

	return awscodebuild.NewProject(stack, jsii.String("BuildProject"), &awscodebuild.ProjectProps{
		ProjectName: jsii.String(naming.BuildProjectName(cfg.ProjectName)),
		Source: awscodebuild.Source_GitHub(&awscodebuild.GitHubSourceProps{
			Owner:   jsii.String(owner),
			Repo:    jsii.String(repo),
			Webhook: jsii.Bool(true),
			WebhookFilters: &[]awscodebuild.FilterGroup{
				awscodebuild.FilterGroup_InEventOf(awscodebuild.EventAction_PUSH).AndBranchIs(jsii.String(cfg.Source.Branch)),
			},
		}),
		BuildSpec: awscodebuild.BuildSpec_FromObject(&spec),
		Environment: &awscodebuild.BuildEnvironment{
			BuildImage: awscodebuild.LinuxBuildImage_STANDARD_7_0(),
		},
		Artifacts: awscodebuild.Artifacts_S3(&awscodebuild.S3ArtifactsProps{
			Bucket:         bucket,
			IncludeBuildId: jsii.Bool(false),
			PackageZip:     jsii.Bool(false),
			Encryption:     jsii.Bool(false),
		}),
	})
}
