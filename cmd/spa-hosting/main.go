// Command spa-hosting synthesizes the hosting stack for a SPA deployment
// configuration.
//
// The configuration must load and validate completely before any resource
// definition is constructed; a single rule violation aborts the run with
// every problem reported at once.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/rusty428/aws-spa-hosting-kit/infra"
	"github.com/rusty428/aws-spa-hosting-kit/pkg/buildspec"
	"github.com/rusty428/aws-spa-hosting-kit/pkg/config"
	"github.com/rusty428/aws-spa-hosting-kit/pkg/logger"
	"github.com/rusty428/aws-spa-hosting-kit/pkg/naming"
	"github.com/rusty428/aws-spa-hosting-kit/pkg/observability"
	obszap "github.com/rusty428/aws-spa-hosting-kit/pkg/observability/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var validateOnly bool
	var printBuildSpec bool
	var logFormat string

	flag.StringVar(&configPath, "config", "spa-hosting.yaml", "path to the deployment configuration")
	flag.BoolVar(&validateOnly, "validate-only", false, "validate the configuration and exit without synthesizing")
	flag.BoolVar(&printBuildSpec, "print-buildspec", false, "print the generated build specification and exit")
	flag.StringVar(&logFormat, "log-format", "console", "log output format (console or json)")
	flag.Parse()

	log, err := obszap.NewZapLogger(observability.LoggerConfig{Format: logFormat, Level: "info"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "spa-hosting: FAIL: %v\n", err)
		return 2
	}
	logger.SetLogger(log)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error("configuration load failed", map[string]any{"path": configPath, "error": err.Error()})
		return 2
	}

	log = log.WithProject(cfg.ProjectName).WithRegion(cfg.Region)
	logger.SetLogger(log)

	result := config.Validate(cfg)
	for _, warning := range result.Warnings {
		log.Warn(warning)
	}
	for _, msg := range result.Errors {
		log.Error(msg)
	}
	if !result.Valid {
		log.Error("configuration is invalid", map[string]any{"errors": len(result.Errors)})
		return 1
	}

	log.Info("configuration is valid", map[string]any{
		"repository": cfg.Source.RepositoryURL,
		"branch":     cfg.Source.Branch,
	})
	if printBuildSpec {
		out, err := buildspec.Generate(cfg).YAML()
		if err != nil {
			log.Error("buildspec rendering failed", map[string]any{"error": err.Error()})
			return 2
		}
		os.Stdout.Write(out)
		return 0
	}
	if validateOnly {
		return 0
	}

	defer jsii.Close()
	app := awscdk.NewApp(nil)

	infra.NewSpaHostingStack(app, naming.StackName(cfg.ProjectName), &infra.SpaHostingStackProps{
		StackProps: awscdk.StackProps{
			Env: &awscdk.Environment{
				Region: jsii.String(cfg.Region),
			},
		},
		Config: cfg,
	})

	app.Synth(nil)
	log.Info("stack synthesized", map[string]any{"stack": naming.StackName(cfg.ProjectName)})
	return 0
}
