package database

import (
	appconfig "chantierplus/internal/infrastructure/config"
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

// Clients groups the AWS service clients built from one shared config.
type Clients struct {
	DynamoDB *dynamodb.Client
	S3       *s3.Client
	SES      *sesv2.Client
}

// ConnectAWS creates the AWS clients, exiting the process on failure.
//
// Every service endpoint can be overridden for local stacks
// (DYNAMODB_ENDPOINT, S3_ENDPOINT, SES_ENDPOINT).
func ConnectAWS(cfg appconfig.AWSConfig) Clients {
	awsCfg, err := NewAWSConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return Clients{
		DynamoDB: dynamodb.NewFromConfig(awsCfg),
		S3: s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			// Local S3 emulators only serve path-style URLs.
			o.UsePathStyle = cfg.S3Endpoint != ""
		}),
		SES: sesv2.NewFromConfig(awsCfg),
	}
}

func NewAWSConfig(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	// Local emulators do not validate credentials, but the AWS SDK requires them.
	if cfg.AccessKeyID != "" || hasLocalEndpoint(cfg) {
		creds := credentials.NewStaticCredentialsProvider(
			valueOr(cfg.AccessKeyID, "local"),
			valueOr(cfg.SecretAccessKey, "local"),
			"",
		)
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}

	if hasLocalEndpoint(cfg) {
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(endpointResolver(cfg)))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func endpointResolver(cfg appconfig.AWSConfig) aws.EndpointResolverWithOptionsFunc {
	endpoints := map[string]string{
		dynamodb.ServiceID: cfg.DynamoDBEndpoint,
		s3.ServiceID:       cfg.S3Endpoint,
		sesv2.ServiceID:    cfg.SESEndpoint,
	}
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if url := endpoints[service]; url != "" {
			return aws.Endpoint{URL: url, SigningRegion: region, HostnameImmutable: true}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	}
}

func hasLocalEndpoint(cfg appconfig.AWSConfig) bool {
	return cfg.DynamoDBEndpoint != "" || cfg.S3Endpoint != "" || cfg.SESEndpoint != ""
}

func valueOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
