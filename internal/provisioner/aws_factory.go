// Where: internal/provisioner/aws_factory.go
// What: AWS client factory for collaborator adapters.
// Why: Encapsulate SDK configuration for hosted and local endpoints.
package provisioner

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

const defaultAWSRegion = "us-east-1"

// ClientFactory builds the narrow service clients the adapters consume.
type ClientFactory interface {
	Route53(ctx context.Context) (Route53API, error)
	S3(ctx context.Context) (S3SyncAPI, error)
	SSM(ctx context.Context) (SSMAPI, error)
	DynamoDB(ctx context.Context, endpoint string) (DynamoAPI, error)
}

// NewClientFactory returns the stock factory using the default credential
// chain, except for DynamoDB local endpoints which use static credentials.
func NewClientFactory() ClientFactory {
	return awsClientFactory{}
}

type awsClientFactory struct{}

func (awsClientFactory) Route53(ctx context.Context) (Route53API, error) {
	cfg, err := loadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	return awsRoute53Client{client: route53.NewFromConfig(cfg)}, nil
}

func (awsClientFactory) S3(ctx context.Context) (S3SyncAPI, error) {
	cfg, err := loadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	return awsS3Client{client: s3.NewFromConfig(cfg)}, nil
}

func (awsClientFactory) SSM(ctx context.Context) (SSMAPI, error) {
	cfg, err := loadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	return awsSSMClient{client: ssm.NewFromConfig(cfg)}, nil
}

func (awsClientFactory) DynamoDB(ctx context.Context, endpoint string) (DynamoAPI, error) {
	if endpoint == "" {
		cfg, err := loadAWSConfig(ctx)
		if err != nil {
			return nil, err
		}
		return awsDynamoClient{client: dynamodb.NewFromConfig(cfg)}, nil
	}

	// Local emulation endpoints accept any static credential pair.
	creds := credentials.NewStaticCredentialsProvider(localAccessKey(), localSecretKey(), "")
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region()),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, err
	}
	client := dynamodb.NewFromConfig(cfg, func(options *dynamodb.Options) {
		options.BaseEndpoint = aws.String(endpoint)
	})
	return awsDynamoClient{client: client}, nil
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx, config.WithRegion(region()))
}

func region() string {
	if value := os.Getenv("AWS_REGION"); value != "" {
		return value
	}
	return defaultAWSRegion
}

func localAccessKey() string {
	if value := os.Getenv("DYNAMODB_ACCESS_KEY"); value != "" {
		return value
	}
	return "dummy"
}

func localSecretKey() string {
	if value := os.Getenv("DYNAMODB_SECRET_KEY"); value != "" {
		return value
	}
	return "dummy"
}
