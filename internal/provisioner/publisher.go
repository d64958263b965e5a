// Where: internal/provisioner/publisher.go
// What: Configuration entry publishers.
// Why: Push resolved entries to a parameter store or a local table.
package provisioner

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamotypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/websmith/websmith/internal/ports"
)

// SSMAPI is the slice of the parameter store the publisher needs.
type SSMAPI interface {
	PutParameter(ctx context.Context, name, value string) error
}

// ParameterPublisher publishes entries as hosted string parameters,
// addressed by their fully-qualified path.
type ParameterPublisher struct {
	API SSMAPI
}

// NewParameterPublisher wires a publisher over the given API.
func NewParameterPublisher(api SSMAPI) *ParameterPublisher {
	return &ParameterPublisher{API: api}
}

// Publish writes every entry in order; the first failure aborts.
func (p *ParameterPublisher) Publish(ctx context.Context, entries []ports.Entry) error {
	if p.API == nil {
		return fmt.Errorf("parameter api not configured")
	}
	for _, entry := range entries {
		if err := p.API.PutParameter(ctx, entry.Path, entry.Value); err != nil {
			return fmt.Errorf("publish %s: %w", entry.Path, err)
		}
	}
	return nil
}

// DynamoAPI is the slice of the table store the local publisher needs.
type DynamoAPI interface {
	PutItem(ctx context.Context, table string, item map[string]string) error
}

// TablePublisher publishes entries into a key/value table, used for local
// emulation where no hosted parameter store exists.
type TablePublisher struct {
	API   DynamoAPI
	Table string
}

// NewTablePublisher wires a publisher over the given API and table name.
func NewTablePublisher(api DynamoAPI, table string) *TablePublisher {
	return &TablePublisher{API: api, Table: table}
}

// Publish writes one row per entry keyed by the entry path.
func (p *TablePublisher) Publish(ctx context.Context, entries []ports.Entry) error {
	if p.API == nil {
		return fmt.Errorf("table api not configured")
	}
	if p.Table == "" {
		return fmt.Errorf("table name is required")
	}
	for _, entry := range entries {
		item := map[string]string{
			"path":  entry.Path,
			"key":   entry.Key,
			"value": entry.Value,
		}
		if err := p.API.PutItem(ctx, p.Table, item); err != nil {
			return fmt.Errorf("publish %s: %w", entry.Path, err)
		}
	}
	return nil
}

type awsSSMClient struct {
	client *ssm.Client
}

func (c awsSSMClient) PutParameter(ctx context.Context, name, value string) error {
	if c.client == nil {
		return fmt.Errorf("ssm client is nil")
	}
	_, err := c.client.PutParameter(ctx, &ssm.PutParameterInput{
		Name:      aws.String(name),
		Value:     aws.String(value),
		Type:      ssmtypes.ParameterTypeString,
		Overwrite: aws.Bool(true),
	})
	return err
}

type awsDynamoClient struct {
	client *dynamodb.Client
}

func (c awsDynamoClient) PutItem(ctx context.Context, table string, item map[string]string) error {
	if c.client == nil {
		return fmt.Errorf("dynamodb client is nil")
	}
	attrs := make(map[string]dynamotypes.AttributeValue, len(item))
	for key, val := range item {
		attrs[key] = &dynamotypes.AttributeValueMemberS{Value: val}
	}
	_, err := c.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      attrs,
	})
	return err
}
