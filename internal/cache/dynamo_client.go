package cache

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

// DynamoDBClient is the subset of the DynamoDB API the series cache needs.
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// NewDynamoClient creates a DynamoDB client. When DYNAMODB_ENDPOINT is set
// (local development against dynamodb-local) the client is pointed at that
// endpoint with static throwaway credentials; otherwise the default AWS
// credential chain applies.
func NewDynamoClient(ctx context.Context) (*dynamodb.Client, error) {
	if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
		log.Debug().Str("endpoint", endpoint).Msg("Using local DynamoDB endpoint")

		cfg, err := config.LoadDefaultConfig(ctx,
			config.WithRegion("local"),
			config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider("local", "local", ""),
			),
		)
		if err != nil {
			return nil, err
		}

		return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		}), nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(cfg), nil
}
