package aws

import (
	"context"
	"fmt"
	"os"

	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
)

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc *secretsmanager.Client
}

// NewSecretsManagerClient creates a Secrets Manager client from the default
// AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return &SecretsManagerClient{
		svc: secretsmanager.NewFromConfig(cfg),
	}, nil
}

// GetSecretString resolves a secret value. When the ARN environment variable
// is set, the value comes from Secrets Manager; otherwise, or when the fetch
// fails, it falls back to reading the plain environment variable. An error is
// returned only when both paths come up empty.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" {
		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		})
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			return *result.SecretString, nil
		}
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secret_arn_env_var", secretArnEnvVar),
			zap.String("fallback_env_var", fallbackEnvVar),
			zap.Error(err))
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		return value, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}
