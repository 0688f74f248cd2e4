package s3client

import (
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Init builds an S3 client from static credentials. Used to pull the
// service's YAML config when it is hosted remotely.
func Init(awsAccessKey, awsSecretKey, region string) (*s3.S3, error) {
	if awsAccessKey == "" || awsSecretKey == "" {
		return nil, fmt.Errorf("AWS access key or secret is not set")
	}

	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(awsAccessKey, awsSecretKey, ""),
		Region:      aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to create session: %w", err)
	}

	return s3.New(sess), nil
}

// GetObject retrieves an object from S3.
func GetObject(s3Client *s3.S3, bucket, key string) ([]byte, error) {
	result, err := s3Client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer result.Body.Close()

	body, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}
