package storage

import (
	"fmt"
	"io/ioutil"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Adapter persists artifacts to S3. The artifact is encoded to a local
// buffer file and uploaded on success. Options are either an
// "s3://bucket/key" URI string or a mapping with "uri" and optional "region"
// entries; the region falls back to AWS_REGION.
type S3Adapter struct{}

// Keyword implements Adapter
func (S3Adapter) Keyword() string {
	return "s3"
}

// Write implements Adapter
func (S3Adapter) Write(artifact interface{}, options interface{}) error {
	uri, err := stringOption(options, "uri")
	if err != nil {
		return err
	}

	s3url, err := validateURI(uri)
	if err != nil {
		return err
	}

	region := os.Getenv("AWS_REGION")
	if opts, ok := options.(map[string]interface{}); ok {
		if r, ok := opts["region"].(string); ok && r != "" {
			region = r
		}
	}
	if region == "" {
		return fmt.Errorf("no region for %s: set a region option or AWS_REGION", uri)
	}

	f, err := ioutil.TempFile("", "s3buffer")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := encodeArtifact(f, artifact); err != nil {
		return err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}

	sess, err := session.NewSession()
	if err != nil {
		return err
	}
	client := s3.New(sess, aws.NewConfig().WithRegion(region))

	key := strings.TrimPrefix(s3url.Path, "/")
	_, err = client.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(s3url.Host),
		Key:    aws.String(key),
		Body:   f,
	})
	return err
}

// validateURI checks whether the given uri points to S3.
func validateURI(uri string) (*url.URL, error) {
	s3url, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}
	if s3url.Scheme != "s3" {
		return nil, fmt.Errorf("%s is not an s3 path", uri)
	}
	if s3url.Host == "" || s3url.Path == "" {
		return nil, fmt.Errorf("%s is missing a bucket or key", uri)
	}
	return s3url, nil
}
