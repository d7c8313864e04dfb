package aws_s3

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/haierkeys/second-brain-service/pkg/fileurl"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// SendFile 上传文件
func (p *S3) SendFile(fileKey string, file io.Reader, contentType string) (string, error) {

	bucket := p.Config.BucketName
	ctx := context.Background()

	fileKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + fileKey

	_, err := p.S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(fileKey),
		Body:        file,
		ContentType: aws.String(contentType),
	})

	if err != nil {
		return "", errors.Wrap(err, "aws_s3")
	}

	return fileKey, nil
}

// ListKeys 列出指定前缀下的对象，前缀与 SendFile 一样带上 CustomPath
func (p *S3) ListKeys(prefix string) ([]string, error) {

	prefix = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + prefix
	ctx := context.Background()
	var keys []string

	paginator := s3.NewListObjectsV2Paginator(p.S3Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.Config.BucketName),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "aws_s3")
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}

// ModTime 返回对象的最后修改时间
func (p *S3) ModTime(fileKey string) (time.Time, error) {
	out, err := p.S3Client.HeadObject(context.Background(), &s3.HeadObjectInput{
		Bucket: aws.String(p.Config.BucketName),
		Key:    aws.String(fileKey),
	})
	if err != nil {
		return time.Time{}, errors.Wrap(err, "aws_s3")
	}
	return aws.ToTime(out.LastModified), nil
}

// PublicURL returns the virtual-hosted style URL for an object key.
func (p *S3) PublicURL(fileKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.Config.BucketName, p.Config.Region, fileKey)
}

// KeyFromURL inverts PublicURL. Returns false when url does not point
// into this bucket.
func (p *S3) KeyFromURL(url string) (string, bool) {
	base := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", p.Config.BucketName, p.Config.Region)
	if !strings.HasPrefix(url, base) {
		return "", false
	}
	key := strings.TrimPrefix(url, base)
	if key == "" {
		return "", false
	}
	return key, true
}
