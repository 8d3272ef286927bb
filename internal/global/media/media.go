package media

import (
	"campaign-manager/config"
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store 对象存储封装，用于活动封面等媒体文件
type Store struct {
	Endpoint        string
	BaseURL         string
	Bucket          string
	Region          string
	AccessKey       string
	SecretAccessKey string
	Prefix          string
	UsePathStyle    bool

	s3Client *s3.Client
	uploader *manager.Uploader
}

var Default *Store

// Init 从配置构建默认的对象存储实例；未配置 bucket 时跳过
func Init() {
	cfg := config.Get().S3
	if cfg.Bucket == "" {
		return
	}
	Default = &Store{
		Endpoint:        cfg.Endpoint,
		BaseURL:         cfg.BaseURL,
		Bucket:          cfg.Bucket,
		Region:          cfg.Region,
		AccessKey:       cfg.AccessKey,
		SecretAccessKey: cfg.SecretAccessKey,
		Prefix:          cfg.Prefix,
		UsePathStyle:    cfg.UsePathStyle,
	}
}

// InitS3 初始化 S3 客户端，懒加载
func (s *Store) InitS3(ctx context.Context) error {
	if s.s3Client != nil {
		return nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(s.Region),
	}
	if s.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.AccessKey, s.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return fmt.Errorf("加载 S3 配置失败: %w", err)
	}

	s.s3Client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
		}
		o.UsePathStyle = s.UsePathStyle
	})
	s.uploader = manager.NewUploader(s.s3Client)
	return nil
}

// objectKey 生成唯一对象 key（时间戳 + 原始扩展名），带配置前缀
func (s *Store) objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	unique := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	key := path.Join(strings.Trim(s.Prefix, "/"), unique)
	return strings.TrimLeft(key, "/")
}

// fileURL 拼出对象上传成功后的访问 URL
func (s *Store) fileURL(key string) string {
	base := strings.TrimRight(s.BaseURL, "/")
	if base == "" {
		base = strings.TrimRight(s.Endpoint, "/")
	}
	if s.UsePathStyle {
		return base + "/" + s.Bucket + "/" + key
	}
	return base + "/" + key
}

// Upload 服务端直传：接收 multipart 文件并上传到对象存储，返回访问 URL
func (s *Store) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if err := s.InitS3(ctx); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := s.objectKey(fileHeader.Filename)
	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("上传文件失败: %w", err)
	}

	return s.fileURL(key), nil
}
