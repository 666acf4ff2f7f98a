package s3

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/lensvault/lensvault/pkg/filesystem/fsctx"
	"github.com/lensvault/lensvault/pkg/filesystem/response"
	"github.com/lensvault/lensvault/pkg/util"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
)

// Driver S3 兼容存储适配器
type Driver struct {
	Bucket string
	sess   *session.Session
	svc    *s3.S3
}

// NewDriver 从站点存储配置初始化S3适配器
func NewDriver(bucket, region, endpoint, accessKey, secretKey string) (*Driver, error) {
	driver := &Driver{
		Bucket: bucket,
	}

	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:    aws.String(endpoint),
		Region:      aws.String(region),
	})
	if err != nil {
		return nil, err
	}
	driver.sess = sess
	driver.svc = s3.New(sess)

	return driver, nil
}

// Put 将文件流保存到指定路径
func (handler *Driver) Put(ctx context.Context, file fsctx.FileHeader) error {
	defer file.Close()

	uploader := s3manager.NewUploader(handler.sess)

	dst := file.GetSavePath()
	_, err := uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: &handler.Bucket,
		Key:    &dst,
		Body:   io.LimitReader(file, int64(file.GetSize())),
	})

	return err
}

// Delete 删除一个或多个文件，
// 返回未删除的文件，及遇到的最后一个错误
func (handler *Driver) Delete(ctx context.Context, files []string) ([]string, error) {
	keys := make([]*s3.ObjectIdentifier, 0, len(files))
	for _, file := range files {
		filePath := file
		keys = append(keys, &s3.ObjectIdentifier{Key: &filePath})
	}

	res, err := handler.svc.DeleteObjectsWithContext(ctx,
		&s3.DeleteObjectsInput{
			Bucket: &handler.Bucket,
			Delete: &s3.Delete{
				Objects: keys,
			},
		})

	if err != nil {
		return files, err
	}

	// 统计未删除的文件
	deleted := make(map[string]bool, len(res.Deleted))
	for _, deleteRes := range res.Deleted {
		deleted[*deleteRes.Key] = true
	}
	failed := make([]string, 0)
	for _, file := range files {
		if !deleted[file] {
			failed = append(failed, file)
		}
	}

	return failed, nil
}

// Get 获取文件内容
func (handler *Driver) Get(ctx context.Context, path string) (response.RSCloser, error) {
	downloader := s3manager.NewDownloader(handler.sess)
	buf := aws.NewWriteAtBuffer([]byte{})

	_, err := downloader.DownloadWithContext(ctx, buf, &s3.GetObjectInput{
		Bucket: &handler.Bucket,
		Key:    &path,
	})
	if err != nil {
		util.Log().Debug("无法获取对象 %q: %s", path, err)
		return nil, errors.Wrap(err, "failed to fetch object")
	}

	return nopRSCloser{bytes.NewReader(buf.Bytes())}, nil
}

// Move 通过服务端复制再删除的方式移动对象
func (handler *Driver) Move(ctx context.Context, src, dst string) error {
	_, err := handler.svc.CopyObjectWithContext(ctx, &s3.CopyObjectInput{
		Bucket:     &handler.Bucket,
		CopySource: aws.String(handler.Bucket + "/" + src),
		Key:        &dst,
	})
	if err != nil {
		return errors.Wrap(err, "failed to copy object")
	}

	if failed, err := handler.Delete(ctx, []string{src}); err != nil || len(failed) > 0 {
		util.Log().Warning("移动后无法删除源对象 %q", src)
	}

	return nil
}

// Source 生成带签名的临时访问地址
func (handler *Driver) Source(ctx context.Context, path string, ttl int64) (string, error) {
	req, _ := handler.svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: &handler.Bucket,
		Key:    &path,
	})

	signedURL, err := req.Presign(time.Duration(ttl) * time.Second)
	if err != nil {
		return "", errors.Wrap(err, "failed to presign object URL")
	}

	return signedURL, nil
}

type nopRSCloser struct {
	*bytes.Reader
}

func (nopRSCloser) Close() error {
	return nil
}
