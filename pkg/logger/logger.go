package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	appConfig "leagueprobe/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Logger is what the probe components need to report progress.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Logger that we will use to print the progress and save the run log.
type NewLogger struct {
	mu       sync.Mutex
	console  io.Writer
	logFile  *os.File
	filePath string
}

// Create the log instance with a temporary file.
// Every line is also written to the console writer, if any.
func CreateLogger(console io.Writer) (*NewLogger, error) {
	f, err := os.CreateTemp("", "leagueprobe-*.log")
	if err != nil {
		return nil, err
	}

	return &NewLogger{
		console:  console,
		logFile:  f,
		filePath: f.Name(),
	}, nil
}

// Log a simple info.
func (l *NewLogger) Infof(format string, args ...any) {
	l.write("[INFO]", format, args...)
}

// Log a warning, used for recoverable conditions.
func (l *NewLogger) Warnf(format string, args ...any) {
	l.write("[WARN]", format, args...)
}

// Log a error.
func (l *NewLogger) Errorf(format string, args ...any) {
	l.write("[ERROR]", format, args...)
}

// Write something to the logger.
func (l *NewLogger) write(infoType string, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%-8s %s %s\n", infoType, timestamp, fmt.Sprintf(format, args...))

	l.logFile.WriteString(line)
	if l.console != nil {
		io.WriteString(l.console, line)
	}
}

// Path of the run log.
func (l *NewLogger) FilePath() string {
	return l.filePath
}

// Close the run log and remove it from disk.
func (l *NewLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.logFile.Close(); err != nil {
		return err
	}
	return os.Remove(l.filePath)
}

// RunObjectKey builds the bucket key for a run log.
func RunObjectKey(now time.Time, runId string) string {
	return fmt.Sprintf("leagueprobe/%s/%s.log", now.UTC().Format("2006-01-02"), runId)
}

// Upload the log to a s3 bucket.
func (l *NewLogger) UploadToS3Bucket(ctx context.Context, cfg *appConfig.Config, objectKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.logFile.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind file: %v", err)
	}

	// Get the config.
	awsCfg := aws.Config{
		Region: cfg.BucketRegion,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.BucketAccessKey,
				cfg.BucketAccessSecret,
				"",
			),
		),
	}

	// Create the client.
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BucketEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BucketEndpoint)
			o.UsePathStyle = true
		}
	})

	// Run the put.
	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(cfg.LogBucket),
		Key:    aws.String(objectKey),
		Body:   l.logFile,
		ACL:    types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3 bucket: %v", objectKey, err)
	}

	// Keep appending at the end after the upload read the file.
	if _, err := l.logFile.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek file end: %v", err)
	}

	return nil
}
