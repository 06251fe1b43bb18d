package main

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// saveImage writes the image to path in the requested format, creating
// parent directories as needed
func saveImage(img *image.RGBA, path, format string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	switch format {
	case "png":
		if err := png.Encode(file, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	case "ppm":
		if err := writePPM(file, img); err != nil {
			return fmt.Errorf("writing PPM: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q (try png or ppm)", format)
	}
	return nil
}

// writePPM writes the image as plain-text PPM (P3), one pixel per line
func writePPM(file *os.File, img *image.RGBA) error {
	w := bufio.NewWriter(file)
	bounds := img.Bounds()

	fmt.Fprintf(w, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			fmt.Fprintf(w, "%d %d %d\n", c.R, c.G, c.B)
		}
	}
	return w.Flush()
}

// uploadToS3 puts the rendered file into the bucket named by the
// RENDER_S3_BUCKET environment variable and returns its URL. Credentials
// and region come from the standard AWS env vars (the .env file can
// provide them).
func uploadToS3(ctx context.Context, path string) (string, error) {
	bucket := os.Getenv("RENDER_S3_BUCKET")
	if bucket == "" {
		return "", fmt.Errorf("RENDER_S3_BUCKET not set")
	}
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return "", fmt.Errorf("creating AWS session: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	key := filepath.Base(path)
	contentType := "image/png"
	if filepath.Ext(path) == ".ppm" {
		contentType = "image/x-portable-pixmap"
	}

	uploadCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	_, err = s3.New(sess).PutObjectWithContext(uploadCtx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key), nil
}
