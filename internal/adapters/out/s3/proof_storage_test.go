package s3_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	proofs3 "dispatch/internal/adapters/out/s3"
	"dispatch/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type putObjectMock struct {
	mock.Mock
}

func (m *putObjectMock) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProofStorage_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("should put object and return public url", func(t *testing.T) {
		client := &putObjectMock{}
		client.On("PutObject", ctx, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			return aws.ToString(in.Bucket) == "proofs" &&
				aws.ToString(in.Key) == "deliveries/d-1/photo.jpg" &&
				aws.ToString(in.ContentType) == "image/jpeg" &&
				aws.ToInt64(in.ContentLength) == 5
		})).Return(&s3.PutObjectOutput{}, nil).Once()

		storage := proofs3.NewProofStorageWithClient(client, proofs3.Config{
			Region:        "eu-west-1",
			Bucket:        "proofs",
			PublicBaseURL: "https://cdn.example.com/",
		}, discardLogger())

		url, err := storage.Upload(ctx, "/deliveries/d-1/photo.jpg", "image/jpeg", strings.NewReader("image"), 5)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/deliveries/d-1/photo.jpg", url)
		client.AssertExpectations(t)
	})

	t.Run("should default to bucket url", func(t *testing.T) {
		client := &putObjectMock{}
		client.On("PutObject", ctx, mock.Anything).Return(&s3.PutObjectOutput{}, nil).Once()

		storage := proofs3.NewProofStorageWithClient(client, proofs3.Config{
			Region: "eu-west-1",
			Bucket: "proofs",
		}, discardLogger())

		url, err := storage.Upload(ctx, "a.png", "image/png", strings.NewReader("x"), 1)

		require.NoError(t, err)
		assert.Equal(t, "https://proofs.s3.eu-west-1.amazonaws.com/a.png", url)
	})

	t.Run("should buffer non seekable bodies", func(t *testing.T) {
		client := &putObjectMock{}
		client.On("PutObject", ctx, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			_, seekable := in.Body.(io.ReadSeeker)
			return seekable && aws.ToInt64(in.ContentLength) == 9
		})).Return(&s3.PutObjectOutput{}, nil).Once()

		storage := proofs3.NewProofStorageWithClient(client, proofs3.Config{Bucket: "proofs"}, discardLogger())
		body := io.MultiReader(strings.NewReader("sign"), strings.NewReader("ature"))

		_, err := storage.Upload(ctx, "sig.png", "image/png", body, 0)

		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("should wrap client errors as store failures", func(t *testing.T) {
		client := &putObjectMock{}
		client.On("PutObject", ctx, mock.Anything).Return(nil, errors.New("AccessDenied")).Once()

		storage := proofs3.NewProofStorageWithClient(client, proofs3.Config{Bucket: "proofs"}, discardLogger())

		_, err := storage.Upload(ctx, "a.png", "image/png", strings.NewReader("x"), 1)

		require.ErrorIs(t, err, errs.ErrStoreFailure)
	})

	t.Run("should require key", func(t *testing.T) {
		storage := proofs3.NewProofStorageWithClient(&putObjectMock{}, proofs3.Config{Bucket: "proofs"}, discardLogger())

		_, err := storage.Upload(ctx, "", "image/png", strings.NewReader("x"), 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewProofStorage_RequiresBucket(t *testing.T) {
	_, err := proofs3.NewProofStorage(context.Background(), proofs3.Config{Region: "eu-west-1"}, discardLogger())

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
